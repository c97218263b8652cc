package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phonestore/backend/internal/infrastructure/config"
	"github.com/phonestore/backend/internal/infrastructure/logger"
	"github.com/phonestore/backend/internal/interfaces/http/handler"
	"github.com/phonestore/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the API handlers wired by Setup
type Handlers struct {
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Cart     *handler.CartHandler
	Invoice  *handler.InvoiceHandler
	Settings *handler.SettingsHandler
	System   *handler.SystemHandler
}

// Setup builds the gin engine with the middleware chain and all API routes
func Setup(cfg *config.Config, log *zap.Logger, h Handlers) (*gin.Engine, error) {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")

	system := api.Group("/system")
	{
		system.GET("/ping", h.System.Ping)
		system.GET("/info", h.System.Info)
	}

	products := api.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/categories", h.Product.Categories)
		products.GET("/sku/:sku", h.Product.GetBySKU)
		products.GET("/:id", h.Product.GetByID)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/activate", h.Product.Activate)
		products.POST("/:id/deactivate", h.Product.Deactivate)
	}

	customers := api.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/lookup", h.Customer.Lookup)
		customers.GET("/:id", h.Customer.GetByID)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	cart := api.Group("/cart")
	{
		cart.POST("/add", h.Cart.Add)
		cart.POST("/quantity", h.Cart.SetQuantity)
		cart.POST("/condition", h.Cart.SetCondition)
		cart.POST("/remove", h.Cart.Remove)
		cart.POST("/totals", h.Cart.Totals)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", h.Invoice.Create)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/number/:number", h.Invoice.GetByNumber)
		invoices.GET("/:id", h.Invoice.GetByID)
		invoices.GET("/:id/receipt", h.Invoice.Receipt)
	}

	settings := api.Group("/settings")
	{
		settings.GET("/store", h.Settings.GetStoreProfile)
		settings.PUT("/store", h.Settings.UpdateStoreProfile)
		settings.GET("/staff", h.Settings.GetStaffProfile)
		settings.PUT("/staff", h.Settings.UpdateStaffProfile)
	}

	return engine, nil
}

// corsConfig maps the HTTP configuration onto the CORS middleware
func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	return corsCfg
}
