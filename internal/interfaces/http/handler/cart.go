package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/phonestore/backend/internal/application/sales"
)

// CartHandler handles the stateless cart API endpoints. The client posts
// its cart state with every call and gets the updated state back.
type CartHandler struct {
	BaseHandler
	cartService *salesapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *salesapp.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// Add adds a product to the posted cart
func (h *CartHandler) Add(c *gin.Context) {
	var req salesapp.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// SetQuantity changes a line's quantity
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req salesapp.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// SetCondition changes a line's condition label
func (h *CartHandler) SetCondition(c *gin.Context) {
	var req salesapp.SetConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.SetCondition(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// Remove drops a line from the posted cart
func (h *CartHandler) Remove(c *gin.Context) {
	var req salesapp.RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cart, err := h.cartService.Remove(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, cart)
}

// Totals runs the invoice arithmetic over the posted cart and discount
func (h *CartHandler) Totals(c *gin.Context) {
	var req salesapp.TotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	totals, err := h.cartService.Totals(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, totals)
}
