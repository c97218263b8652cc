package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/phonestore/backend/internal/domain/catalog"
	"github.com/phonestore/backend/internal/domain/partner"
	"github.com/phonestore/backend/internal/domain/sales"
	"github.com/phonestore/backend/internal/domain/settings"
	"github.com/phonestore/backend/internal/domain/shared/valueobject"
)

type seedProduct struct {
	sku      string
	name     string
	category string
	price    int64
	inactive bool
}

type seedCustomer struct {
	name       string
	nationalID string
	phone      string
	address    string
}

type seedInvoiceItem struct {
	sku       string
	quantity  int
	condition sales.Condition
	// price overrides the catalog price when non-zero (used items sell
	// below list)
	price int64
}

type seedInvoice struct {
	number        string
	date          time.Time
	customer      int // index into seed customers
	items         []seedInvoiceItem
	discountType  sales.DiscountType
	discountValue string
	staff         string
}

var seedProducts = []seedProduct{
	{sku: "IP15PM-256", name: "iPhone 15 Pro Max 256GB", category: "iPhone", price: 29990000},
	{sku: "IP15P-128", name: "iPhone 15 Pro 128GB", category: "iPhone", price: 25990000},
	{sku: "IP15-128", name: "iPhone 15 128GB", category: "iPhone", price: 19990000},
	{sku: "IP14-128", name: "iPhone 14 128GB", category: "iPhone", price: 16990000},
	{sku: "SS-S24U-256", name: "Samsung Galaxy S24 Ultra 256GB", category: "Samsung", price: 27990000},
	{sku: "SS-S24-256", name: "Samsung Galaxy S24 256GB", category: "Samsung", price: 19990000},
	{sku: "SS-ZF5-256", name: "Samsung Galaxy Z Fold 5 256GB", category: "Samsung", price: 35990000},
	{sku: "XM-14P-256", name: "Xiaomi 14 Pro 256GB", category: "Xiaomi", price: 17990000},
	{sku: "OP-12P-256", name: "OPPO Find X6 Pro 256GB", category: "OPPO", price: 19990000, inactive: true},
	{sku: "ACC-CASE-01", name: "Ốp lưng Silicon", category: "Phụ kiện", price: 150000},
	{sku: "ACC-GLASS-01", name: "Kính cường lực", category: "Phụ kiện", price: 200000},
	{sku: "ACC-CHARGER-20W", name: "Sạc nhanh 20W", category: "Phụ kiện", price: 350000},
	{sku: "ACC-CABLE-C", name: "Cáp Type-C", category: "Phụ kiện", price: 180000},
	{sku: "ACC-AIRPODS", name: "AirPods Pro 2", category: "Phụ kiện", price: 5990000},
	{sku: "ACC-WATCH", name: "Apple Watch SE", category: "Phụ kiện", price: 6990000},
}

var seedCustomers = []seedCustomer{
	{name: "Nguyễn Văn An", nationalID: "001234567890", phone: "0901234567", address: "123 Lê Lợi, Q.1, TP.HCM"},
	{name: "Trần Thị Bình", nationalID: "001234567891", phone: "0912345678", address: "456 Nguyễn Huệ, Q.1, TP.HCM"},
	{name: "Lê Hoàng Cường", nationalID: "001234567892", phone: "0923456789", address: "789 Trần Hưng Đạo, Q.5, TP.HCM"},
	{name: "Phạm Minh Đức", nationalID: "001234567893", phone: "0934567890", address: "321 Võ Văn Tần, Q.3, TP.HCM"},
	{name: "Hoàng Thu Hà", nationalID: "001234567894", phone: "0945678901", address: "654 Hai Bà Trưng, Q.3, TP.HCM"},
}

var seedInvoices = []seedInvoice{
	{
		number:   "HD001",
		date:     time.Date(2025, 12, 28, 10, 30, 0, 0, time.Local),
		customer: 0,
		items: []seedInvoiceItem{
			{sku: "IP15PM-256", quantity: 1, condition: sales.ConditionNew},
			{sku: "ACC-CASE-01", quantity: 2, condition: sales.ConditionNew},
		},
		discountType:  sales.DiscountTypeAmount,
		discountValue: "290000",
		staff:         "Nguyễn Văn A",
	},
	{
		number:   "HD002",
		date:     time.Date(2025, 12, 29, 14, 15, 0, 0, time.Local),
		customer: 1,
		items: []seedInvoiceItem{
			{sku: "SS-S24U-256", quantity: 1, condition: sales.ConditionNew},
		},
		discountType:  sales.DiscountTypePercent,
		discountValue: "5",
		staff:         "Trần Văn B",
	},
	{
		number:   "HD003",
		date:     time.Date(2025, 12, 30, 9, 45, 0, 0, time.Local),
		customer: 2,
		items: []seedInvoiceItem{
			{sku: "IP15-128", quantity: 1, condition: sales.ConditionLikeNew, price: 17990000},
			{sku: "ACC-GLASS-01", quantity: 1, condition: sales.ConditionNew},
		},
		discountType:  sales.DiscountTypeAmount,
		discountValue: "0",
		staff:         "Nguyễn Văn A",
	},
	{
		number:   "HD004",
		date:     time.Date(2026, 1, 1, 16, 20, 0, 0, time.Local),
		customer: 3,
		items: []seedInvoiceItem{
			{sku: "ACC-AIRPODS", quantity: 2, condition: sales.ConditionNew},
		},
		discountType:  sales.DiscountTypePercent,
		discountValue: "2",
		staff:         "Trần Văn B",
	},
	{
		number:   "HD005",
		date:     time.Date(2026, 1, 2, 11, 5, 0, 0, time.Local),
		customer: 4,
		items: []seedInvoiceItem{
			{sku: "SS-ZF5-256", quantity: 1, condition: sales.ConditionNew},
			{sku: "ACC-CHARGER-20W", quantity: 1, condition: sales.ConditionNew},
		},
		discountType:  sales.DiscountTypeAmount,
		discountValue: "340000",
		staff:         "Nguyễn Văn A",
	},
}

// Seed loads the demo dataset: the product catalog, known customers, a few
// historical invoices and the store/staff profiles. Seeding is skipped when
// products already exist.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count products: %w", err)
	}
	if count > 0 {
		log.Info("Seed skipped, database already populated")
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productsBySKU := make(map[string]*catalog.Product, len(seedProducts))
		for _, sp := range seedProducts {
			product, err := catalog.NewProduct(sp.sku, sp.name, sp.category, valueobject.NewMoneyVNDFromInt(sp.price))
			if err != nil {
				return fmt.Errorf("seed: product %s: %w", sp.sku, err)
			}
			if sp.inactive {
				if err := product.Deactivate(); err != nil {
					return fmt.Errorf("seed: deactivate %s: %w", sp.sku, err)
				}
			}
			if err := tx.Create(product).Error; err != nil {
				return fmt.Errorf("seed: save product %s: %w", sp.sku, err)
			}
			productsBySKU[sp.sku] = product
		}

		customers := make([]*partner.Customer, 0, len(seedCustomers))
		for _, sc := range seedCustomers {
			customer, err := partner.NewCustomer(sc.name, sc.nationalID, sc.phone, sc.address)
			if err != nil {
				return fmt.Errorf("seed: customer %s: %w", sc.name, err)
			}
			if err := tx.Create(customer).Error; err != nil {
				return fmt.Errorf("seed: save customer %s: %w", sc.name, err)
			}
			customers = append(customers, customer)
		}

		for _, si := range seedInvoices {
			cart := sales.NewCart()
			for _, item := range si.items {
				product, ok := productsBySKU[item.sku]
				if !ok {
					return fmt.Errorf("seed: invoice %s references unknown SKU %s", si.number, item.sku)
				}
				unitPrice := product.Price
				if item.price != 0 {
					unitPrice = decimal.NewFromInt(item.price)
				}
				cart.Items = append(cart.Items, sales.CartItem{
					ProductID:   product.ID,
					SKU:         product.SKU,
					ProductName: product.Name,
					UnitPrice:   unitPrice,
					Quantity:    item.quantity,
					Condition:   item.condition,
					LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(item.quantity))),
				})
			}

			customer := customers[si.customer]
			invoice, err := sales.NewInvoice(
				si.number,
				si.date,
				sales.CustomerForm{
					CustomerID: &customer.ID,
					Name:       customer.Name,
					NationalID: customer.NationalID,
					Phone:      customer.Phone,
					Address:    customer.Address,
				},
				cart,
				si.discountType,
				sales.ParseDiscountValue(si.discountValue),
				si.staff,
			)
			if err != nil {
				return fmt.Errorf("seed: invoice %s: %w", si.number, err)
			}
			if err := tx.Create(invoice).Error; err != nil {
				return fmt.Errorf("seed: save invoice %s: %w", si.number, err)
			}
		}

		store, err := settings.NewStoreProfile("PHONESTORE", "123 Nguyễn Huệ, Q.1, TP.HCM", "1900 xxxx", "contact@phonestore.com")
		if err != nil {
			return fmt.Errorf("seed: store profile: %w", err)
		}
		if err := tx.Create(store).Error; err != nil {
			return fmt.Errorf("seed: save store profile: %w", err)
		}

		staff, err := settings.NewStaffProfile("Nguyễn Văn A", "nva@phonestore.com", "0901234567", "Nhân viên bán hàng")
		if err != nil {
			return fmt.Errorf("seed: staff profile: %w", err)
		}
		if err := tx.Create(staff).Error; err != nil {
			return fmt.Errorf("seed: save staff profile: %w", err)
		}

		log.Info("Seed completed",
			zap.Int("products", len(seedProducts)),
			zap.Int("customers", len(seedCustomers)),
			zap.Int("invoices", len(seedInvoices)),
		)
		return nil
	})
}
