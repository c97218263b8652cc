package sales

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phonestore/backend/internal/domain/shared"
)

// InvoiceItem is a line item on a finalized invoice. Product data is
// snapshotted so later catalog edits never rewrite history.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	SKU         string          `gorm:"type:varchar(50);not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null"`
	Condition   Condition       `gorm:"type:varchar(30);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// Invoice is a finalized sale. It is immutable once created: there are no
// mutators beyond construction.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	InvoiceDate   time.Time `gorm:"not null;index"`

	// Customer snapshot. CustomerID is set only when the sale was linked
	// to an existing customer record.
	CustomerID         *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName       string     `gorm:"type:varchar(200);not null"`
	CustomerNationalID string     `gorm:"type:varchar(20);not null"`
	CustomerPhone      string     `gorm:"type:varchar(20);not null"`
	CustomerAddress    string     `gorm:"type:text;not null"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DiscountType   DiscountType    `gorm:"type:varchar(10);not null"`
	DiscountValue  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(18,2);not null"`

	StaffName string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// CustomerForm carries the customer block of the invoice form
type CustomerForm struct {
	CustomerID *uuid.UUID
	Name       string
	NationalID string
	Phone      string
	Address    string
}

// NewInvoice finalizes a cart into an invoice. The whole form is validated
// up front; any failure returns a ValidationError listing every bad field
// and nothing is created.
func NewInvoice(number string, date time.Time, customer CustomerForm, cart *Cart, discountType DiscountType, discountValue decimal.Decimal, staffName string) (*Invoice, error) {
	verr := shared.NewValidationError()
	if strings.TrimSpace(customer.Name) == "" {
		verr.Add("customer_name", "Vui lòng nhập tên khách hàng")
	}
	if strings.TrimSpace(customer.NationalID) == "" {
		verr.Add("customer_national_id", "Vui lòng nhập số CCCD")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		verr.Add("customer_phone", "Vui lòng nhập số điện thoại")
	}
	if strings.TrimSpace(customer.Address) == "" {
		verr.Add("customer_address", "Vui lòng nhập địa chỉ")
	}
	if cart == nil || cart.IsEmpty() {
		verr.Add("items", "Vui lòng thêm ít nhất một sản phẩm")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if !IsValidDiscountType(discountType) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_TYPE", "Discount type must be 'percent' or 'amount'")
	}

	totals := ComputeTotals(cart, discountType, discountValue)

	invoice := &Invoice{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		InvoiceNumber:      number,
		InvoiceDate:        date,
		CustomerID:         customer.CustomerID,
		CustomerName:       strings.TrimSpace(customer.Name),
		CustomerNationalID: strings.TrimSpace(customer.NationalID),
		CustomerPhone:      strings.TrimSpace(customer.Phone),
		CustomerAddress:    strings.TrimSpace(customer.Address),
		Subtotal:           totals.Subtotal,
		DiscountType:       discountType,
		DiscountValue:      discountValue,
		DiscountAmount:     totals.DiscountAmount,
		Total:              totals.Total,
		StaffName:          staffName,
	}

	now := time.Now()
	invoice.Items = make([]InvoiceItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		invoice.Items = append(invoice.Items, InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   invoice.ID,
			ProductID:   line.ProductID,
			SKU:         line.SKU,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Condition:   line.Condition,
			LineTotal:   line.LineTotal,
			CreatedAt:   now,
		})
	}

	return invoice, nil
}

// ItemCount returns the total number of units on the invoice
func (inv *Invoice) ItemCount() int {
	count := 0
	for i := range inv.Items {
		count += inv.Items[i].Quantity
	}
	return count
}
