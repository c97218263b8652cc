package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phonestore/backend/internal/domain/sales"
)

// CartItemDTO is one cart line on the wire
type CartItemDTO struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	Condition   string          `json:"condition"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// CartStateDTO is the client's cart state. The cart endpoints are
// stateless: the client posts its cart, the server returns the updated one.
type CartStateDTO struct {
	Items []CartItemDTO `json:"items"`
}

// AddToCartRequest asks to add a product to the posted cart
type AddToCartRequest struct {
	Cart      CartStateDTO `json:"cart"`
	ProductID uuid.UUID    `json:"product_id" binding:"required"`
}

// SetQuantityRequest asks to change a line's quantity
type SetQuantityRequest struct {
	Cart      CartStateDTO `json:"cart"`
	ProductID uuid.UUID    `json:"product_id" binding:"required"`
	Quantity  int          `json:"quantity"`
}

// SetConditionRequest asks to change a line's condition label
type SetConditionRequest struct {
	Cart      CartStateDTO `json:"cart"`
	ProductID uuid.UUID    `json:"product_id" binding:"required"`
	Condition string       `json:"condition" binding:"required"`
}

// RemoveFromCartRequest asks to drop a line
type RemoveFromCartRequest struct {
	Cart      CartStateDTO `json:"cart"`
	ProductID uuid.UUID    `json:"product_id" binding:"required"`
}

// TotalsRequest asks for invoice arithmetic over the posted cart.
// DiscountValue is free text; non-numeric input counts as zero.
type TotalsRequest struct {
	Cart          CartStateDTO `json:"cart"`
	DiscountType  string       `json:"discount_type" binding:"required,oneof=percent amount"`
	DiscountValue string       `json:"discount_value"`
}

// CartResponse returns the updated cart and its subtotal
type CartResponse struct {
	Cart     CartStateDTO    `json:"cart"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// TotalsResponse is the invoice arithmetic result
type TotalsResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

// CustomerFormDTO is the customer block of the invoice form
type CustomerFormDTO struct {
	CustomerID *uuid.UUID `json:"customer_id"`
	Name       string     `json:"name"`
	NationalID string     `json:"national_id"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
}

// CreateInvoiceRequest finalizes a cart into an invoice
type CreateInvoiceRequest struct {
	Customer      CustomerFormDTO `json:"customer"`
	Cart          CartStateDTO    `json:"cart"`
	DiscountType  string          `json:"discount_type" binding:"required,oneof=percent amount"`
	DiscountValue string          `json:"discount_value"`
}

// ListInvoicesRequest carries the history filter from the query string
type ListInvoicesRequest struct {
	Search string `form:"search"`
	// Date restricts results to one calendar day, formatted 2006-01-02
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// InvoiceItemResponse is one invoice line in API responses
type InvoiceItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Condition   string          `json:"condition"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID                 uuid.UUID             `json:"id"`
	InvoiceNumber      string                `json:"invoice_number"`
	InvoiceDate        time.Time             `json:"invoice_date"`
	CustomerID         *uuid.UUID            `json:"customer_id,omitempty"`
	CustomerName       string                `json:"customer_name"`
	CustomerNationalID string                `json:"customer_national_id"`
	CustomerPhone      string                `json:"customer_phone"`
	CustomerAddress    string                `json:"customer_address"`
	Items              []InvoiceItemResponse `json:"items"`
	Subtotal           decimal.Decimal       `json:"subtotal"`
	DiscountType       string                `json:"discount_type"`
	DiscountValue      decimal.Decimal       `json:"discount_value"`
	DiscountAmount     decimal.Decimal       `json:"discount_amount"`
	Total              decimal.Decimal       `json:"total"`
	StaffName          string                `json:"staff_name"`
	CreatedAt          time.Time             `json:"created_at"`
}

// ToCartStateDTO converts a domain cart to its wire form
func ToCartStateDTO(cart *sales.Cart) CartStateDTO {
	items := make([]CartItemDTO, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, CartItemDTO{
			ProductID:   line.ProductID,
			SKU:         line.SKU,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Condition:   string(line.Condition),
			LineTotal:   line.LineTotal,
		})
	}
	return CartStateDTO{Items: items}
}

// ToDomainCart rebuilds a domain cart from the wire form. Line totals are
// recomputed server-side; missing conditions fall back to the default.
func ToDomainCart(state CartStateDTO) *sales.Cart {
	cart := sales.NewCart()
	for _, item := range state.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		condition := sales.Condition(item.Condition)
		if !sales.IsValidCondition(condition) {
			condition = sales.DefaultCondition
		}
		cart.Items = append(cart.Items, sales.CartItem{
			ProductID:   item.ProductID,
			SKU:         item.SKU,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    quantity,
			Condition:   condition,
			LineTotal:   item.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}
	return cart
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *sales.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ProductID:   item.ProductID,
			SKU:         item.SKU,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Condition:   string(item.Condition),
			LineTotal:   item.LineTotal,
		})
	}
	return InvoiceResponse{
		ID:                 inv.ID,
		InvoiceNumber:      inv.InvoiceNumber,
		InvoiceDate:        inv.InvoiceDate,
		CustomerID:         inv.CustomerID,
		CustomerName:       inv.CustomerName,
		CustomerNationalID: inv.CustomerNationalID,
		CustomerPhone:      inv.CustomerPhone,
		CustomerAddress:    inv.CustomerAddress,
		Items:              items,
		Subtotal:           inv.Subtotal,
		DiscountType:       string(inv.DiscountType),
		DiscountValue:      inv.DiscountValue,
		DiscountAmount:     inv.DiscountAmount,
		Total:              inv.Total,
		StaffName:          inv.StaffName,
		CreatedAt:          inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain invoices
func ToInvoiceResponses(invoices []sales.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, ToInvoiceResponse(&invoices[i]))
	}
	return responses
}
