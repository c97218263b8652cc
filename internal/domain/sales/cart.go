package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phonestore/backend/internal/domain/catalog"
)

// CartItem is one line of the working cart. Product name and price are
// snapshots taken when the product was added.
type CartItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Condition   Condition       `json:"condition"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Cart is the working order being assembled at the counter. Lines keep
// insertion order and are keyed by product ID.
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCart returns an empty cart
func NewCart() *Cart {
	return &Cart{Items: make([]CartItem, 0)}
}

func (c *Cart) findLine(productID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddProduct adds a product to the cart. Adding a product that is already
// in the cart merges into the existing line by incrementing its quantity.
// New lines start at quantity 1 with the default condition and snapshot
// the product's current price.
func (c *Cart) AddProduct(p *catalog.Product) {
	if i := c.findLine(p.ID); i >= 0 {
		c.Items[i].Quantity++
		c.Items[i].LineTotal = c.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(c.Items[i].Quantity)))
		return
	}

	c.Items = append(c.Items, CartItem{
		ProductID:   p.ID,
		SKU:         p.SKU,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    1,
		Condition:   DefaultCondition,
		LineTotal:   p.Price,
	})
}

// SetQuantity sets the quantity of a line, clamped to a minimum of 1.
// Unknown product IDs are ignored.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	i := c.findLine(productID)
	if i < 0 {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	c.Items[i].Quantity = quantity
	c.Items[i].LineTotal = c.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// SetCondition replaces the condition label of a line. Unknown product IDs
// and unknown labels are ignored.
func (c *Cart) SetCondition(productID uuid.UUID, condition Condition) {
	i := c.findLine(productID)
	if i < 0 || !IsValidCondition(condition) {
		return
	}
	c.Items[i].Condition = condition
}

// Remove drops a line from the cart. Removing an absent product is not an
// error.
func (c *Cart) Remove(productID uuid.UUID) {
	i := c.findLine(productID)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// Subtotal returns the sum of all line totals
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for i := range c.Items {
		subtotal = subtotal.Add(c.Items[i].LineTotal)
	}
	return subtotal
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
