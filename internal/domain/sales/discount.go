package sales

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountType selects how the discount value is interpreted
type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeAmount  DiscountType = "amount"
)

// IsValidDiscountType reports whether the type is known
func IsValidDiscountType(t DiscountType) bool {
	return t == DiscountTypePercent || t == DiscountTypeAmount
}

// ParseDiscountValue parses a free-text discount input. Non-numeric input
// and negative values are treated as zero, matching how the register
// tolerates half-typed values.
func ParseDiscountValue(input string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Totals is the result of invoice arithmetic over a cart and a discount
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

// ComputeDiscountAmount converts a discount into a concrete amount off the
// subtotal. The result is clamped to [0, subtotal] so the payable total
// never goes negative.
func ComputeDiscountAmount(subtotal decimal.Decimal, discountType DiscountType, value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch discountType {
	case DiscountTypePercent:
		amount = subtotal.Mul(value).Div(decimal.NewFromInt(100))
	case DiscountTypeAmount:
		amount = value
	default:
		return decimal.Zero
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}

// ComputeTotals runs the invoice arithmetic for a cart and discount
func ComputeTotals(cart *Cart, discountType DiscountType, value decimal.Decimal) Totals {
	subtotal := cart.Subtotal()
	discountAmount := ComputeDiscountAmount(subtotal, discountType, value)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal.Sub(discountAmount),
	}
}
