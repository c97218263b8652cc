package sales

import (
	"context"

	"github.com/phonestore/backend/internal/domain/catalog"
	"github.com/phonestore/backend/internal/domain/sales"
	"github.com/phonestore/backend/internal/domain/shared"
)

// CartService runs cart operations for the register. The service is
// stateless: every call receives the client's cart state and returns the
// updated one.
type CartService struct {
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
	}
}

func cartResponse(cart *sales.Cart) *CartResponse {
	return &CartResponse{
		Cart:     ToCartStateDTO(cart),
		Subtotal: cart.Subtotal(),
	}
}

// Add adds a product to the cart, merging into an existing line when the
// product is already there. Inactive products cannot be sold.
func (s *CartService) Add(ctx context.Context, req AddToCartRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_INACTIVE", "Product is not available for sale")
	}

	cart := ToDomainCart(req.Cart)
	cart.AddProduct(product)
	return cartResponse(cart), nil
}

// SetQuantity changes a line's quantity, clamped to a minimum of 1
func (s *CartService) SetQuantity(ctx context.Context, req SetQuantityRequest) (*CartResponse, error) {
	cart := ToDomainCart(req.Cart)
	cart.SetQuantity(req.ProductID, req.Quantity)
	return cartResponse(cart), nil
}

// SetCondition changes a line's condition label
func (s *CartService) SetCondition(ctx context.Context, req SetConditionRequest) (*CartResponse, error) {
	condition := sales.Condition(req.Condition)
	if !sales.IsValidCondition(condition) {
		return nil, shared.NewDomainError("INVALID_CONDITION", "Unknown condition label")
	}

	cart := ToDomainCart(req.Cart)
	cart.SetCondition(req.ProductID, condition)
	return cartResponse(cart), nil
}

// Remove drops a line from the cart; absent lines are ignored
func (s *CartService) Remove(ctx context.Context, req RemoveFromCartRequest) (*CartResponse, error) {
	cart := ToDomainCart(req.Cart)
	cart.Remove(req.ProductID)
	return cartResponse(cart), nil
}

// Totals runs the invoice arithmetic over the posted cart and discount
func (s *CartService) Totals(ctx context.Context, req TotalsRequest) (*TotalsResponse, error) {
	discountType := sales.DiscountType(req.DiscountType)
	if !sales.IsValidDiscountType(discountType) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_TYPE", "Discount type must be 'percent' or 'amount'")
	}

	cart := ToDomainCart(req.Cart)
	totals := sales.ComputeTotals(cart, discountType, sales.ParseDiscountValue(req.DiscountValue))
	return &TotalsResponse{
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		Total:          totals.Total,
	}, nil
}
