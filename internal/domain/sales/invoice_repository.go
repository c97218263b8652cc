package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/phonestore/backend/internal/domain/shared"
)

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice with its items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice with its items by invoice number
	FindByNumber(ctx context.Context, number string) (*Invoice, error)

	// FindAll finds all invoices with their items, newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// Save persists a new invoice together with its items
	Save(ctx context.Context, invoice *Invoice) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByNumber checks if an invoice with the given number exists
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
