package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phonestore/backend/internal/domain/sales"
	"github.com/phonestore/backend/internal/domain/settings"
	"github.com/phonestore/backend/internal/domain/shared"
)

// invoiceNumberMaxAttempts bounds the collision retry loop
const invoiceNumberMaxAttempts = 10

// InvoiceService finalizes sales and serves the invoice history
type InvoiceService struct {
	invoiceRepo  sales.InvoiceRepository
	settingsRepo settings.Repository
	now          func() time.Time
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo sales.InvoiceRepository, settingsRepo settings.Repository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// nextInvoiceNumber derives a number from the clock and nudges the
// timestamp forward until it is free
func (s *InvoiceService) nextInvoiceNumber(ctx context.Context) (string, error) {
	ts := s.now()
	for attempt := 0; attempt < invoiceNumberMaxAttempts; attempt++ {
		number := sales.GenerateInvoiceNumber(ts)
		exists, err := s.invoiceRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		ts = ts.Add(time.Millisecond)
	}
	return "", shared.NewDomainError("NUMBER_EXHAUSTED", "Could not allocate a unique invoice number")
}

// Create finalizes the posted cart into an invoice. The form is validated
// as a whole; nothing is saved on failure.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	discountType := sales.DiscountType(req.DiscountType)
	if !sales.IsValidDiscountType(discountType) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT_TYPE", "Discount type must be 'percent' or 'amount'")
	}

	staff, err := s.settingsRepo.GetStaffProfile(ctx)
	if err != nil {
		return nil, err
	}

	number, err := s.nextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	cart := ToDomainCart(req.Cart)
	invoice, err := sales.NewInvoice(
		number,
		s.now(),
		sales.CustomerForm{
			CustomerID: req.Customer.CustomerID,
			Name:       req.Customer.Name,
			NationalID: req.Customer.NationalID,
			Phone:      req.Customer.Phone,
			Address:    req.Customer.Address,
		},
		cart,
		discountType,
		sales.ParseDiscountValue(req.DiscountValue),
		staff.FullName,
	)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// Get returns an invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// GetByNumber returns an invoice by its invoice number
func (s *InvoiceService) GetByNumber(ctx context.Context, number string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// List returns the invoice history narrowed by the search text and the
// optional calendar-date filter
func (s *InvoiceService) List(ctx context.Context, req ListInvoicesRequest) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	query := sales.HistoryQuery{Search: req.Search}
	if req.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "Date must be formatted YYYY-MM-DD")
		}
		query.Date = &day
	}

	return ToInvoiceResponses(sales.FilterInvoices(invoices, query)), nil
}
