package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/phonestore/backend/internal/domain/partner"
	"github.com/phonestore/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.NationalID, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Update updates a customer's information
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := customer.Name
	nationalID := customer.NationalID
	phone := customer.Phone
	address := customer.Address
	if req.Name != nil {
		name = *req.Name
	}
	if req.NationalID != nil {
		nationalID = *req.NationalID
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Address != nil {
		address = *req.Address
	}

	if err := customer.Update(name, nationalID, phone, address); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Get returns a customer by ID
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// List returns customers, optionally narrowed by a search over name,
// phone and national ID
func (s *CustomerService) List(ctx context.Context, search string) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx, shared.Filter{Search: search})
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// Lookup runs the auto-match against the customer base. Phone wins over
// national ID when both inputs are provided and ready; inputs below their
// length thresholds never trigger a lookup.
func (s *CustomerService) Lookup(ctx context.Context, req LookupCustomerRequest) (*LookupResponse, error) {
	if partner.PhoneLookupReady(req.Phone) {
		customer, err := s.customerRepo.FindByPhone(ctx, req.Phone)
		if err != nil && err != shared.ErrNotFound {
			return nil, err
		}
		if customer != nil {
			resp := ToCustomerResponse(customer)
			return &LookupResponse{Matched: true, Field: string(partner.MatchFieldPhone), Customer: &resp}, nil
		}
	}

	if partner.NationalIDLookupReady(req.NationalID) {
		customer, err := s.customerRepo.FindByNationalID(ctx, req.NationalID)
		if err != nil && err != shared.ErrNotFound {
			return nil, err
		}
		if customer != nil {
			resp := ToCustomerResponse(customer)
			return &LookupResponse{Matched: true, Field: string(partner.MatchFieldNationalID), Customer: &resp}, nil
		}
	}

	return &LookupResponse{Matched: false}, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
