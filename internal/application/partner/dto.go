package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/phonestore/backend/internal/domain/partner"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	NationalID string `json:"national_id" binding:"omitempty,max=20"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Address    string `json:"address" binding:"omitempty,max=500"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=200"`
	NationalID *string `json:"national_id" binding:"omitempty,max=20"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	Address    *string `json:"address" binding:"omitempty,max=500"`
}

// LookupCustomerRequest carries the auto-match input from the query string
type LookupCustomerRequest struct {
	Phone      string `form:"phone"`
	NationalID string `form:"national_id"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Version    int       `json:"version"`
}

// LookupResponse is the outcome of a customer auto-match
type LookupResponse struct {
	Matched  bool              `json:"matched"`
	Field    string            `json:"field,omitempty"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		NationalID: c.NationalID,
		Phone:      c.Phone,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		Version:    c.Version,
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}
	return responses
}
