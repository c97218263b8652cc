package partner

import (
	"regexp"
	"time"

	"github.com/phonestore/backend/internal/domain/shared"
)

// Customer represents a retail customer
// It is the aggregate root for customer-related operations
type Customer struct {
	shared.BaseAggregateRoot
	Name       string `gorm:"type:varchar(200);not null"`
	NationalID string `gorm:"type:varchar(20);index"`
	Phone      string `gorm:"type:varchar(20);index"`
	Address    string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, nationalID, phone, address string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if nationalID != "" {
		if err := validateNationalID(nationalID); err != nil {
			return nil, err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		NationalID:        nationalID,
		Phone:             phone,
		Address:           address,
	}, nil
}

// Update replaces the customer's information
func (c *Customer) Update(name, nationalID, phone, address string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}
	if nationalID != "" {
		if err := validateNationalID(nationalID); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	c.Name = name
	c.NationalID = nationalID
	c.Phone = phone
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Validation functions

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

func validateNationalID(nationalID string) error {
	if len(nationalID) > 20 {
		return shared.NewDomainError("INVALID_NATIONAL_ID", "National ID cannot exceed 20 characters")
	}
	if !digitsOnly.MatchString(nationalID) {
		return shared.NewDomainError("INVALID_NATIONAL_ID", "National ID can only contain digits")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 20 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}
