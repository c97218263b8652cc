package settings

import (
	"time"

	"github.com/phonestore/backend/internal/domain/shared"
)

// StaffProfile is the cashier identity stamped on new invoices.
// A single row exists; updates replace it in place.
type StaffProfile struct {
	shared.BaseAggregateRoot
	FullName string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(200);not null"`
	Phone    string `gorm:"type:varchar(20);not null"`
	Role     string `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (StaffProfile) TableName() string {
	return "staff_profiles"
}

// NewStaffProfile creates a staff profile
func NewStaffProfile(fullName, email, phone, role string) (*StaffProfile, error) {
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Staff name cannot be empty")
	}
	return &StaffProfile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FullName:          fullName,
		Email:             email,
		Phone:             phone,
		Role:              role,
	}, nil
}

// Update replaces the profile fields
func (s *StaffProfile) Update(fullName, email, phone, role string) error {
	if fullName == "" {
		return shared.NewDomainError("INVALID_NAME", "Staff name cannot be empty")
	}
	s.FullName = fullName
	s.Email = email
	s.Phone = phone
	s.Role = role
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
