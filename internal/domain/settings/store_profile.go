package settings

import (
	"time"

	"github.com/phonestore/backend/internal/domain/shared"
)

// StoreProfile holds the shop identity printed on receipts.
// A single row exists; updates replace it in place.
type StoreProfile struct {
	shared.BaseAggregateRoot
	Name    string `gorm:"type:varchar(100);not null"`
	Address string `gorm:"type:text;not null"`
	Hotline string `gorm:"type:varchar(50);not null"`
	Email   string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (StoreProfile) TableName() string {
	return "store_profiles"
}

// NewStoreProfile creates a store profile
func NewStoreProfile(name, address, hotline, email string) (*StoreProfile, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Store name cannot be empty")
	}
	return &StoreProfile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           address,
		Hotline:           hotline,
		Email:             email,
	}, nil
}

// Update replaces the profile fields
func (s *StoreProfile) Update(name, address, hotline, email string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Store name cannot be empty")
	}
	s.Name = name
	s.Address = address
	s.Hotline = hotline
	s.Email = email
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
