package settings

import "context"

// Repository persists the single store and staff profile rows
type Repository interface {
	// GetStoreProfile returns the store profile
	GetStoreProfile(ctx context.Context) (*StoreProfile, error)

	// SaveStoreProfile creates or replaces the store profile
	SaveStoreProfile(ctx context.Context, profile *StoreProfile) error

	// GetStaffProfile returns the staff profile
	GetStaffProfile(ctx context.Context) (*StaffProfile, error)

	// SaveStaffProfile creates or replaces the staff profile
	SaveStaffProfile(ctx context.Context, profile *StaffProfile) error
}
