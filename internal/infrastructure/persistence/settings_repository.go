package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/phonestore/backend/internal/domain/settings"
	"github.com/phonestore/backend/internal/domain/shared"
)

// GormSettingsRepository implements settings.Repository using GORM. Both
// profiles are single-row tables; reads take the oldest row.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetStoreProfile returns the store identity
func (r *GormSettingsRepository) GetStoreProfile(ctx context.Context) (*settings.StoreProfile, error) {
	var profile settings.StoreProfile
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SaveStoreProfile creates or updates the store identity
func (r *GormSettingsRepository) SaveStoreProfile(ctx context.Context, profile *settings.StoreProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// GetStaffProfile returns the cashier identity
func (r *GormSettingsRepository) GetStaffProfile(ctx context.Context) (*settings.StaffProfile, error) {
	var profile settings.StaffProfile
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SaveStaffProfile creates or updates the cashier identity
func (r *GormSettingsRepository) SaveStaffProfile(ctx context.Context, profile *settings.StaffProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Ensure GormSettingsRepository implements settings.Repository
var _ settings.Repository = (*GormSettingsRepository)(nil)
