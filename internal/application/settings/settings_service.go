package settings

import (
	"context"

	"github.com/phonestore/backend/internal/domain/settings"
)

// SettingsService serves the store and staff profiles
type SettingsService struct {
	repo settings.Repository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo settings.Repository) *SettingsService {
	return &SettingsService{
		repo: repo,
	}
}

// GetStoreProfile returns the store identity
func (s *SettingsService) GetStoreProfile(ctx context.Context) (*StoreProfileResponse, error) {
	profile, err := s.repo.GetStoreProfile(ctx)
	if err != nil {
		return nil, err
	}
	resp := ToStoreProfileResponse(profile)
	return &resp, nil
}

// UpdateStoreProfile replaces the store identity
func (s *SettingsService) UpdateStoreProfile(ctx context.Context, req UpdateStoreProfileRequest) (*StoreProfileResponse, error) {
	profile, err := s.repo.GetStoreProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := profile.Update(req.Name, req.Address, req.Hotline, req.Email); err != nil {
		return nil, err
	}
	if err := s.repo.SaveStoreProfile(ctx, profile); err != nil {
		return nil, err
	}
	resp := ToStoreProfileResponse(profile)
	return &resp, nil
}

// GetStaffProfile returns the cashier identity
func (s *SettingsService) GetStaffProfile(ctx context.Context) (*StaffProfileResponse, error) {
	profile, err := s.repo.GetStaffProfile(ctx)
	if err != nil {
		return nil, err
	}
	resp := ToStaffProfileResponse(profile)
	return &resp, nil
}

// UpdateStaffProfile replaces the cashier identity
func (s *SettingsService) UpdateStaffProfile(ctx context.Context, req UpdateStaffProfileRequest) (*StaffProfileResponse, error) {
	profile, err := s.repo.GetStaffProfile(ctx)
	if err != nil {
		return nil, err
	}
	if err := profile.Update(req.FullName, req.Email, req.Phone, req.Role); err != nil {
		return nil, err
	}
	if err := s.repo.SaveStaffProfile(ctx, profile); err != nil {
		return nil, err
	}
	resp := ToStaffProfileResponse(profile)
	return &resp, nil
}
