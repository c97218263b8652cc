package settings

import (
	"github.com/phonestore/backend/internal/domain/settings"
)

// UpdateStoreProfileRequest replaces the store identity
type UpdateStoreProfileRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"max=500"`
	Hotline string `json:"hotline" binding:"max=50"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
}

// UpdateStaffProfileRequest replaces the cashier identity
type UpdateStaffProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Phone    string `json:"phone" binding:"max=20"`
	Role     string `json:"role" binding:"max=50"`
}

// StoreProfileResponse represents the store profile in API responses
type StoreProfileResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Hotline string `json:"hotline"`
	Email   string `json:"email"`
}

// StaffProfileResponse represents the staff profile in API responses
type StaffProfileResponse struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// ToStoreProfileResponse converts a domain store profile to a response DTO
func ToStoreProfileResponse(profile *settings.StoreProfile) StoreProfileResponse {
	return StoreProfileResponse{
		Name:    profile.Name,
		Address: profile.Address,
		Hotline: profile.Hotline,
		Email:   profile.Email,
	}
}

// ToStaffProfileResponse converts a domain staff profile to a response DTO
func ToStaffProfileResponse(profile *settings.StaffProfile) StaffProfileResponse {
	return StaffProfileResponse{
		FullName: profile.FullName,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Role:     profile.Role,
	}
}
