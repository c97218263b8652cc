package handler

import (
	"github.com/gin-gonic/gin"

	settingsapp "github.com/phonestore/backend/internal/application/settings"
)

// SettingsHandler handles store and staff profile endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetStoreProfile returns the store profile
func (h *SettingsHandler) GetStoreProfile(c *gin.Context) {
	profile, err := h.settingsService.GetStoreProfile(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// UpdateStoreProfile updates the store profile
func (h *SettingsHandler) UpdateStoreProfile(c *gin.Context) {
	var req settingsapp.UpdateStoreProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.settingsService.UpdateStoreProfile(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// GetStaffProfile returns the staff profile
func (h *SettingsHandler) GetStaffProfile(c *gin.Context) {
	profile, err := h.settingsService.GetStaffProfile(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// UpdateStaffProfile updates the staff profile
func (h *SettingsHandler) UpdateStaffProfile(c *gin.Context) {
	var req settingsapp.UpdateStaffProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	profile, err := h.settingsService.UpdateStaffProfile(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}
