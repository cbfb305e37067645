package handlers

import (
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/errors"
	"backoffice/internal/settings"

	"github.com/labstack/echo/v4"
)

// SettingsHandler exposes the persisted display settings
type SettingsHandler struct {
	store *settings.Store
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetSettings returns the current settings, falling back to defaults when
// nothing has been saved
// @Summary Get display settings
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DataResponse "Current settings"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	current, err := h.store.Load()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DataResponse{Data: current})
}

// UpdateSettings replaces the persisted settings
// @Summary Update display settings
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body settings.Settings true "New settings"
// @Success 200 {object} dto.DataResponse "Saved settings"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req settings.Settings
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if !validCurrencyPosition(req.CurrencyPosition) {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("currencyPosition must be left or right"))
	}

	if err := h.store.Save(req); err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DataResponse{Data: req})
}

// validCurrencyPosition accepts left/right plus the older prefix/suffix names
// that saved settings files may still carry.
func validCurrencyPosition(position string) bool {
	switch position {
	case "", "left", "right", "prefix", "suffix":
		return true
	}
	return false
}
