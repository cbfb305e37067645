package handlers

import (
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/errors"
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

// DilarHandler handles dilar HTTP requests
type DilarHandler struct {
	dilarService services.DilarServiceInterface
}

// NewDilarHandler creates a new dilar handler
func NewDilarHandler(dilarService services.DilarServiceInterface) *DilarHandler {
	return &DilarHandler{dilarService: dilarService}
}

// CreateDilar registers a new dilar
// @Summary Register a dilar
// @Description Register a currency dealer. Contact numbers must be unique Bangladeshi mobile numbers.
// @Tags Dilars
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDilarRequest true "Dilar details"
// @Success 201 {object} dto.SuccessResponse "Registered dilar"
// @Failure 400 {object} errors.ErrorResponse "DILAR_004 - Invalid mobile number"
// @Failure 422 {object} errors.ErrorResponse "DILAR_003 - Contact number already registered"
// @Router /dilars [post]
func (h *DilarHandler) CreateDilar(c echo.Context) error {
	var req dto.CreateDilarRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	dilar, err := h.dilarService.CreateDilar(&req)
	if err != nil {
		if err == services.ErrContactNoExists {
			return SendError(c, errors.DilarContactExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SuccessResponse{
		Success: true,
		Data:    dilar,
		Message: "Dilar registered successfully",
	})
}

// GetDilar retrieves a specific dilar by ID
// @Summary Get dilar by ID
// @Tags Dilars
// @Security BearerAuth
// @Produce json
// @Param dilarId path string true "Dilar ID (UUID)"
// @Success 200 {object} dto.SuccessResponse "Dilar details"
// @Failure 404 {object} errors.ErrorResponse "DILAR_001 - Dilar not found"
// @Router /dilars/{dilarId} [get]
func (h *DilarHandler) GetDilar(c echo.Context) error {
	dilarID, err := parseIDParam(c, "dilarId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid dilar ID"))
	}

	dilar, err := h.dilarService.GetDilar(dilarID)
	if err != nil {
		if err == services.ErrDilarNotFound {
			return SendError(c, errors.DilarNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Data: dilar})
}

// ListDilars retrieves dilars with filters and pagination
// @Summary List dilars
// @Tags Dilars
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page (max 100)" default(20)
// @Param is_active query bool false "Filter by active flag"
// @Param search query string false "Match owner, trade name, or contact number"
// @Success 200 {object} dto.DilarListResponse "Paginated dilar list"
// @Router /dilars [get]
func (h *DilarHandler) ListDilars(c echo.Context) error {
	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", 20)

	filters := models.DilarFilters{
		IsActive: getBoolParam(c, "is_active"),
		Search:   c.QueryParam("search"),
	}

	dilars, pagination, err := h.dilarService.ListDilars(filters, page, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DilarListResponse{
		Success:    true,
		Data:       dilars,
		Pagination: pagination,
	})
}

// UpdateDilar partially updates a dilar
// @Summary Update dilar
// @Tags Dilars
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param dilarId path string true "Dilar ID (UUID)"
// @Param request body dto.UpdateDilarRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse "Updated dilar"
// @Failure 404 {object} errors.ErrorResponse "DILAR_001 - Dilar not found"
// @Failure 422 {object} errors.ErrorResponse "DILAR_003 - Contact number already registered"
// @Router /dilars/{dilarId} [put]
func (h *DilarHandler) UpdateDilar(c echo.Context) error {
	dilarID, err := parseIDParam(c, "dilarId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid dilar ID"))
	}

	var req dto.UpdateDilarRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	dilar, err := h.dilarService.UpdateDilar(dilarID, &req)
	if err != nil {
		if err == services.ErrDilarNotFound {
			return SendError(c, errors.DilarNotFound)
		}
		if err == services.ErrContactNoExists {
			return SendError(c, errors.DilarContactExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Data:    dilar,
		Message: "Dilar updated successfully",
	})
}

// DeactivateDilar soft-deletes a dilar by marking it inactive.
// Historical exchanges keep their dilar reference.
// @Summary Deactivate dilar
// @Tags Dilars
// @Security BearerAuth
// @Produce json
// @Param dilarId path string true "Dilar ID (UUID)"
// @Success 200 {object} dto.SuccessResponse "Dilar deactivated"
// @Failure 404 {object} errors.ErrorResponse "DILAR_001 - Dilar not found"
// @Router /dilars/{dilarId} [delete]
func (h *DilarHandler) DeactivateDilar(c echo.Context) error {
	dilarID, err := parseIDParam(c, "dilarId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid dilar ID"))
	}

	if err := h.dilarService.DeactivateDilar(dilarID); err != nil {
		if err == services.ErrDilarNotFound {
			return SendError(c, errors.DilarNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Dilar deactivated successfully",
	})
}
