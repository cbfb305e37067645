package handlers

import (
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/errors"
	"backoffice/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an operator and issues an access token
// @Summary Operator login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Access token and profile"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateUser registers a new operator account
// @Summary Create operator (admin)
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Operator details"
// @Success 201 {object} dto.DataResponse "Created operator"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin role"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Email already registered"
// @Router /auth/users [post]
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	user, err := h.authService.CreateUser(req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		if err == services.ErrUserAlreadyExists {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.DataResponse{Data: user})
}

// Me returns the authenticated operator's identity from the token claims
// @Summary Current operator
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DataResponse "Operator identity"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return SendError(c, errors.AuthMissingToken)
	}

	email, _ := c.Get("user_email").(string)
	role, _ := c.Get("user_role").(string)

	return c.JSON(http.StatusOK, dto.DataResponse{Data: dto.UserProfileResponse{
		ID:    userID.String(),
		Email: email,
		Role:  role,
	}})
}
