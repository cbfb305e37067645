package handlers

import (
	"net/http"

	"backoffice/internal/dto"
	"backoffice/internal/errors"
	"backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Category responses are bare objects and arrays with no envelope.

// CreateCategory creates a category with optional nested subcategories
// @Summary Create category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} models.Category "Created category"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_002 - Name already exists"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		if err == services.ErrCategoryNameExists {
			return SendError(c, errors.CategoryNameExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// GetCategory retrieves a category with its subcategories
// @Summary Get category by ID
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} models.Category "Category with subcategories"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{categoryId} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	category, err := h.categoryService.GetCategory(categoryID)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// ListCategories retrieves the full category tree
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Category "All categories with subcategories"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// UpdateCategory replaces a category's fields and subcategory set
// @Summary Update category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Param request body dto.UpdateCategoryRequest true "Replacement category"
// @Success 200 {object} models.Category "Updated category"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_002 - Name already exists"
// @Router /categories/{categoryId} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.UpdateCategory(categoryID, &req)
	if err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		if err == services.ErrCategoryNameExists {
			return SendError(c, errors.CategoryNameExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category and its subcategories
// @Summary Delete category
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Category deleted"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{categoryId} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		if err == services.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}
