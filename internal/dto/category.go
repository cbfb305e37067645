package dto

// Category Request DTOs

// SubCategoryInput is a nested subcategory inside a category payload
type SubCategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Icon string `json:"icon" validate:"omitempty,max=100"`
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name          string             `json:"name" validate:"required,min=1,max=100"`
	Icon          string             `json:"icon" validate:"omitempty,max=100"`
	Description   string             `json:"description" validate:"omitempty,max=1000"`
	SubCategories []SubCategoryInput `json:"subCategories" validate:"omitempty,dive"`
}

// UpdateCategoryRequest replaces a category's fields and its subcategory set
type UpdateCategoryRequest struct {
	Name          string             `json:"name" validate:"required,min=1,max=100"`
	Icon          string             `json:"icon" validate:"omitempty,max=100"`
	Description   string             `json:"description" validate:"omitempty,max=1000"`
	SubCategories []SubCategoryInput `json:"subCategories" validate:"omitempty,dive"`
}
