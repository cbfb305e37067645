package client

import (
	"context"
	"net/http"
	"time"

	"backoffice/pkg/cache"
)

// Category groups bank accounts for reporting
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Description   string        `json:"description"`
	SubCategories []SubCategory `json:"subCategories"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// SubCategory is one nested entry under a category
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SubCategoryInput is a subcategory in a create or update request
type SubCategoryInput struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// CreateCategoryRequest creates a category with optional subcategories
type CreateCategoryRequest struct {
	Name          string             `json:"name"`
	Icon          string             `json:"icon,omitempty"`
	Description   string             `json:"description,omitempty"`
	SubCategories []SubCategoryInput `json:"subCategories,omitempty"`
}

// UpdateCategoryRequest replaces a category's fields and subcategory set
type UpdateCategoryRequest struct {
	Name          string             `json:"name"`
	Icon          string             `json:"icon,omitempty"`
	Description   string             `json:"description,omitempty"`
	SubCategories []SubCategoryInput `json:"subCategories,omitempty"`
}

// ListCategories returns all categories
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	v, err := c.get(ctx, keyCategories, "/api/v1/categories", slowStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var categories []Category
	if err := decodeList(*v.(*[]byte), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory returns one category by id. An empty id returns immediately
// without a request.
func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	if id == "" {
		return nil, nil
	}

	key := cache.BuildKey(keyCategories, id)
	v, err := c.get(ctx, key, "/api/v1/categories/"+id, slowStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var category Category
	if err := decodeSingle(*v.(*[]byte), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory creates a category and invalidates the category caches
func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPost, "/api/v1/categories", req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyCategories)

	var category Category
	if err := decodeSingle(raw, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory replaces a category's fields and subcategories
func (c *Client) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (*Category, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPut, "/api/v1/categories/"+id, req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyCategories)

	var category Category
	if err := decodeSingle(raw, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/categories/"+id, nil, nil); err != nil {
		return err
	}
	c.invalidate(keyCategories)
	return nil
}
