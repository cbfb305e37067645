package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a category with its nested subcategories
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryNameExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category with its subcategories
func (r *categoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("SubCategories").First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetAll retrieves all categories with subcategories nested inline
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Preload("SubCategories").
		Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// Update replaces a category and its subcategory set in one transaction
func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).
			Delete(&models.SubCategory{}).Error; err != nil {
			return fmt.Errorf("failed to replace subcategories: %w", err)
		}

		for i := range category.SubCategories {
			category.SubCategories[i].CategoryID = category.ID
		}

		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).
			Save(category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCategoryNameExists
			}
			return fmt.Errorf("failed to update category: %w", err)
		}

		return nil
	})
}

// Delete removes a category and its subcategories
func (r *categoryRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).
			Delete(&models.SubCategory{}).Error; err != nil {
			return fmt.Errorf("failed to delete subcategories: %w", err)
		}

		result := tx.Delete(&models.Category{ID: id})
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

// ExistsByName checks whether a category name is taken, optionally excluding
// one category so renames do not collide with themselves.
func (r *categoryRepository) ExistsByName(name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Category{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name existence: %w", err)
	}
	return count > 0, nil
}
