package services

import (
	"errors"
	"fmt"
	"log/slog"

	"backoffice/internal/dto"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNameExists = errors.New("category name already exists")
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *slog.Logger) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateCategory creates a category with its nested subcategories
func (s *categoryService) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	exists, err := s.categoryRepo.ExistsByName(req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, ErrCategoryNameExists
	}

	category := &models.Category{
		Name:          req.Name,
		Icon:          req.Icon,
		Description:   req.Description,
		SubCategories: toSubCategories(req.SubCategories),
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameExists) {
			return nil, ErrCategoryNameExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created", "categoryId", category.ID, "name", category.Name)
	return category, nil
}

// GetCategory retrieves a category with its subcategories
func (s *categoryService) GetCategory(categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// ListCategories returns the full category tree
func (s *categoryService) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory replaces a category's fields and subcategory set
func (s *categoryService) UpdateCategory(categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != category.Name {
		exists, err := s.categoryRepo.ExistsByName(req.Name, &categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if exists {
			return nil, ErrCategoryNameExists
		}
	}

	category.Name = req.Name
	category.Icon = req.Icon
	category.Description = req.Description
	category.SubCategories = toSubCategories(req.SubCategories)

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameExists) {
			return nil, ErrCategoryNameExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return s.GetCategory(categoryID)
}

// DeleteCategory removes a category and its subcategories
func (s *categoryService) DeleteCategory(categoryID uuid.UUID) error {
	if err := s.categoryRepo.Delete(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("category deleted", "categoryId", categoryID)
	return nil
}

func toSubCategories(inputs []dto.SubCategoryInput) []models.SubCategory {
	subs := make([]models.SubCategory, 0, len(inputs))
	for _, in := range inputs {
		subs = append(subs, models.SubCategory{
			Name: in.Name,
			Icon: in.Icon,
		})
	}
	return subs
}
