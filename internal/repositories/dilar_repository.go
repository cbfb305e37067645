package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDilarNotFound  = errors.New("dilar not found")
	ErrContactNoInUse = errors.New("contact number already registered")
)

// dilarRepository implements DilarRepositoryInterface
type dilarRepository struct {
	db *gorm.DB
}

// NewDilarRepository creates a new dilar repository
func NewDilarRepository(db *gorm.DB) DilarRepositoryInterface {
	return &dilarRepository{
		db: db,
	}
}

// Create creates a new dilar
func (r *dilarRepository) Create(dilar *models.Dilar) error {
	if err := r.db.Create(dilar).Error; err != nil {
		return fmt.Errorf("failed to create dilar: %w", err)
	}
	return nil
}

// GetByID retrieves a dilar by ID
func (r *dilarRepository) GetByID(id uuid.UUID) (*models.Dilar, error) {
	dilar := &models.Dilar{ID: id}
	if err := r.db.First(dilar).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDilarNotFound
		}
		return nil, fmt.Errorf("failed to get dilar: %w", err)
	}
	return dilar, nil
}

// GetAllWithFilters retrieves dilars with filters and pagination
func (r *dilarRepository) GetAllWithFilters(filters models.DilarFilters, offset, limit int) ([]models.Dilar, int64, error) {
	var dilars []models.Dilar
	var total int64

	query := r.db.Model(&models.Dilar{})

	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("owner_name LIKE ? OR trade_name LIKE ? OR contact_no LIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered dilars: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&dilars).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered dilars: %w", err)
	}

	return dilars, total, nil
}

// Update updates a dilar
func (r *dilarRepository) Update(dilar *models.Dilar) error {
	if err := r.db.Save(dilar).Error; err != nil {
		return fmt.Errorf("failed to update dilar: %w", err)
	}
	return nil
}

// Deactivate disables a dilar without touching its exchange history
func (r *dilarRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.Dilar{ID: id}).Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate dilar: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDilarNotFound
	}
	return nil
}

// ExistsByContactNo checks whether a contact number is already registered,
// optionally excluding one dilar so updates do not collide with themselves.
func (r *dilarRepository) ExistsByContactNo(contactNo string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Dilar{}).Where("contact_no = ?", contactNo)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check contact number existence: %w", err)
	}
	return count > 0, nil
}
