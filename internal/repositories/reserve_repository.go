package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"gorm.io/gorm"
)

var ErrReserveNotFound = errors.New("reserve not found")

// reserveRepository implements ReserveRepositoryInterface
type reserveRepository struct {
	db *gorm.DB
}

// NewReserveRepository creates a new reserve repository
func NewReserveRepository(db *gorm.DB) ReserveRepositoryInterface {
	return &reserveRepository{
		db: db,
	}
}

// GetByCurrencyCode retrieves the reserve row for one currency
func (r *reserveRepository) GetByCurrencyCode(currencyCode string) (*models.Reserve, error) {
	var reserve models.Reserve
	if err := r.db.Where("currency_code = ?", currencyCode).First(&reserve).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReserveNotFound
		}
		return nil, fmt.Errorf("failed to get reserve: %w", err)
	}
	return &reserve, nil
}

// GetAll retrieves all currency reserves ordered by currency code
func (r *reserveRepository) GetAll() ([]models.Reserve, error) {
	var reserves []models.Reserve
	if err := r.db.Order("currency_code ASC").Find(&reserves).Error; err != nil {
		return nil, fmt.Errorf("failed to get reserves: %w", err)
	}
	return reserves, nil
}

// Save inserts or replaces the reserve row for its currency
func (r *reserveRepository) Save(reserve *models.Reserve) error {
	existing, err := r.GetByCurrencyCode(reserve.CurrencyCode)
	if err != nil && !errors.Is(err, ErrReserveNotFound) {
		return err
	}

	if existing != nil {
		reserve.ID = existing.ID
	}

	if err := r.db.Save(reserve).Error; err != nil {
		return fmt.Errorf("failed to save reserve: %w", err)
	}
	return nil
}

// DeleteByCurrencyCode removes the reserve row for a currency. Used when the
// last exchange in a currency is deleted and the projection becomes empty.
func (r *reserveRepository) DeleteByCurrencyCode(currencyCode string) error {
	result := r.db.Where("currency_code = ?", currencyCode).Delete(&models.Reserve{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reserve: %w", result.Error)
	}
	return nil
}
