package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExchangeNotFound = errors.New("exchange not found")

// exchangeRepository implements ExchangeRepositoryInterface
type exchangeRepository struct {
	db *gorm.DB
}

// NewExchangeRepository creates a new exchange repository
func NewExchangeRepository(db *gorm.DB) ExchangeRepositoryInterface {
	return &exchangeRepository{
		db: db,
	}
}

// Create creates a new exchange
func (r *exchangeRepository) Create(exchange *models.Exchange) error {
	if err := r.db.Create(exchange).Error; err != nil {
		return fmt.Errorf("failed to create exchange: %w", err)
	}
	return nil
}

// GetByID retrieves an exchange by ID
func (r *exchangeRepository) GetByID(id uuid.UUID) (*models.Exchange, error) {
	exchange := &models.Exchange{ID: id}
	if err := r.db.First(exchange).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExchangeNotFound
		}
		return nil, fmt.Errorf("failed to get exchange: %w", err)
	}
	return exchange, nil
}

// GetAllWithFilters retrieves exchanges with filters and pagination
func (r *exchangeRepository) GetAllWithFilters(filters models.ExchangeFilters, offset, limit int) ([]models.Exchange, int64, error) {
	var exchanges []models.Exchange
	var total int64

	query := r.db.Model(&models.Exchange{})

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.CurrencyCode != "" {
		query = query.Where("currency_code = ?", filters.CurrencyCode)
	}
	if filters.CustomerType != "" {
		query = query.Where("customer_type = ?", filters.CustomerType)
	}
	if filters.DilarID != nil {
		query = query.Where("dilar_id = ?", *filters.DilarID)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("full_name LIKE ? OR mobile_number LIKE ?", pattern, pattern)
	}
	if filters.FromDate != nil {
		query = query.Where("date >= ?", *filters.FromDate)
	}
	if filters.ToDate != nil {
		query = query.Where("date <= ?", *filters.ToDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered exchanges: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").Find(&exchanges).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered exchanges: %w", err)
	}

	return exchanges, total, nil
}

// GetByCurrencyCode retrieves every exchange in one currency, oldest first.
// Reserve replay depends on this ordering.
func (r *exchangeRepository) GetByCurrencyCode(currencyCode string) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	if err := r.db.Where("currency_code = ?", currencyCode).
		Order("date ASC, created_at ASC").
		Find(&exchanges).Error; err != nil {
		return nil, fmt.Errorf("failed to get exchanges for currency: %w", err)
	}
	return exchanges, nil
}

// ListCurrencyCodes returns the distinct currency codes that have been traded
func (r *exchangeRepository) ListCurrencyCodes() ([]string, error) {
	var codes []string
	if err := r.db.Model(&models.Exchange{}).
		Distinct("currency_code").
		Order("currency_code ASC").
		Pluck("currency_code", &codes).Error; err != nil {
		return nil, fmt.Errorf("failed to list currency codes: %w", err)
	}
	return codes, nil
}

// Update updates an exchange
func (r *exchangeRepository) Update(exchange *models.Exchange) error {
	if err := r.db.Save(exchange).Error; err != nil {
		return fmt.Errorf("failed to update exchange: %w", err)
	}
	return nil
}

// Delete soft deletes an exchange
func (r *exchangeRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Exchange{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete exchange: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExchangeNotFound
	}
	return nil
}
