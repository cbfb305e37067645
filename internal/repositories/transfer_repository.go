package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransferNotFound     = errors.New("transfer not found")
	ErrDuplicateIdempotency = errors.New("idempotency key already used")
)

// transferRepository implements TransferRepositoryInterface
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) TransferRepositoryInterface {
	return &transferRepository{
		db: db,
	}
}

// Create creates a new transfer record
func (r *transferRepository) Create(transfer *models.Transfer) error {
	if err := r.db.Create(transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateIdempotency
		}
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

// GetByID retrieves a transfer by ID
func (r *transferRepository) GetByID(id uuid.UUID) (*models.Transfer, error) {
	transfer := &models.Transfer{ID: id}
	if err := r.db.First(transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return transfer, nil
}

// GetByIdempotencyKey retrieves a transfer by its idempotency key
func (r *transferRepository) GetByIdempotencyKey(key string) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := r.db.Where("idempotency_key = ?", key).First(&transfer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer by idempotency key: %w", err)
	}
	return &transfer, nil
}

// Update updates a transfer record
func (r *transferRepository) Update(transfer *models.Transfer) error {
	if err := r.db.Save(transfer).Error; err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}
	return nil
}
