package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransferStatusPending   = "pending"
	TransferStatusCompleted = "completed"
	TransferStatusFailed    = "failed"
)

var (
	ErrInvalidTransferStatus = errors.New("invalid transfer status")
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
)

// Transfer represents an account-to-account transfer. The idempotency key is
// client-generated so a retried request never moves money twice.
type Transfer struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	FromAccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"fromAccountId"`
	ToAccountID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"toAccountId"`
	Amount              decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	IdempotencyKey      string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"idempotencyKey"`
	Status              string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DebitTransactionID  *uuid.UUID      `gorm:"type:uuid;index" json:"debitTransactionId,omitempty"`
	CreditTransactionID *uuid.UUID      `gorm:"type:uuid;index" json:"creditTransactionId,omitempty"`
	ErrorMessage        *string         `gorm:"type:text" json:"errorMessage,omitempty"`
	CreatedBy           string          `gorm:"type:varchar(100)" json:"createdBy,omitempty"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"createdAt"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updatedAt"`
	CompletedAt         *time.Time      `json:"completedAt,omitempty"`
	FailedAt            *time.Time      `json:"failedAt,omitempty"`

	// Associations
	FromAccount BankAccount `gorm:"foreignKey:FromAccountID" json:"-"`
	ToAccount   BankAccount `gorm:"foreignKey:ToAccountID" json:"-"`
}

// BeforeCreate hook for Transfer
func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransferStatusPending
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transfer
func (t *Transfer) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transfer fields
func (t *Transfer) Validate() error {
	if t.FromAccountID == uuid.Nil {
		return errors.New("from account ID is required")
	}

	if t.ToAccountID == uuid.Nil {
		return errors.New("to account ID is required")
	}

	if t.FromAccountID == t.ToAccountID {
		return errors.New("from and to accounts cannot be the same")
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTransferAmount
	}

	if t.Description == "" {
		return errors.New("description is required")
	}

	if t.IdempotencyKey == "" {
		return errors.New("idempotency key is required")
	}

	if !IsValidTransferStatus(t.Status) {
		return ErrInvalidTransferStatus
	}

	return nil
}

// IsCompleted returns true if the transfer is completed
func (t *Transfer) IsCompleted() bool {
	return t.Status == TransferStatusCompleted
}

// Complete marks the transfer as completed and links transaction IDs
func (t *Transfer) Complete(debitTxID, creditTxID uuid.UUID) {
	t.Status = TransferStatusCompleted
	now := time.Now()
	t.CompletedAt = &now
	t.DebitTransactionID = &debitTxID
	t.CreditTransactionID = &creditTxID
}

// Fail marks the transfer as failed with an error message
func (t *Transfer) Fail(errorMessage string) {
	t.Status = TransferStatusFailed
	now := time.Now()
	t.FailedAt = &now
	t.ErrorMessage = &errorMessage
}

// CanTransitionTo checks if a transfer can transition to a new status
func (t *Transfer) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		TransferStatusPending:   {TransferStatusCompleted, TransferStatusFailed},
		TransferStatusCompleted: {},
		TransferStatusFailed:    {},
	}

	allowedStatuses, exists := validTransitions[t.Status]
	if !exists {
		return false
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// TableName returns the table name for Transfer
func (t *Transfer) TableName() string {
	return "transfers"
}

// IsValidTransferStatus checks if the transfer status is valid
func IsValidTransferStatus(status string) bool {
	switch status {
	case TransferStatusPending, TransferStatusCompleted, TransferStatusFailed:
		return true
	default:
		return false
	}
}
