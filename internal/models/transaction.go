package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit      = "credit"
	TransactionTypeDebit       = "debit"
	TransactionTypeTransferIn  = "transfer_in"
	TransactionTypeTransferOut = "transfer_out"

	TransactionStatusCompleted = "completed"
	TransactionStatusReversed  = "reversed"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction represents a single ledger entry against a bank account.
// Entries are append-only; balances are never recomputed from the client side.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"accountId"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transactionType"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	BalanceBefore   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balanceBefore"`
	BalanceAfter    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balanceAfter"`
	Description     string          `gorm:"type:text" json:"description"`
	Reference       string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	Note            string          `gorm:"type:text" json:"note,omitempty"`
	Status          string          `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	CreatedBy       string          `gorm:"type:varchar(100)" json:"createdBy,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updatedAt"`

	// Associations
	Account BankAccount `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}

	if t.Reference == "" {
		t.Reference = GenerateTransactionReference()
	}

	if t.Date.IsZero() {
		t.Date = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	return t.ensureBalanceIsConsistent()
}

// IsInflow reports whether the transaction increases the account balance
func (t *Transaction) IsInflow() bool {
	return t.TransactionType == TransactionTypeCredit || t.TransactionType == TransactionTypeTransferIn
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit,
		TransactionTypeTransferIn, TransactionTypeTransferOut:
		return true
	default:
		return false
	}
}

// GenerateTransactionReference generates a unique transaction reference
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}

func (t *Transaction) ensureBalanceIsConsistent() error {
	expected := t.BalanceBefore
	if t.IsInflow() {
		expected = expected.Add(t.Amount)
	} else {
		expected = expected.Sub(t.Amount)
	}

	if !expected.Equal(t.BalanceAfter) {
		return errors.New("balance calculation mismatch")
	}
	return nil
}
