package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountCategoryCash          = "cash"
	AccountCategoryBank          = "bank"
	AccountCategoryMobileBanking = "mobile_banking"
	AccountCategoryCheck         = "check"
	AccountCategoryOthers        = "others"

	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
	AccountStatusClosed   = "closed"
)

var (
	ErrInvalidAccountCategory = errors.New("invalid account category")
	ErrInvalidAccountStatus   = errors.New("invalid account status")
	ErrNegativeBalance        = errors.New("balance cannot be negative")
	ErrAccountNotActive       = errors.New("account is not active")
	ErrInsufficientFunds      = errors.New("insufficient funds")
)

// BankAccount represents a bank or cash account managed by the back office
type BankAccount struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BankName       string          `gorm:"type:varchar(100);not null" json:"bankName"`
	AccountNumber  string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"accountNumber"`
	AccountType    string          `gorm:"type:varchar(20);not null" json:"accountType"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'BDT'" json:"currency"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"currentBalance"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"initialBalance"`
	Status         string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	BranchName     string          `gorm:"type:varchar(100)" json:"branchName,omitempty"`
	BranchCode     string          `gorm:"type:varchar(20)" json:"branchCode,omitempty"`
	CreatedBy      string          `gorm:"type:varchar(100)" json:"createdBy,omitempty"`
	CreatedAt      time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updatedAt"`
	ClosedAt       *time.Time      `gorm:"index" json:"closedAt,omitempty"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for BankAccount
func (a *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	if a.Currency == "" {
		a.Currency = "BDT"
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for BankAccount
func (a *BankAccount) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *BankAccount) Validate() error {
	if a.BankName == "" {
		return errors.New("bank name is required")
	}

	if a.AccountNumber == "" {
		return errors.New("account number is required")
	}

	if !IsValidAccountCategory(a.AccountType) {
		return ErrInvalidAccountCategory
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if a.CurrentBalance.LessThan(decimal.Zero) {
		return ErrNegativeBalance
	}

	return nil
}

// IsActive returns true if the account is active
func (a *BankAccount) IsActive() bool {
	return a.Status == AccountStatusActive
}

// Close closes the account. The balance must already be zero.
func (a *BankAccount) Close() error {
	if a.Status == AccountStatusClosed {
		return errors.New("account is already closed")
	}

	if !a.CurrentBalance.IsZero() {
		return errors.New("account balance must be zero to close")
	}

	a.Status = AccountStatusClosed
	now := time.Now()
	a.ClosedAt = &now
	return nil
}

// CanWithdraw checks if the amount can be withdrawn
func (a *BankAccount) CanWithdraw(amount decimal.Decimal) bool {
	return a.IsActive() && a.CurrentBalance.GreaterThanOrEqual(amount) && amount.GreaterThan(decimal.Zero)
}

// Debit debits the account
func (a *BankAccount) Debit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}

	if a.CurrentBalance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.CurrentBalance = a.CurrentBalance.Sub(amount)
	return nil
}

// Credit credits the account
func (a *BankAccount) Credit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.CurrentBalance = a.CurrentBalance.Add(amount)
	return nil
}

// TableName returns the table name for BankAccount
func (a *BankAccount) TableName() string {
	return "bank_accounts"
}

// AccountCategories returns the fixed set of valid account categories
func AccountCategories() []string {
	return []string{
		AccountCategoryCash,
		AccountCategoryBank,
		AccountCategoryMobileBanking,
		AccountCategoryCheck,
		AccountCategoryOthers,
	}
}

// IsValidAccountCategory checks if the account category is valid
func IsValidAccountCategory(category string) bool {
	switch category {
	case AccountCategoryCash, AccountCategoryBank, AccountCategoryMobileBanking,
		AccountCategoryCheck, AccountCategoryOthers:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusInactive, AccountStatusClosed:
		return true
	default:
		return false
	}
}
