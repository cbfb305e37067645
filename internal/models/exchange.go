package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ExchangeTypeBuy  = "Buy"
	ExchangeTypeSell = "Sell"

	CustomerTypeWalkIn = "walk_in"
	CustomerTypeDilar  = "dilar"
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

var (
	ErrInvalidExchangeType = errors.New("invalid exchange type")
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	ErrInvalidRate         = errors.New("exchange rate must be positive")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
)

// Exchange is a single currency-exchange trade with either a walk-in customer
// or a dilar.
//
// The quantity field follows the desk's convention:
//   - Buy: quantity is the BDT paid out; the foreign amount received is
//     quantity / exchangeRate.
//   - Sell: quantity is the foreign units sold; the BDT taken in is
//     quantity * exchangeRate.
type Exchange struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date               time.Time       `gorm:"not null;index" json:"date"`
	FullName           string          `gorm:"type:varchar(100);not null" json:"fullName"`
	MobileNumber       string          `gorm:"type:varchar(20)" json:"mobileNumber,omitempty"`
	Type               string          `gorm:"type:varchar(10);not null;index" json:"type"`
	CurrencyCode       string          `gorm:"type:varchar(3);not null;index" json:"currencyCode"`
	CurrencyName       string          `gorm:"type:varchar(50)" json:"currencyName,omitempty"`
	ExchangeRate       decimal.Decimal `gorm:"type:decimal(18,6);not null" json:"exchangeRate"`
	Quantity           decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"quantity"`
	AmountBDT          decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount_bdt"`
	ForeignAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"foreignCurrencyAmount"`
	CustomerType       string          `gorm:"type:varchar(20);not null;default:'walk_in'" json:"customerType"`
	DilarID            *uuid.UUID      `gorm:"type:uuid;index" json:"dilarId,omitempty"`
	RealizedProfitLoss decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"realizedProfitLoss"`
	CreatedBy          string          `gorm:"type:varchar(100)" json:"createdBy,omitempty"`
	CreatedAt          time.Time       `gorm:"not null;index" json:"createdAt"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updatedAt"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`

	// Associations
	Dilar *Dilar `gorm:"foreignKey:DilarID" json:"-"`
}

// BeforeCreate hook for Exchange
func (e *Exchange) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.CustomerType == "" {
		e.CustomerType = CustomerTypeWalkIn
	}

	now := time.Now()
	if e.Date.IsZero() {
		e.Date = now
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	e.ComputeAmounts()

	return e.Validate()
}

// BeforeUpdate hook for Exchange
func (e *Exchange) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// ComputeAmounts derives AmountBDT and ForeignAmount from the type, rate,
// and quantity.
func (e *Exchange) ComputeAmounts() {
	if e.ExchangeRate.LessThanOrEqual(decimal.Zero) || e.Quantity.LessThanOrEqual(decimal.Zero) {
		return
	}

	switch e.Type {
	case ExchangeTypeBuy:
		e.AmountBDT = e.Quantity
		e.ForeignAmount = e.Quantity.DivRound(e.ExchangeRate, 4)
	case ExchangeTypeSell:
		e.ForeignAmount = e.Quantity
		e.AmountBDT = e.Quantity.Mul(e.ExchangeRate).Round(2)
	}
}

// Validate validates the exchange fields
func (e *Exchange) Validate() error {
	if e.FullName == "" {
		return errors.New("full name is required")
	}

	if !IsValidExchangeType(e.Type) {
		return ErrInvalidExchangeType
	}

	if !IsValidCurrencyCode(e.CurrencyCode) {
		return ErrInvalidCurrencyCode
	}

	if e.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidRate
	}

	if e.Quantity.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidQuantity
	}

	if e.CustomerType == CustomerTypeDilar && e.DilarID == nil {
		return errors.New("dilar ID is required for dilar exchanges")
	}

	return nil
}

// IsBuy reports whether the trade adds to the currency reserve
func (e *Exchange) IsBuy() bool {
	return e.Type == ExchangeTypeBuy
}

// TableName returns the table name for Exchange
func (e *Exchange) TableName() string {
	return "exchanges"
}

// IsValidExchangeType checks if the exchange type is valid
func IsValidExchangeType(exchangeType string) bool {
	return exchangeType == ExchangeTypeBuy || exchangeType == ExchangeTypeSell
}

// IsValidCurrencyCode checks if the currency code is a 3-letter uppercase code
func IsValidCurrencyCode(code string) bool {
	return currencyCodeRegex.MatchString(code)
}
