package dto

import (
	"time"

	"backoffice/internal/models"
)

// Exchange Request DTOs

// CreateExchangeRequest represents the request payload for recording a trade.
// For buys the quantity is the BDT paid; for sells it is the foreign units sold.
type CreateExchangeRequest struct {
	Date         *time.Time `json:"date" validate:"omitempty"`
	FullName     string     `json:"fullName" validate:"required,min=1,max=100"`
	MobileNumber string     `json:"mobileNumber" validate:"omitempty,bd_mobile"`
	Type         string     `json:"type" validate:"required,exchange_type"`
	CurrencyCode string     `json:"currencyCode" validate:"required,currency_code"`
	CurrencyName string     `json:"currencyName" validate:"omitempty,max=50"`
	ExchangeRate string     `json:"exchangeRate" validate:"required"`
	Quantity     string     `json:"quantity" validate:"required"`
	CustomerType string     `json:"customerType" validate:"omitempty,oneof=walk_in dilar"`
	DilarID      *string    `json:"dilarId" validate:"omitempty,uuid"`
}

// UpdateExchangeRequest represents a partial update to a recorded trade.
// Nil fields are left untouched; any change replays the currency's reserve.
type UpdateExchangeRequest struct {
	Date         *time.Time `json:"date" validate:"omitempty"`
	FullName     *string    `json:"fullName" validate:"omitempty,min=1,max=100"`
	MobileNumber *string    `json:"mobileNumber" validate:"omitempty,bd_mobile"`
	Type         *string    `json:"type" validate:"omitempty,exchange_type"`
	CurrencyCode *string    `json:"currencyCode" validate:"omitempty,currency_code"`
	CurrencyName *string    `json:"currencyName" validate:"omitempty,max=50"`
	ExchangeRate *string    `json:"exchangeRate" validate:"omitempty"`
	Quantity     *string    `json:"quantity" validate:"omitempty"`
	CustomerType *string    `json:"customerType" validate:"omitempty,oneof=walk_in dilar"`
	DilarID      *string    `json:"dilarId" validate:"omitempty,uuid"`
}

// Exchange Response DTOs

// ExchangeListResponse represents a paginated list of exchanges
type ExchangeListResponse struct {
	Data       []models.Exchange `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// ReservesResponse carries per-currency reserves plus the cross-currency summary
type ReservesResponse struct {
	Data    []models.Reserve      `json:"data"`
	Summary models.ReserveSummary `json:"summary"`
}

// DashboardResponse carries per-currency dashboard rows plus window totals
type DashboardResponse struct {
	Data    []models.DashboardRow   `json:"data"`
	Summary models.DashboardSummary `json:"summary"`
}
