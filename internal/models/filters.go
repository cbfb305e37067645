package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountFilters narrows bank account list queries. Zero values are skipped.
type AccountFilters struct {
	Status      string
	AccountType string
	Currency    string
	BranchCode  string
	Search      string
}

// TransactionFilters narrows per-account transaction history queries
type TransactionFilters struct {
	AccountID       uuid.UUID
	TransactionType string
	FromDate        *time.Time
	ToDate          *time.Time
}

// ExchangeFilters narrows exchange list queries
type ExchangeFilters struct {
	Type         string
	CurrencyCode string
	CustomerType string
	DilarID      *uuid.UUID
	Search       string
	FromDate     *time.Time
	ToDate       *time.Time
}

// DilarFilters narrows dilar list queries
type DilarFilters struct {
	IsActive *bool
	Search   string
}
