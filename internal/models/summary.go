package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountSummary is the authoritative per-account totals block. It is always
// computed server-side from the transaction ledger; clients render it as-is
// and never recompute balances locally.
type AccountSummary struct {
	AccountID        uuid.UUID       `json:"accountId"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	TotalTransferIn  decimal.Decimal `json:"totalTransferIn"`
	TotalTransferOut decimal.Decimal `json:"totalTransferOut"`
	TransactionCount int             `json:"transactionCount"`
	FromDate         *time.Time      `json:"fromDate,omitempty"`
	ToDate           *time.Time      `json:"toDate,omitempty"`
}

// AccountStats aggregates across all bank accounts for the stats endpoint
type AccountStats struct {
	TotalAccounts    int             `json:"totalAccounts"`
	ActiveAccounts   int             `json:"activeAccounts"`
	InactiveAccounts int             `json:"inactiveAccounts"`
	ClosedAccounts   int             `json:"closedAccounts"`
	TotalBalance     decimal.Decimal `json:"totalBalance"`
	ByType           map[string]int  `json:"byType"`
}

// DashboardRow is one currency's aggregate line on the exchange dashboard
type DashboardRow struct {
	CurrencyCode   string          `json:"currencyCode"`
	CurrencyName   string          `json:"currencyName,omitempty"`
	BuyCount       int             `json:"buyCount"`
	SellCount      int             `json:"sellCount"`
	TotalBoughtBDT decimal.Decimal `json:"totalBoughtBdt"`
	TotalSoldBDT   decimal.Decimal `json:"totalSoldBdt"`
	RealizedPL     decimal.Decimal `json:"realizedProfitLoss"`
}

// DashboardSummary totals the dashboard rows over the selected window
type DashboardSummary struct {
	ExchangeCount  int             `json:"exchangeCount"`
	TotalBoughtBDT decimal.Decimal `json:"totalBoughtBdt"`
	TotalSoldBDT   decimal.Decimal `json:"totalSoldBdt"`
	RealizedPL     decimal.Decimal `json:"realizedProfitLoss"`
}

// AccountStatement is a periodized view of one account's ledger for export
type AccountStatement struct {
	AccountID      uuid.UUID       `json:"accountId"`
	AccountNumber  string          `json:"accountNumber"`
	BankName       string          `json:"bankName"`
	FromDate       time.Time       `json:"fromDate"`
	ToDate         time.Time       `json:"toDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Summary        AccountSummary  `json:"summary"`
	Transactions   []Transaction   `json:"transactions"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

// Pagination describes a page of list results
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination builds pagination metadata from page inputs and a total count
func NewPagination(page, limit int, total int64) Pagination {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
