package dto

import (
	"backoffice/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a bank account
type CreateAccountRequest struct {
	BankName       string `json:"bankName" validate:"required,min=1,max=100"`
	AccountNumber  string `json:"accountNumber" validate:"required,min=1,max=30"`
	AccountType    string `json:"accountType" validate:"required,account_category"`
	Currency       string `json:"currency" validate:"omitempty,currency_code"`
	InitialBalance string `json:"initialBalance" validate:"omitempty"`
	BranchName     string `json:"branchName" validate:"omitempty,max=100"`
	BranchCode     string `json:"branchCode" validate:"omitempty,max=20"`
}

// UpdateAccountRequest represents a partial update to a bank account.
// Nil fields are left untouched.
type UpdateAccountRequest struct {
	BankName    *string `json:"bankName" validate:"omitempty,min=1,max=100"`
	AccountType *string `json:"accountType" validate:"omitempty,account_category"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive closed"`
	BranchName  *string `json:"branchName" validate:"omitempty,max=100"`
	BranchCode  *string `json:"branchCode" validate:"omitempty,max=20"`
}

// AdjustBalanceRequest represents a manual credit or debit against an account
type AdjustBalanceRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=credit debit"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Note        string `json:"note" validate:"omitempty,max=1000"`
}

// TransferRequest represents an account-to-account transfer
type TransferRequest struct {
	FromAccountID  string `json:"fromAccountId" validate:"required,uuid"`
	ToAccountID    string `json:"toAccountId" validate:"required,uuid"`
	Amount         string `json:"amount" validate:"required"`
	Description    string `json:"description" validate:"required,min=1,max=255"`
	IdempotencyKey string `json:"idempotencyKey" validate:"required,min=1,max=255"`
}

// Account Response DTOs

// AccountListResponse represents a paginated list of bank accounts
type AccountListResponse struct {
	Data       []models.BankAccount `json:"data"`
	Pagination models.Pagination    `json:"pagination"`
}

// TransactionListResponse represents a paginated list of ledger entries
type TransactionListResponse struct {
	Data       []models.Transaction `json:"data"`
	Pagination models.Pagination    `json:"pagination"`
}

// TransferResponse represents the response after a successful transfer
type TransferResponse struct {
	Data    *models.Transfer `json:"data"`
	Message string           `json:"message"`
}
