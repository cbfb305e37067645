package client

import (
	"context"
	"net/http"
	"time"

	"backoffice/pkg/cache"

	"github.com/shopspring/decimal"
)

// BankAccount is a bank account as the API returns it. Decimal fields decode
// from either a JSON string or a number; absent fields decode to zero.
type BankAccount struct {
	ID             string          `json:"id"`
	BankName       string          `json:"bankName"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	Currency       string          `json:"currency"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Status         string          `json:"status"`
	BranchName     string          `json:"branchName"`
	BranchCode     string          `json:"branchCode"`
	CreatedBy      string          `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Transaction is one ledger entry on a bank account
type Transaction struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"accountId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceBefore   decimal.Decimal `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	Note            string          `json:"note"`
	Status          string          `json:"status"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Transfer records an account-to-account movement
type Transfer struct {
	ID             string          `json:"id"`
	FromAccountID  string          `json:"fromAccountId"`
	ToAccountID    string          `json:"toAccountId"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	IdempotencyKey string          `json:"idempotencyKey"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	CompletedAt    *time.Time      `json:"completedAt"`
}

// AccountStats aggregates across all bank accounts
type AccountStats struct {
	TotalAccounts    int             `json:"totalAccounts"`
	ActiveAccounts   int             `json:"activeAccounts"`
	InactiveAccounts int             `json:"inactiveAccounts"`
	ClosedAccounts   int             `json:"closedAccounts"`
	TotalBalance     decimal.Decimal `json:"totalBalance"`
	ByType           map[string]int  `json:"byType"`
}

// AccountSummary is the per-account rollup over an optional date window
type AccountSummary struct {
	AccountID        string          `json:"accountId"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`
	ClosingBalance   decimal.Decimal `json:"closingBalance"`
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	TotalTransferIn  decimal.Decimal `json:"totalTransferIn"`
	TotalTransferOut decimal.Decimal `json:"totalTransferOut"`
	TransactionCount int             `json:"transactionCount"`
}

// AccountFilters narrows ListBankAccounts. Zero values are omitted from the
// query string.
type AccountFilters struct {
	Status      string
	AccountType string
	Currency    string
	BranchCode  string
	Search      string
}

func (f AccountFilters) toMap() map[string]string {
	return map[string]string{
		"status":       f.Status,
		"account_type": f.AccountType,
		"currency":     f.Currency,
		"branch_code":  f.BranchCode,
		"search":       f.Search,
	}
}

// CreateAccountRequest creates a bank account
type CreateAccountRequest struct {
	BankName       string `json:"bankName"`
	AccountNumber  string `json:"accountNumber"`
	AccountType    string `json:"accountType"`
	Currency       string `json:"currency,omitempty"`
	InitialBalance string `json:"initialBalance,omitempty"`
	BranchName     string `json:"branchName,omitempty"`
	BranchCode     string `json:"branchCode,omitempty"`
}

// UpdateAccountRequest updates a bank account. Nil fields are left untouched.
type UpdateAccountRequest struct {
	BankName    *string `json:"bankName,omitempty"`
	AccountType *string `json:"accountType,omitempty"`
	Status      *string `json:"status,omitempty"`
	BranchName  *string `json:"branchName,omitempty"`
	BranchCode  *string `json:"branchCode,omitempty"`
}

// AdjustBalanceRequest credits or debits an account manually
type AdjustBalanceRequest struct {
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Note        string `json:"note,omitempty"`
}

// TransferRequest moves funds between two accounts. IdempotencyKey is filled
// in by the client when empty.
type TransferRequest struct {
	FromAccountID  string `json:"fromAccountId"`
	ToAccountID    string `json:"toAccountId"`
	Amount         string `json:"amount"`
	Description    string `json:"description"`
	IdempotencyKey string `json:"idempotencyKey"`
}

// ListBankAccounts returns accounts matching the filters
func (c *Client) ListBankAccounts(ctx context.Context, filters AccountFilters) ([]BankAccount, error) {
	fm := filters.toMap()
	key := cache.BuildFilterKey(keyBankAccounts, fm)

	v, err := c.get(ctx, key, "/api/v1/bank-accounts"+buildQuery(fm), slowStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var accounts []BankAccount
	if err := decodeList(*v.(*[]byte), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetBankAccount returns one account by id. An empty id returns immediately
// without a request. When the detail endpoint 404s, the list endpoint is
// scanned for the id; the original 404 is returned if it is absent there too.
func (c *Client) GetBankAccount(ctx context.Context, id string) (*BankAccount, error) {
	if id == "" {
		return nil, nil
	}

	key := cache.BuildKey(keyBankAccounts, id)
	v, err := c.get(ctx, key, "/api/v1/bank-accounts/"+id, slowStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		accounts, listErr := c.ListBankAccounts(ctx, AccountFilters{})
		if listErr != nil {
			return nil, err
		}
		for i := range accounts {
			if accounts[i].ID == id {
				return &accounts[i], nil
			}
		}
		return nil, err
	}

	var account BankAccount
	if err := decodeSingle(*v.(*[]byte), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateBankAccount creates an account and invalidates the account caches
func (c *Client) CreateBankAccount(ctx context.Context, req CreateAccountRequest) (*BankAccount, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPost, "/api/v1/bank-accounts", req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyBankAccounts)

	var account BankAccount
	if err := decodeSingle(raw, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateBankAccount applies a partial update to an account
func (c *Client) UpdateBankAccount(ctx context.Context, id string, req UpdateAccountRequest) (*BankAccount, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPut, "/api/v1/bank-accounts/"+id, req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyBankAccounts)

	var account BankAccount
	if err := decodeSingle(raw, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteBankAccount removes an account. Accounts holding a balance are
// rejected by the server.
func (c *Client) DeleteBankAccount(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/bank-accounts/"+id, nil, nil); err != nil {
		return err
	}
	c.invalidate(keyBankAccounts)
	return nil
}

// AdjustBalance posts a manual credit or debit against an account
func (c *Client) AdjustBalance(ctx context.Context, id string, req AdjustBalanceRequest) (*Transaction, error) {
	var raw []byte
	if err := c.do(ctx, http.MethodPost, "/api/v1/bank-accounts/"+id+"/adjust-balance", req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyBankAccounts)

	var txn Transaction
	if err := decodeSingle(raw, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// Transfer moves funds between two accounts. A missing idempotency key is
// generated client-side so a network retry cannot double-apply.
func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*Transfer, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = c.newIdempotencyKey()
	}

	var raw []byte
	if err := c.do(ctx, http.MethodPost, "/api/v1/bank-accounts/transfers", req, &raw); err != nil {
		return nil, err
	}
	c.invalidate(keyBankAccounts)

	var transfer Transfer
	if err := decodeSingle(raw, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// TransactionFilters narrows GetAccountTransactions
type TransactionFilters struct {
	Type     string
	FromDate string
	ToDate   string
}

func (f TransactionFilters) toMap() map[string]string {
	return map[string]string{
		"type":      f.Type,
		"from_date": f.FromDate,
		"to_date":   f.ToDate,
	}
}

// GetAccountTransactions returns one account's ledger entries
func (c *Client) GetAccountTransactions(ctx context.Context, accountID string, filters TransactionFilters) ([]Transaction, error) {
	if accountID == "" {
		return nil, nil
	}

	fm := filters.toMap()
	key := cache.BuildFilterKey(cache.BuildKey(keyTransactions, accountID), fm)

	v, err := c.get(ctx, key, "/api/v1/bank-accounts/"+accountID+"/transactions"+buildQuery(fm), fastStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var txns []Transaction
	if err := decodeList(*v.(*[]byte), &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// GetAccountStats returns the cross-account aggregate
func (c *Client) GetAccountStats(ctx context.Context) (*AccountStats, error) {
	v, err := c.get(ctx, keyBankAccountStats, "/api/v1/bank-accounts/stats", slowStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var stats AccountStats
	if err := decodeSingle(*v.(*[]byte), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetAccountSummary returns one account's rollup over an optional window
func (c *Client) GetAccountSummary(ctx context.Context, accountID string, fromDate, toDate string) (*AccountSummary, error) {
	if accountID == "" {
		return nil, nil
	}

	fm := map[string]string{"from_date": fromDate, "to_date": toDate}
	key := cache.BuildFilterKey(cache.BuildKey(keyBankAccounts, accountID, "summary"), fm)

	v, err := c.get(ctx, key, "/api/v1/bank-accounts/"+accountID+"/summary"+buildQuery(fm), fastStaleTime, func() interface{} {
		return &[]byte{}
	})
	if err != nil {
		return nil, err
	}

	var summary AccountSummary
	if err := decodeSingle(*v.(*[]byte), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// DownloadStatement returns the CSV statement for the date window. The
// result is not cached.
func (c *Client) DownloadStatement(ctx context.Context, accountID, fromDate, toDate string) ([]byte, error) {
	fm := map[string]string{"from_date": fromDate, "to_date": toDate}

	var raw []byte
	if err := c.do(ctx, http.MethodGet, "/api/v1/bank-accounts/"+accountID+"/statement"+buildQuery(fm), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
