package handlers

import (
	"fmt"
	"net/http"
	"time"

	"backoffice/internal/dto"
	"backoffice/internal/errors"
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles bank account HTTP requests
type AccountHandler struct {
	accountService   services.AccountServiceInterface
	statementService services.StatementServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface, statementService services.StatementServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService:   accountService,
		statementService: statementService,
	}
}

// CreateAccount creates a new bank account
// @Summary Create a bank account
// @Description Register a bank account (cash, bank, mobile_banking, check, others) with an optional opening balance
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.DataResponse "Account created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_004 - Account number already exists"
// @Router /bank-accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	createdBy, err := getUserEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.CreateAccount(&req, createdBy)
	if err != nil {
		if err == services.ErrAccountNumberTaken {
			return SendError(c, errors.AccountNumberExists)
		}
		if err == services.ErrInvalidAmount {
			return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.DataResponse{Data: account})
}

// GetAccount retrieves a specific bank account by ID
// @Summary Get bank account by ID
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.DataResponse "Account details"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /bank-accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.GetAccount(accountID)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DataResponse{Data: account})
}

// ListAccounts retrieves bank accounts with filters and pagination
// @Summary List bank accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page (max 100)" default(20)
// @Param status query string false "Filter by status" Enums(active, inactive, closed)
// @Param account_type query string false "Filter by category"
// @Param search query string false "Match bank name, account number, or branch"
// @Success 200 {object} dto.AccountListResponse "Paginated account list"
// @Router /bank-accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", 20)

	filters := models.AccountFilters{
		Status:      c.QueryParam("status"),
		AccountType: c.QueryParam("account_type"),
		Currency:    c.QueryParam("currency"),
		BranchCode:  c.QueryParam("branch_code"),
		Search:      c.QueryParam("search"),
	}

	accounts, pagination, err := h.accountService.ListAccounts(filters, page, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Data:       accounts,
		Pagination: pagination,
	})
}

// UpdateAccount partially updates a bank account
// @Summary Update bank account
// @Description Update account fields. Setting status to closed requires a zero balance.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.DataResponse "Updated account"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_006 - Account has non-zero balance"
// @Router /bank-accounts/{accountId} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.UpdateAccount(accountID, &req)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		if err == services.ErrAccountHasBalance {
			return SendError(c, errors.AccountOperationNotPermitted, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DataResponse{Data: account})
}

// DeleteAccount deletes a bank account with zero balance
// @Summary Delete bank account
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account deleted"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_006 - Account has non-zero balance"
// @Router /bank-accounts/{accountId} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.DeleteAccount(accountID); err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		if err == services.ErrAccountHasBalance {
			return SendError(c, errors.AccountOperationNotPermitted, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

// AdjustBalance applies a manual credit or debit to an account
// @Summary Adjust account balance
// @Description Record a manual credit or debit with a description. Debits cannot exceed the current balance.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.AdjustBalanceRequest true "Adjustment details"
// @Success 201 {object} dto.DataResponse "Created ledger entry"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_003 - Insufficient balance, ACCOUNT_002 - Account not active"
// @Router /bank-accounts/{accountId}/adjust-balance [post]
func (h *AccountHandler) AdjustBalance(c echo.Context) error {
	performedBy, err := getUserEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.AdjustBalanceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.accountService.AdjustBalance(accountID, &req, performedBy)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		if err == services.ErrAccountNotActive {
			return SendError(c, errors.AccountInactive)
		}
		if err == services.ErrInsufficientFunds {
			return SendError(c, errors.AccountInsufficientBalance)
		}
		if err == services.ErrInvalidAmount {
			return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.DataResponse{Data: transaction})
}

// GetAccountTransactions retrieves the ledger history for an account
// @Summary Get account transactions
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page (max 100)" default(20)
// @Param type query string false "Filter by entry type" Enums(credit, debit, transfer_in, transfer_out)
// @Param from_date query string false "Window start (YYYY-MM-DD)"
// @Param to_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.TransactionListResponse "Paginated ledger entries"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /bank-accounts/{accountId}/transactions [get]
func (h *AccountHandler) GetAccountTransactions(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", 20)

	fromDate, err := getDateParam(c, "from_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	toDate, err := getDateParam(c, "to_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	filters := models.TransactionFilters{
		AccountID:       accountID,
		TransactionType: c.QueryParam("type"),
		FromDate:        fromDate,
		ToDate:          toDate,
	}

	transactions, pagination, err := h.accountService.GetAccountTransactions(accountID, filters, page, limit)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Data:       transactions,
		Pagination: pagination,
	})
}

// Transfer performs an atomic transfer between two bank accounts
// @Summary Transfer between accounts
// @Description Atomically move funds between two accounts. The idempotency key makes retries safe.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse "Transfer completed"
// @Failure 400 {object} errors.ErrorResponse "TRANSFER_001 - Same account, TRANSFER_006 - Invalid amount"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "TRANSFER_002 - Pending, TRANSFER_003 - Previously failed"
// @Failure 422 {object} errors.ErrorResponse "TRANSFER_005 - Insufficient funds, ACCOUNT_002 - Account not active"
// @Router /bank-accounts/transfers [post]
func (h *AccountHandler) Transfer(c echo.Context) error {
	performedBy, err := getUserEmailFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	// Header takes precedence over the body field when both are present
	if headerKey := c.Request().Header.Get("Idempotency-Key"); headerKey != "" {
		req.IdempotencyKey = headerKey
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transfer, err := h.accountService.Transfer(&req, performedBy)
	if err != nil {
		return mapTransferErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransferResponse{
		Data:    transfer,
		Message: "Transfer completed successfully",
	})
}

// GetStats retrieves aggregate account statistics
// @Summary Get account statistics
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DataResponse "Aggregate statistics"
// @Router /bank-accounts/stats [get]
func (h *AccountHandler) GetStats(c echo.Context) error {
	stats, err := h.accountService.GetStats()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DataResponse{Data: stats})
}

// GetAccountSummary retrieves opening/closing balances and totals for a window
// @Summary Get account summary
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param from_date query string false "Window start (YYYY-MM-DD)"
// @Param to_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.DataResponse "Account summary"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /bank-accounts/{accountId}/summary [get]
func (h *AccountHandler) GetAccountSummary(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	fromDate, err := getDateParam(c, "from_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	toDate, err := getDateParam(c, "to_date")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	summary, err := h.statementService.GetAccountSummary(accountID, fromDate, toDate)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DataResponse{Data: summary})
}

// DownloadStatement streams the account statement for a window as CSV
// @Summary Download account statement (CSV)
// @Tags Accounts
// @Security BearerAuth
// @Produce text/csv
// @Param accountId path string true "Account ID (UUID)"
// @Param from_date query string true "Window start (YYYY-MM-DD)"
// @Param to_date query string true "Window end (YYYY-MM-DD)"
// @Success 200 {string} string "CSV statement"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /bank-accounts/{accountId}/statement [get]
func (h *AccountHandler) DownloadStatement(c echo.Context) error {
	accountID, err := parseIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	fromDate, err := getDateParam(c, "from_date")
	if err != nil || fromDate == nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("from_date is required (YYYY-MM-DD)"))
	}
	toDate, err := getDateParam(c, "to_date")
	if err != nil || toDate == nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("to_date is required (YYYY-MM-DD)"))
	}

	statement, err := h.statementService.GetStatement(accountID, *fromDate, *toDate)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	csvData, err := h.statementService.RenderStatementCSV(statement)
	if err != nil {
		return SendSystemError(c, err)
	}

	filename := fmt.Sprintf("statement-%s-%s.csv",
		accountID.String()[:8], time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))

	return c.Blob(http.StatusOK, "text/csv", csvData)
}

func mapTransferErr(c echo.Context, err error) error {
	if err == services.ErrAccountNotFound {
		return SendError(c, errors.AccountNotFound)
	}
	if err == services.ErrAccountNotActive {
		return SendError(c, errors.AccountInactive)
	}
	if err == services.ErrInsufficientFunds {
		return SendError(c, errors.TransferInsufficientFunds)
	}
	if err == services.ErrInvalidAmount {
		return SendError(c, errors.TransferInvalidAmount)
	}
	if err == services.ErrSameAccountTransfer {
		return SendError(c, errors.TransferSameAccount)
	}
	if err == services.ErrTransferPending {
		return SendError(c, errors.TransferPending)
	}
	if err == services.ErrTransferFailed {
		return SendError(c, errors.TransferFailed)
	}

	return SendSystemError(c, err)
}
