package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/dto"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountNumberTaken   = errors.New("account number already exists")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrAccountNotActive     = errors.New("account is not active")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrSameAccountTransfer  = errors.New("cannot transfer to same account")
	ErrAccountHasBalance    = errors.New("account balance must be zero")
	ErrTransferPending      = errors.New("transfer is still processing with this idempotency key")
	ErrTransferFailed       = errors.New("previous transfer failed with this idempotency key")
	ErrTransferNotFound     = errors.New("transfer not found")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	transferRepo    repositories.TransferRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAccountService creates an account service with transfer and ledger support
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	transferRepo repositories.TransferRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		transferRepo:    transferRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateAccount creates a bank account; a positive initial balance also writes
// the opening ledger entry in the same database transaction.
func (s *accountService) CreateAccount(req *dto.CreateAccountRequest, createdBy string) (*models.BankAccount, error) {
	exists, err := s.accountRepo.ExistsByAccountNumber(req.AccountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check account number: %w", err)
	}
	if exists {
		return nil, ErrAccountNumberTaken
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != "" {
		initialBalance, err = decimal.NewFromString(req.InitialBalance)
		if err != nil || initialBalance.LessThan(decimal.Zero) {
			return nil, ErrInvalidAmount
		}
	}

	account := &models.BankAccount{
		BankName:       req.BankName,
		AccountNumber:  req.AccountNumber,
		AccountType:    req.AccountType,
		Currency:       req.Currency,
		CurrentBalance: initialBalance,
		InitialBalance: initialBalance,
		Status:         models.AccountStatusActive,
		BranchName:     req.BranchName,
		BranchCode:     req.BranchCode,
		CreatedBy:      createdBy,
	}

	var transactions []models.Transaction
	if initialBalance.GreaterThan(decimal.Zero) {
		transactions = append(transactions, models.Transaction{
			TransactionType: models.TransactionTypeCredit,
			Amount:          initialBalance,
			BalanceBefore:   decimal.Zero,
			BalanceAfter:    initialBalance,
			Description:     "Opening Balance",
			Status:          models.TransactionStatusCompleted,
			CreatedBy:       createdBy,
		})
	}

	if err := s.accountRepo.CreateWithTransaction(account, transactions); err != nil {
		if errors.Is(err, repositories.ErrAccountNumberExists) {
			return nil, ErrAccountNumberTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("bank account created",
		"accountId", account.ID,
		"bankName", account.BankName,
		"accountType", account.AccountType)

	return account, nil
}

// GetAccount retrieves a single bank account
func (s *accountService) GetAccount(accountID uuid.UUID) (*models.BankAccount, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ListAccounts returns a filtered page of bank accounts
func (s *accountService) ListAccounts(filters models.AccountFilters, page, limit int) ([]models.BankAccount, models.Pagination, error) {
	offset, limit := normalizePage(page, limit)

	accounts, total, err := s.accountRepo.GetAllWithFilters(filters, offset, limit)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, models.NewPagination(page, limit, total), nil
}

// UpdateAccount applies a partial update. Closing an account requires a zero
// balance.
func (s *accountService) UpdateAccount(accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.BankAccount, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if req.BankName != nil {
		account.BankName = *req.BankName
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	if req.BranchName != nil {
		account.BranchName = *req.BranchName
	}
	if req.BranchCode != nil {
		account.BranchCode = *req.BranchCode
	}
	if req.Status != nil && *req.Status != account.Status {
		if *req.Status == models.AccountStatusClosed {
			if err := account.Close(); err != nil {
				return nil, ErrAccountHasBalance
			}
		} else {
			account.Status = *req.Status
			account.ClosedAt = nil
		}
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

// DeleteAccount soft deletes an account. Accounts holding money cannot be
// deleted; the balance has to be adjusted or transferred away first.
func (s *accountService) DeleteAccount(accountID uuid.UUID) error {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return err
	}

	if !account.CurrentBalance.IsZero() {
		return ErrAccountHasBalance
	}

	if err := s.accountRepo.Delete(accountID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("bank account deleted", "accountId", accountID)
	return nil
}

// AdjustBalance applies a manual credit or debit with its ledger entry
func (s *accountService) AdjustBalance(accountID uuid.UUID, req *dto.AdjustBalanceRequest, performedBy string) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	entry, err := s.accountRepo.AdjustBalance(accountID, amount, req.Type, req.Description, req.Note, performedBy)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, repositories.ErrAccountNotActive):
			return nil, ErrAccountNotActive
		case errors.Is(err, repositories.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to adjust balance: %w", err)
	}

	s.metrics.RecordBalanceAdjustment(req.Type)
	s.logger.Info("balance adjusted",
		"accountId", accountID,
		"type", req.Type,
		"amount", amount.String())

	return entry, nil
}

// GetAccountTransactions returns a filtered page of one account's ledger
func (s *accountService) GetAccountTransactions(accountID uuid.UUID, filters models.TransactionFilters, page, limit int) ([]models.Transaction, models.Pagination, error) {
	if _, err := s.GetAccount(accountID); err != nil {
		return nil, models.Pagination{}, err
	}

	filters.AccountID = accountID
	offset, limit := normalizePage(page, limit)

	transactions, total, err := s.transactionRepo.GetWithFilters(filters, offset, limit)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, models.NewPagination(page, limit, total), nil
}

// Transfer moves money between two accounts with idempotency support. A
// replayed idempotency key returns the original completed transfer instead of
// moving money twice.
func (s *accountService) Transfer(req *dto.TransferRequest, performedBy string) (*models.Transfer, error) {
	start := time.Now()

	fromID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}
	toID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	if fromID == toID {
		return nil, ErrSameAccountTransfer
	}

	if existing, err := s.checkExistingTransfer(req.IdempotencyKey); existing != nil || err != nil {
		return existing, err
	}

	transfer := &models.Transfer{
		FromAccountID:  fromID,
		ToAccountID:    toID,
		Amount:         amount,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
		Status:         models.TransferStatusPending,
		CreatedBy:      performedBy,
	}

	if err := s.transferRepo.Create(transfer); err != nil {
		if errors.Is(err, repositories.ErrDuplicateIdempotency) {
			// Lost a race on the same key; resolve against the winner
			return s.checkExistingTransferStrict(req.IdempotencyKey)
		}
		return nil, fmt.Errorf("failed to create transfer record: %w", err)
	}

	debitTxID, creditTxID, err := s.accountRepo.ExecuteAtomicTransfer(
		fromID, toID, amount, req.Description, performedBy)
	if err != nil {
		s.failTransfer(transfer, err)
		s.metrics.RecordTransfer("failed", amount.InexactFloat64(), time.Since(start))

		switch {
		case errors.Is(err, repositories.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, repositories.ErrAccountNotActive):
			return nil, ErrAccountNotActive
		case errors.Is(err, repositories.ErrInsufficientFunds):
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("transfer failed: %w", err)
	}

	transfer.Complete(debitTxID, creditTxID)
	if err := s.transferRepo.Update(transfer); err != nil {
		// Money has moved; the record catches up on the next idempotent read
		s.logger.Error("failed to mark transfer completed",
			"transferId", transfer.ID, "error", err)
	}

	s.metrics.RecordTransfer("completed", amount.InexactFloat64(), time.Since(start))
	s.logger.Info("transfer completed",
		"transferId", transfer.ID,
		"fromAccountId", fromID,
		"toAccountId", toID,
		"amount", amount.String())

	return transfer, nil
}

// GetStats aggregates counts and balances across all accounts
func (s *accountService) GetStats() (*models.AccountStats, error) {
	stats, err := s.accountRepo.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to get account stats: %w", err)
	}
	return stats, nil
}

func (s *accountService) checkExistingTransfer(idempotencyKey string) (*models.Transfer, error) {
	existing, err := s.transferRepo.GetByIdempotencyKey(idempotencyKey)
	if err != nil {
		if errors.Is(err, repositories.ErrTransferNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	switch existing.Status {
	case models.TransferStatusCompleted:
		return existing, nil
	case models.TransferStatusPending:
		return nil, ErrTransferPending
	case models.TransferStatusFailed:
		return nil, ErrTransferFailed
	}

	return nil, nil
}

func (s *accountService) checkExistingTransferStrict(idempotencyKey string) (*models.Transfer, error) {
	existing, err := s.checkExistingTransfer(idempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTransferNotFound
	}
	return existing, nil
}

func (s *accountService) failTransfer(transfer *models.Transfer, cause error) {
	transfer.Fail(cause.Error())
	if err := s.transferRepo.Update(transfer); err != nil {
		s.logger.Error("failed to mark transfer failed",
			"transferId", transfer.ID, "error", err)
	}
}

// normalizePage converts page/limit inputs into a safe offset and limit
func normalizePage(page, limit int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if page <= 0 {
		page = 1
	}
	return (page - 1) * limit, limit
}
