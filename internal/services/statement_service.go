package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/export"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// statementService implements StatementServiceInterface
type statementService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewStatementService creates a statement service
func NewStatementService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) StatementServiceInterface {
	return &statementService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// GetAccountSummary computes the authoritative totals block for one account
// over an optional window. All figures come from the ledger, never from
// client-side arithmetic.
func (s *statementService) GetAccountSummary(accountID uuid.UUID, fromDate, toDate *time.Time) (*models.AccountSummary, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	start, end := resolveWindow(account.CreatedAt, fromDate, toDate)

	transactions, err := s.transactionRepo.GetByDateRange(accountID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &models.AccountSummary{
		AccountID:        accountID,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TotalTransferIn:  decimal.Zero,
		TotalTransferOut: decimal.Zero,
		TransactionCount: len(transactions),
		FromDate:         fromDate,
		ToDate:           toDate,
	}

	if len(transactions) > 0 {
		summary.OpeningBalance = transactions[0].BalanceBefore
		summary.ClosingBalance = transactions[len(transactions)-1].BalanceAfter
	} else {
		// An empty window reports the balance as of its edges. The newest
		// entry before the window carries it; an account with no earlier
		// entries still held its initial balance.
		edge, err := s.transactionRepo.GetLastBefore(accountID, start)
		if err != nil {
			return nil, err
		}
		balance := account.InitialBalance
		if edge != nil {
			balance = edge.BalanceAfter
		}
		summary.OpeningBalance = balance
		summary.ClosingBalance = balance
	}

	for _, tx := range transactions {
		switch tx.TransactionType {
		case models.TransactionTypeCredit:
			summary.TotalDeposits = summary.TotalDeposits.Add(tx.Amount)
		case models.TransactionTypeDebit:
			summary.TotalWithdrawals = summary.TotalWithdrawals.Add(tx.Amount)
		case models.TransactionTypeTransferIn:
			summary.TotalTransferIn = summary.TotalTransferIn.Add(tx.Amount)
		case models.TransactionTypeTransferOut:
			summary.TotalTransferOut = summary.TotalTransferOut.Add(tx.Amount)
		}
	}

	return summary, nil
}

// GetStatement builds a periodized statement for export
func (s *statementService) GetStatement(accountID uuid.UUID, fromDate, toDate time.Time) (*models.AccountStatement, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	summary, err := s.GetAccountSummary(accountID, &fromDate, &toDate)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetByDateRange(accountID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	return &models.AccountStatement{
		AccountID:      accountID,
		AccountNumber:  account.AccountNumber,
		BankName:       account.BankName,
		FromDate:       fromDate,
		ToDate:         toDate,
		OpeningBalance: summary.OpeningBalance,
		ClosingBalance: summary.ClosingBalance,
		Summary:        *summary,
		Transactions:   transactions,
		GeneratedAt:    time.Now(),
	}, nil
}

// RenderStatementCSV renders a statement as CSV for download
func (s *statementService) RenderStatementCSV(statement *models.AccountStatement) ([]byte, error) {
	data, err := export.RenderStatementCSV(statement)
	if err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}

	s.logger.Info("statement exported",
		"accountId", statement.AccountID,
		"transactions", len(statement.Transactions))

	return data, nil
}

// resolveWindow fills in missing window edges. The default window starts at
// account creation and ends now.
func resolveWindow(accountCreatedAt time.Time, fromDate, toDate *time.Time) (time.Time, time.Time) {
	start := accountCreatedAt.Add(-24 * time.Hour)
	if fromDate != nil {
		start = *fromDate
	}

	end := time.Now()
	if toDate != nil {
		end = *toDate
	}

	return start, end
}
