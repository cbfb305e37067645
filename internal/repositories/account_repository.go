package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAccountNotActive    = errors.New("account is not active")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new bank account
func (r *accountRepository) Create(account *models.BankAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves a bank account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.BankAccount, error) {
	account := &models.BankAccount{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByAccountNumber retrieves a bank account by account number
func (r *accountRepository) GetByAccountNumber(accountNumber string) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := r.db.Where("account_number = ?", accountNumber).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by number: %w", err)
	}
	return &account, nil
}

// GetAllWithFilters retrieves bank accounts with filters and pagination
func (r *accountRepository) GetAllWithFilters(filters models.AccountFilters, offset, limit int) ([]models.BankAccount, int64, error) {
	var accounts []models.BankAccount
	var total int64

	query := r.db.Model(&models.BankAccount{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.AccountType != "" {
		query = query.Where("account_type = ?", filters.AccountType)
	}
	if filters.Currency != "" {
		query = query.Where("currency = ?", filters.Currency)
	}
	if filters.BranchCode != "" {
		query = query.Where("branch_code = ?", filters.BranchCode)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("bank_name LIKE ? OR account_number LIKE ? OR branch_name LIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered accounts: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered accounts: %w", err)
	}

	return accounts, total, nil
}

// Update updates a bank account
func (r *accountRepository) Update(account *models.BankAccount) error {
	if err := r.db.Save(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberExists
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// Delete soft deletes a bank account
func (r *accountRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.BankAccount{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ExistsByAccountNumber checks if an account number already exists
func (r *accountRepository) ExistsByAccountNumber(accountNumber string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.BankAccount{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account number existence: %w", err)
	}
	return count > 0, nil
}

// CreateWithTransaction creates an account and its opening ledger entries atomically
func (r *accountRepository) CreateWithTransaction(account *models.BankAccount, transactions []models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAccountNumberExists
			}
			return fmt.Errorf("failed to create account: %w", err)
		}

		if len(transactions) > 0 {
			for i := range transactions {
				transactions[i].AccountID = account.ID
			}
			if err := tx.Create(&transactions).Error; err != nil {
				return fmt.Errorf("failed to create opening transactions: %w", err)
			}
		}

		return nil
	})
}

// AdjustBalance applies a single credit or debit to an account and records the
// ledger entry in the same database transaction.
func (r *accountRepository) AdjustBalance(accountID uuid.UUID, amount decimal.Decimal, transactionType, description, note, createdBy string) (*models.Transaction, error) {
	var created *models.Transaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		account := &models.BankAccount{ID: accountID}

		// Row-level locking prevents concurrent balance modifications
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		if !account.IsActive() {
			return ErrAccountNotActive
		}

		balanceBefore := account.CurrentBalance

		switch transactionType {
		case models.TransactionTypeCredit:
			account.CurrentBalance = account.CurrentBalance.Add(amount)
		case models.TransactionTypeDebit:
			if account.CurrentBalance.LessThan(amount) {
				return ErrInsufficientFunds
			}
			account.CurrentBalance = account.CurrentBalance.Sub(amount)
		default:
			return fmt.Errorf("invalid transaction type: %s", transactionType)
		}

		if err := tx.Model(account).Update("current_balance", account.CurrentBalance).Error; err != nil {
			return fmt.Errorf("failed to update account balance: %w", err)
		}

		entry := &models.Transaction{
			AccountID:       accountID,
			TransactionType: transactionType,
			Amount:          amount,
			BalanceBefore:   balanceBefore,
			BalanceAfter:    account.CurrentBalance,
			Description:     description,
			Note:            note,
			Status:          models.TransactionStatusCompleted,
			CreatedBy:       createdBy,
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create ledger entry: %w", err)
		}

		created = entry
		return nil
	})

	if err != nil {
		return nil, err
	}
	return created, nil
}

// ExecuteAtomicTransfer moves money between two accounts with row locking,
// writing the transfer_out and transfer_in ledger entries in one transaction.
func (r *accountRepository) ExecuteAtomicTransfer(fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, description, createdBy string) (debitTxID, creditTxID uuid.UUID, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		fromAcct := &models.BankAccount{ID: fromAccountID}
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&fromAcct).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock source account: %w", err)
		}

		if !fromAcct.IsActive() {
			return ErrAccountNotActive
		}

		if fromAcct.CurrentBalance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		newFromBalance := fromAcct.CurrentBalance.Sub(amount)
		if err := tx.Model(fromAcct).Update("current_balance", newFromBalance).Error; err != nil {
			return fmt.Errorf("failed to debit source account: %w", err)
		}

		debitTx := &models.Transaction{
			AccountID:       fromAccountID,
			TransactionType: models.TransactionTypeTransferOut,
			Amount:          amount,
			BalanceBefore:   fromAcct.CurrentBalance,
			BalanceAfter:    newFromBalance,
			Description:     description,
			Status:          models.TransactionStatusCompleted,
			CreatedBy:       createdBy,
		}

		if err := tx.Create(debitTx).Error; err != nil {
			return fmt.Errorf("failed to create debit entry: %w", err)
		}
		debitTxID = debitTx.ID

		toAcct := &models.BankAccount{ID: toAccountID}
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(&toAcct).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock destination account: %w", err)
		}

		if !toAcct.IsActive() {
			return ErrAccountNotActive
		}

		newToBalance := toAcct.CurrentBalance.Add(amount)
		if err := tx.Model(toAcct).Update("current_balance", newToBalance).Error; err != nil {
			return fmt.Errorf("failed to credit destination account: %w", err)
		}

		creditTx := &models.Transaction{
			AccountID:       toAccountID,
			TransactionType: models.TransactionTypeTransferIn,
			Amount:          amount,
			BalanceBefore:   toAcct.CurrentBalance,
			BalanceAfter:    newToBalance,
			Description:     description,
			Status:          models.TransactionStatusCompleted,
			CreatedBy:       createdBy,
		}

		if err := tx.Create(creditTx).Error; err != nil {
			return fmt.Errorf("failed to create credit entry: %w", err)
		}
		creditTxID = creditTx.ID

		return nil
	})

	return debitTxID, creditTxID, err
}

// GetStats aggregates counts and balances across all bank accounts
func (r *accountRepository) GetStats() (*models.AccountStats, error) {
	stats := &models.AccountStats{
		ByType:       make(map[string]int),
		TotalBalance: decimal.Zero,
	}

	type statusRow struct {
		Status string
		Count  int
	}
	var byStatus []statusRow
	if err := r.db.Model(&models.BankAccount{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to count accounts by status: %w", err)
	}

	for _, row := range byStatus {
		stats.TotalAccounts += row.Count
		switch row.Status {
		case models.AccountStatusActive:
			stats.ActiveAccounts = row.Count
		case models.AccountStatusInactive:
			stats.InactiveAccounts = row.Count
		case models.AccountStatusClosed:
			stats.ClosedAccounts = row.Count
		}
	}

	type typeRow struct {
		AccountType string
		Count       int
	}
	var byType []typeRow
	if err := r.db.Model(&models.BankAccount{}).
		Select("account_type, COUNT(*) as count").
		Group("account_type").
		Scan(&byType).Error; err != nil {
		return nil, fmt.Errorf("failed to count accounts by type: %w", err)
	}

	for _, row := range byType {
		stats.ByType[row.AccountType] = row.Count
	}

	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.Model(&models.BankAccount{}).
		Select("COALESCE(SUM(current_balance), 0) as total").
		Where("status = ?", models.AccountStatusActive).
		Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to sum balances: %w", err)
	}
	stats.TotalBalance = result.Total

	return stats, nil
}
