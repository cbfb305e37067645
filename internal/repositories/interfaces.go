package repositories

import (
	"time"

	"backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines the contract for bank account persistence
type AccountRepositoryInterface interface {
	Create(account *models.BankAccount) error
	GetByID(id uuid.UUID) (*models.BankAccount, error)
	GetByAccountNumber(accountNumber string) (*models.BankAccount, error)
	GetAllWithFilters(filters models.AccountFilters, offset, limit int) ([]models.BankAccount, int64, error)
	Update(account *models.BankAccount) error
	Delete(id uuid.UUID) error
	ExistsByAccountNumber(accountNumber string) (bool, error)
	CreateWithTransaction(account *models.BankAccount, transactions []models.Transaction) error
	AdjustBalance(accountID uuid.UUID, amount decimal.Decimal, transactionType, description, note, createdBy string) (*models.Transaction, error)
	ExecuteAtomicTransfer(fromAccountID, toAccountID uuid.UUID, amount decimal.Decimal, description, createdBy string) (debitTxID, creditTxID uuid.UUID, err error)
	GetStats() (*models.AccountStats, error)
}

// TransactionRepositoryInterface defines the contract for ledger entries
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetByDateRange(accountID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	GetLastBefore(accountID uuid.UUID, cutoff time.Time) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error)
}

// TransferRepositoryInterface defines the contract for transfer records
type TransferRepositoryInterface interface {
	Create(transfer *models.Transfer) error
	GetByID(id uuid.UUID) (*models.Transfer, error)
	GetByIdempotencyKey(key string) (*models.Transfer, error)
	Update(transfer *models.Transfer) error
}

// DilarRepositoryInterface defines the contract for dilar persistence
type DilarRepositoryInterface interface {
	Create(dilar *models.Dilar) error
	GetByID(id uuid.UUID) (*models.Dilar, error)
	GetAllWithFilters(filters models.DilarFilters, offset, limit int) ([]models.Dilar, int64, error)
	Update(dilar *models.Dilar) error
	Deactivate(id uuid.UUID) error
	ExistsByContactNo(contactNo string, excludeID *uuid.UUID) (bool, error)
}

// ExchangeRepositoryInterface defines the contract for exchange persistence
type ExchangeRepositoryInterface interface {
	Create(exchange *models.Exchange) error
	GetByID(id uuid.UUID) (*models.Exchange, error)
	GetAllWithFilters(filters models.ExchangeFilters, offset, limit int) ([]models.Exchange, int64, error)
	GetByCurrencyCode(currencyCode string) ([]models.Exchange, error)
	ListCurrencyCodes() ([]string, error)
	Update(exchange *models.Exchange) error
	Delete(id uuid.UUID) error
}

// ReserveRepositoryInterface defines the contract for reserve projections
type ReserveRepositoryInterface interface {
	GetByCurrencyCode(currencyCode string) (*models.Reserve, error)
	GetAll() ([]models.Reserve, error)
	Save(reserve *models.Reserve) error
	DeleteByCurrencyCode(currencyCode string) error
}

// CategoryRepositoryInterface defines the contract for category persistence
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
	ExistsByName(name string, excludeID *uuid.UUID) (bool, error)
}

// UserRepositoryInterface defines the contract for user persistence
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLastLogin(userID uuid.UUID) error
}
