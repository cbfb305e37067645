package services

import (
	"time"

	"backoffice/internal/dto"
	"backoffice/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccountServiceInterface defines bank account business operations
type AccountServiceInterface interface {
	CreateAccount(req *dto.CreateAccountRequest, createdBy string) (*models.BankAccount, error)
	GetAccount(accountID uuid.UUID) (*models.BankAccount, error)
	ListAccounts(filters models.AccountFilters, page, limit int) ([]models.BankAccount, models.Pagination, error)
	UpdateAccount(accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.BankAccount, error)
	DeleteAccount(accountID uuid.UUID) error
	AdjustBalance(accountID uuid.UUID, req *dto.AdjustBalanceRequest, performedBy string) (*models.Transaction, error)
	GetAccountTransactions(accountID uuid.UUID, filters models.TransactionFilters, page, limit int) ([]models.Transaction, models.Pagination, error)
	Transfer(req *dto.TransferRequest, performedBy string) (*models.Transfer, error)
	GetStats() (*models.AccountStats, error)
}

// ExchangeServiceInterface defines currency exchange business operations.
// Every mutation replays the affected currency's reserve from the ledger.
type ExchangeServiceInterface interface {
	CreateExchange(req *dto.CreateExchangeRequest, createdBy string) (*models.Exchange, error)
	GetExchange(exchangeID uuid.UUID) (*models.Exchange, error)
	ListExchanges(filters models.ExchangeFilters, page, limit int) ([]models.Exchange, models.Pagination, error)
	UpdateExchange(exchangeID uuid.UUID, req *dto.UpdateExchangeRequest) (*models.Exchange, error)
	DeleteExchange(exchangeID uuid.UUID) error
	GetReserves() (*dto.ReservesResponse, error)
	GetDashboard(currencyCode string, fromDate, toDate *time.Time) (*dto.DashboardResponse, error)
	GenerateReceipt(exchangeID uuid.UUID) ([]byte, error)
}

// DilarServiceInterface defines dilar management operations
type DilarServiceInterface interface {
	CreateDilar(req *dto.CreateDilarRequest) (*models.Dilar, error)
	GetDilar(dilarID uuid.UUID) (*models.Dilar, error)
	ListDilars(filters models.DilarFilters, page, limit int) ([]models.Dilar, models.Pagination, error)
	UpdateDilar(dilarID uuid.UUID, req *dto.UpdateDilarRequest) (*models.Dilar, error)
	DeactivateDilar(dilarID uuid.UUID) error
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error)
	GetCategory(categoryID uuid.UUID) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	UpdateCategory(categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(categoryID uuid.UUID) error
}

// StatementServiceInterface defines periodized account reporting operations
type StatementServiceInterface interface {
	GetAccountSummary(accountID uuid.UUID, fromDate, toDate *time.Time) (*models.AccountSummary, error)
	GetStatement(accountID uuid.UUID, fromDate, toDate time.Time) (*models.AccountStatement, error)
	RenderStatementCSV(statement *models.AccountStatement) ([]byte, error)
}

// TokenClaims are the JWT claims carried by an access token
type TokenClaims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// AuthServiceInterface defines operator authentication operations
type AuthServiceInterface interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ValidateToken(tokenString string) (*TokenClaims, error)
	CreateUser(email, password, fullName, role string) (*models.User, error)
}

// MetricsRecorderInterface records business-level metrics
type MetricsRecorderInterface interface {
	RecordTransfer(status string, amount float64, duration time.Duration)
	RecordBalanceAdjustment(transactionType string)
	RecordExchange(exchangeType, currencyCode string)
	RecordReserveReplay(currencyCode string, exchangeCount int)
	RecordLogin(status string)
}
