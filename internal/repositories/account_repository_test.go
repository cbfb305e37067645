package repositories

import (
	"strings"
	"testing"

	"backoffice/internal/database"
	"backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreate() {
	account := &models.BankAccount{
		BankName:       "Sonali Bank",
		AccountNumber:  "0021-4455667",
		AccountType:    models.AccountCategoryBank,
		CurrentBalance: decimal.NewFromInt(5000),
		InitialBalance: decimal.NewFromInt(5000),
		BranchName:     "Motijheel",
	}

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.Equal("BDT", account.Currency)
	s.Equal(models.AccountStatusActive, account.Status)
	s.NotZero(account.CreatedAt)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateAccountNumber() {
	first := database.CreateTestAccount(s.T(), s.db, "0021-4455667", decimal.NewFromInt(100))
	s.NotNil(first)

	dup := &models.BankAccount{
		BankName:      "Janata Bank",
		AccountNumber: "0021-4455667",
		AccountType:   models.AccountCategoryBank,
	}

	err := s.repo.Create(dup)
	s.Error(err)
	// SQLite and PostgreSQL surface uniqueness violations differently
	s.True(errorIsDuplicate(err), "expected duplicate error but got: %v", err)
}

func (s *AccountRepositorySuite) TestGetByID() {
	account := database.CreateTestAccount(s.T(), s.db, "0021-0000001", decimal.NewFromInt(1000))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal(account.AccountNumber, found.AccountNumber)
	s.True(found.CurrentBalance.Equal(decimal.NewFromInt(1000)))

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetAllWithFilters() {
	database.CreateTestAccount(s.T(), s.db, "0021-0000001", decimal.NewFromInt(100))
	database.CreateTestAccount(s.T(), s.db, "0021-0000002", decimal.NewFromInt(200))

	cash := &models.BankAccount{
		BankName:      "Cash Drawer",
		AccountNumber: "CASH-001",
		AccountType:   models.AccountCategoryCash,
	}
	s.NoError(s.repo.Create(cash))

	accounts, total, err := s.repo.GetAllWithFilters(models.AccountFilters{}, 0, 20)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(accounts, 3)

	accounts, total, err = s.repo.GetAllWithFilters(models.AccountFilters{AccountType: models.AccountCategoryCash}, 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("CASH-001", accounts[0].AccountNumber)

	accounts, total, err = s.repo.GetAllWithFilters(models.AccountFilters{Search: "Drawer"}, 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Cash Drawer", accounts[0].BankName)
}

func (s *AccountRepositorySuite) TestAdjustBalance_Credit() {
	account := database.CreateTestAccount(s.T(), s.db, "0021-0000001", decimal.NewFromInt(1000))

	entry, err := s.repo.AdjustBalance(account.ID, decimal.NewFromInt(250),
		models.TransactionTypeCredit, "Cash deposit", "", "admin@backoffice")
	s.NoError(err)
	s.True(entry.BalanceBefore.Equal(decimal.NewFromInt(1000)))
	s.True(entry.BalanceAfter.Equal(decimal.NewFromInt(1250)))
	s.NotEmpty(entry.Reference)

	updated, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.True(updated.CurrentBalance.Equal(decimal.NewFromInt(1250)))
}

func (s *AccountRepositorySuite) TestAdjustBalance_InsufficientFunds() {
	account := database.CreateTestAccount(s.T(), s.db, "0021-0000001", decimal.NewFromInt(100))

	_, err := s.repo.AdjustBalance(account.ID, decimal.NewFromInt(500),
		models.TransactionTypeDebit, "Withdrawal", "", "")
	s.ErrorIs(err, ErrInsufficientFunds)

	// Balance must be untouched after the failed debit
	updated, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.True(updated.CurrentBalance.Equal(decimal.NewFromInt(100)))
}

func (s *AccountRepositorySuite) TestExecuteAtomicTransfer() {
	from := database.CreateTestAccount(s.T(), s.db, "0021-0000001", decimal.NewFromInt(1000))
	to := database.CreateTestAccount(s.T(), s.db, "0021-0000002", decimal.NewFromInt(500))

	debitTxID, creditTxID, err := s.repo.ExecuteAtomicTransfer(
		from.ID, to.ID, decimal.NewFromInt(300), "Month-end sweep", "admin@backoffice")
	s.NoError(err)
	s.NotEqual(uuid.Nil, debitTxID)
	s.NotEqual(uuid.Nil, creditTxID)

	fromAfter, err := s.repo.GetByID(from.ID)
	s.NoError(err)
	s.True(fromAfter.CurrentBalance.Equal(decimal.NewFromInt(700)))

	toAfter, err := s.repo.GetByID(to.ID)
	s.NoError(err)
	s.True(toAfter.CurrentBalance.Equal(decimal.NewFromInt(800)))
}

func (s *AccountRepositorySuite) TestExecuteAtomicTransfer_InsufficientFunds() {
	from := database.CreateTestAccount(s.T(), s.db, "0021-0000001", decimal.NewFromInt(100))
	to := database.CreateTestAccount(s.T(), s.db, "0021-0000002", decimal.NewFromInt(500))

	_, _, err := s.repo.ExecuteAtomicTransfer(
		from.ID, to.ID, decimal.NewFromInt(300), "Too large", "")
	s.ErrorIs(err, ErrInsufficientFunds)

	// Neither side of the transfer may move when it fails
	fromAfter, _ := s.repo.GetByID(from.ID)
	s.True(fromAfter.CurrentBalance.Equal(decimal.NewFromInt(100)))

	toAfter, _ := s.repo.GetByID(to.ID)
	s.True(toAfter.CurrentBalance.Equal(decimal.NewFromInt(500)))
}

func (s *AccountRepositorySuite) TestGetStats() {
	database.CreateTestAccount(s.T(), s.db, "0021-0000001", decimal.NewFromInt(1000))
	database.CreateTestAccount(s.T(), s.db, "0021-0000002", decimal.NewFromInt(2500))

	inactive := database.CreateTestAccount(s.T(), s.db, "0021-0000003", decimal.NewFromInt(50))
	inactive.Status = models.AccountStatusInactive
	s.NoError(s.repo.Update(inactive))

	stats, err := s.repo.GetStats()
	s.NoError(err)
	s.Equal(3, stats.TotalAccounts)
	s.Equal(2, stats.ActiveAccounts)
	s.Equal(1, stats.InactiveAccounts)
	s.True(stats.TotalBalance.Equal(decimal.NewFromInt(3500)))
	s.Equal(3, stats.ByType[models.AccountCategoryBank])
}

func (s *AccountRepositorySuite) TestDelete() {
	account := database.CreateTestAccount(s.T(), s.db, "0021-0000001", decimal.Zero)

	s.NoError(s.repo.Delete(account.ID))

	_, err := s.repo.GetByID(account.ID)
	s.ErrorIs(err, ErrAccountNotFound)

	s.ErrorIs(s.repo.Delete(uuid.New()), ErrAccountNotFound)
}

func errorIsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
