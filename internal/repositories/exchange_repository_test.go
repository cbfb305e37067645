package repositories

import (
	"testing"
	"time"

	"backoffice/internal/database"
	"backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExchangeRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ExchangeRepositoryInterface
}

func (s *ExchangeRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExchangeRepository(s.db.DB)
}

func (s *ExchangeRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestExchangeRepositorySuite(t *testing.T) {
	suite.Run(t, new(ExchangeRepositorySuite))
}

func (s *ExchangeRepositorySuite) TestCreate_ComputesAmounts() {
	exchange := &models.Exchange{
		FullName:     "Rahim Uddin",
		MobileNumber: "01712345678",
		Type:         models.ExchangeTypeBuy,
		CurrencyCode: "USD",
		ExchangeRate: decimal.NewFromInt(110),
		Quantity:     decimal.NewFromInt(11000),
	}

	err := s.repo.Create(exchange)
	s.NoError(err)
	s.True(exchange.AmountBDT.Equal(decimal.NewFromInt(11000)))
	s.True(exchange.ForeignAmount.Equal(decimal.NewFromInt(100)))
}

func (s *ExchangeRepositorySuite) TestGetAllWithFilters() {
	database.CreateTestExchange(s.T(), s.db, models.ExchangeTypeBuy, "USD",
		decimal.NewFromInt(110), decimal.NewFromInt(11000))
	database.CreateTestExchange(s.T(), s.db, models.ExchangeTypeSell, "USD",
		decimal.NewFromInt(112), decimal.NewFromInt(50))
	database.CreateTestExchange(s.T(), s.db, models.ExchangeTypeBuy, "EUR",
		decimal.NewFromInt(120), decimal.NewFromInt(12000))

	exchanges, total, err := s.repo.GetAllWithFilters(models.ExchangeFilters{}, 0, 20)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(exchanges, 3)

	exchanges, total, err = s.repo.GetAllWithFilters(models.ExchangeFilters{CurrencyCode: "USD"}, 0, 20)
	s.NoError(err)
	s.Equal(int64(2), total)

	exchanges, total, err = s.repo.GetAllWithFilters(models.ExchangeFilters{Type: models.ExchangeTypeSell}, 0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("USD", exchanges[0].CurrencyCode)
}

func (s *ExchangeRepositorySuite) TestGetByCurrencyCode_OrderedOldestFirst() {
	now := time.Now()

	later := &models.Exchange{
		Date:         now,
		FullName:     "Second Trade",
		Type:         models.ExchangeTypeBuy,
		CurrencyCode: "USD",
		ExchangeRate: decimal.NewFromInt(111),
		Quantity:     decimal.NewFromInt(1110),
	}
	earlier := &models.Exchange{
		Date:         now.Add(-24 * time.Hour),
		FullName:     "First Trade",
		Type:         models.ExchangeTypeBuy,
		CurrencyCode: "USD",
		ExchangeRate: decimal.NewFromInt(110),
		Quantity:     decimal.NewFromInt(1100),
	}

	s.NoError(s.repo.Create(later))
	s.NoError(s.repo.Create(earlier))

	exchanges, err := s.repo.GetByCurrencyCode("USD")
	s.NoError(err)
	s.Len(exchanges, 2)
	s.Equal("First Trade", exchanges[0].FullName)
	s.Equal("Second Trade", exchanges[1].FullName)
}

func (s *ExchangeRepositorySuite) TestListCurrencyCodes() {
	database.CreateTestExchange(s.T(), s.db, models.ExchangeTypeBuy, "USD",
		decimal.NewFromInt(110), decimal.NewFromInt(1100))
	database.CreateTestExchange(s.T(), s.db, models.ExchangeTypeBuy, "USD",
		decimal.NewFromInt(111), decimal.NewFromInt(2220))
	database.CreateTestExchange(s.T(), s.db, models.ExchangeTypeBuy, "EUR",
		decimal.NewFromInt(120), decimal.NewFromInt(1200))

	codes, err := s.repo.ListCurrencyCodes()
	s.NoError(err)
	s.Equal([]string{"EUR", "USD"}, codes)
}

func (s *ExchangeRepositorySuite) TestDelete() {
	exchange := database.CreateTestExchange(s.T(), s.db, models.ExchangeTypeBuy, "USD",
		decimal.NewFromInt(110), decimal.NewFromInt(1100))

	s.NoError(s.repo.Delete(exchange.ID))

	_, err := s.repo.GetByID(exchange.ID)
	s.ErrorIs(err, ErrExchangeNotFound)

	s.ErrorIs(s.repo.Delete(uuid.New()), ErrExchangeNotFound)
}
