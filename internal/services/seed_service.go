package services

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"backoffice/internal/dto"
	"backoffice/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// SeedService populates a development database with realistic sample data.
// It runs only when SEED_DATABASE=true and skips everything once an admin
// user exists, so restarts do not pile up duplicates.
type SeedService struct {
	authService     AuthServiceInterface
	accountService  AccountServiceInterface
	dilarService    DilarServiceInterface
	exchangeService ExchangeServiceInterface
	categoryService CategoryServiceInterface
	logger          *slog.Logger
}

// NewSeedService creates a seed service
func NewSeedService(
	authService AuthServiceInterface,
	accountService AccountServiceInterface,
	dilarService DilarServiceInterface,
	exchangeService ExchangeServiceInterface,
	categoryService CategoryServiceInterface,
	logger *slog.Logger,
) *SeedService {
	return &SeedService{
		authService:     authService,
		accountService:  accountService,
		dilarService:    dilarService,
		exchangeService: exchangeService,
		categoryService: categoryService,
		logger:          logger,
	}
}

// SeedIfEnabled seeds sample data when SEED_DATABASE=true
func (s *SeedService) SeedIfEnabled() error {
	if os.Getenv("SEED_DATABASE") != "true" {
		return nil
	}

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@backoffice.local"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin-dev-password"
	}

	_, err := s.authService.CreateUser(adminEmail, adminPassword, "Office Admin", models.RoleAdmin)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			s.logger.Info("seed skipped, admin user already exists")
			return nil
		}
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.seedAccounts(); err != nil {
		return err
	}
	if err := s.seedCategories(); err != nil {
		return err
	}
	dilars, err := s.seedDilars()
	if err != nil {
		return err
	}
	if err := s.seedExchanges(dilars); err != nil {
		return err
	}

	s.logger.Info("database seeded with sample data")
	return nil
}

func (s *SeedService) seedAccounts() error {
	seeds := []dto.CreateAccountRequest{
		{BankName: "Sonali Bank", AccountNumber: "0021-3300451", AccountType: models.AccountCategoryBank, InitialBalance: "250000", BranchName: "Motijheel", BranchCode: "MTJ-01"},
		{BankName: "Dutch-Bangla Bank", AccountNumber: "117-110-45892", AccountType: models.AccountCategoryBank, InitialBalance: "180000", BranchName: "Gulshan", BranchCode: "GLS-02"},
		{BankName: "bKash Merchant", AccountNumber: "01711000001", AccountType: models.AccountCategoryMobileBanking, InitialBalance: "45000"},
		{BankName: "Office Cash Drawer", AccountNumber: "CASH-001", AccountType: models.AccountCategoryCash, InitialBalance: "75000"},
	}

	for i := range seeds {
		if _, err := s.accountService.CreateAccount(&seeds[i], "seed"); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", seeds[i].AccountNumber, err)
		}
	}
	return nil
}

func (s *SeedService) seedCategories() error {
	seeds := []dto.CreateCategoryRequest{
		{
			Name: "Office Expense", Icon: "briefcase",
			SubCategories: []dto.SubCategoryInput{{Name: "Rent"}, {Name: "Utilities"}, {Name: "Stationery"}},
		},
		{
			Name: "Commission", Icon: "percent",
			SubCategories: []dto.SubCategoryInput{{Name: "Dilar Commission"}, {Name: "Agent Commission"}},
		},
		{Name: "Miscellaneous", Icon: "dots"},
	}

	for i := range seeds {
		if _, err := s.categoryService.CreateCategory(&seeds[i]); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", seeds[i].Name, err)
		}
	}
	return nil
}

func (s *SeedService) seedDilars() ([]*models.Dilar, error) {
	var dilars []*models.Dilar

	for i := 0; i < 5; i++ {
		req := &dto.CreateDilarRequest{
			OwnerName:     gofakeit.Name(),
			ContactNo:     gofakeit.Numerify("017########"),
			TradeName:     gofakeit.Company() + " Money Changer",
			TradeLocation: gofakeit.City(),
		}

		dilar, err := s.dilarService.CreateDilar(req)
		if err != nil {
			// Faked contact numbers can collide; skip and move on
			if errors.Is(err, ErrContactNoExists) {
				continue
			}
			return nil, fmt.Errorf("failed to seed dilar: %w", err)
		}
		dilars = append(dilars, dilar)
	}

	return dilars, nil
}

func (s *SeedService) seedExchanges(dilars []*models.Dilar) error {
	currencies := []struct {
		code string
		name string
		rate float64
	}{
		{"USD", "US Dollar", 117.50},
		{"EUR", "Euro", 127.80},
		{"SAR", "Saudi Riyal", 31.30},
	}

	for _, cur := range currencies {
		// A buy first so later sells have reserve to draw from
		buyQty := decimal.NewFromFloat(gofakeit.Float64Range(50000, 200000)).Round(0)
		buy := &dto.CreateExchangeRequest{
			FullName:     gofakeit.Name(),
			MobileNumber: gofakeit.Numerify("018########"),
			Type:         models.ExchangeTypeBuy,
			CurrencyCode: cur.code,
			CurrencyName: cur.name,
			ExchangeRate: decimal.NewFromFloat(cur.rate).String(),
			Quantity:     buyQty.String(),
		}
		if len(dilars) > 0 && gofakeit.Bool() {
			id := dilars[gofakeit.Number(0, len(dilars)-1)].ID.String()
			buy.CustomerType = models.CustomerTypeDilar
			buy.DilarID = &id
		}
		created, err := s.exchangeService.CreateExchange(buy, "seed")
		if err != nil {
			return fmt.Errorf("failed to seed buy exchange: %w", err)
		}

		// Sell back part of what was bought at a slightly better rate
		sellQty := created.ForeignAmount.Mul(decimal.NewFromFloat(0.4)).Round(2)
		if sellQty.LessThanOrEqual(decimal.Zero) {
			continue
		}
		sell := &dto.CreateExchangeRequest{
			FullName:     gofakeit.Name(),
			Type:         models.ExchangeTypeSell,
			CurrencyCode: cur.code,
			CurrencyName: cur.name,
			ExchangeRate: decimal.NewFromFloat(cur.rate * 1.02).Round(4).String(),
			Quantity:     sellQty.String(),
		}
		if _, err := s.exchangeService.CreateExchange(sell, "seed"); err != nil {
			return fmt.Errorf("failed to seed sell exchange: %w", err)
		}
	}

	return nil
}
