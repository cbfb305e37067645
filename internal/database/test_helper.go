package database

import (
	"fmt"
	"testing"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, accountNumber string, balance decimal.Decimal) *models.BankAccount {
	t.Helper()

	account := &models.BankAccount{
		BankName:       "Test Bank",
		AccountNumber:  accountNumber,
		AccountType:    models.AccountCategoryBank,
		Currency:       "BDT",
		CurrentBalance: balance,
		InitialBalance: balance,
		Status:         models.AccountStatusActive,
		BranchName:     "Motijheel",
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestDilar(t *testing.T, db *DB, ownerName, contactNo string) *models.Dilar {
	t.Helper()

	dilar := &models.Dilar{
		OwnerName:     ownerName,
		ContactNo:     contactNo,
		TradeName:     ownerName + " Traders",
		TradeLocation: "Dhaka",
		IsActive:      true,
	}

	if err := db.Create(dilar).Error; err != nil {
		t.Fatalf("failed to create test dilar: %v", err)
	}

	return dilar
}

func CreateTestExchange(t *testing.T, db *DB, exchangeType, currencyCode string, rate, quantity decimal.Decimal) *models.Exchange {
	t.Helper()

	exchange := &models.Exchange{
		Date:         time.Now(),
		FullName:     "Test Customer",
		MobileNumber: "01712345678",
		Type:         exchangeType,
		CurrencyCode: currencyCode,
		ExchangeRate: rate,
		Quantity:     quantity,
		CustomerType: models.CustomerTypeWalkIn,
	}

	if err := db.Create(exchange).Error; err != nil {
		t.Fatalf("failed to create test exchange: %v", err)
	}

	return exchange
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"transfers",
		"exchanges",
		"reserves",
		"sub_categories",
		"categories",
		"dilars",
		"bank_accounts",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
