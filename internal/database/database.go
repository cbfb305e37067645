package database

import (
	"fmt"
	"log"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.BankAccount{},
		&models.Transaction{},
		&models.Transfer{},
		&models.Dilar{},
		&models.Exchange{},
		&models.Reserve{},
		&models.Category{},
		&models.SubCategory{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_bank_accounts_status ON bank_accounts(status)",
		"CREATE INDEX IF NOT EXISTS idx_bank_accounts_account_type ON bank_accounts(account_type)",
		"CREATE INDEX IF NOT EXISTS idx_bank_accounts_deleted_at ON bank_accounts(deleted_at) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_reference ON transactions(reference)",
		"CREATE INDEX IF NOT EXISTS idx_transfers_from_account_id ON transfers(from_account_id)",
		"CREATE INDEX IF NOT EXISTS idx_transfers_to_account_id ON transfers(to_account_id)",
		"CREATE INDEX IF NOT EXISTS idx_transfers_idempotency_key ON transfers(idempotency_key)",
		"CREATE INDEX IF NOT EXISTS idx_dilars_contact_no ON dilars(contact_no)",
		"CREATE INDEX IF NOT EXISTS idx_dilars_is_active ON dilars(is_active)",
		"CREATE INDEX IF NOT EXISTS idx_exchanges_currency_code ON exchanges(currency_code)",
		"CREATE INDEX IF NOT EXISTS idx_exchanges_date ON exchanges(date)",
		"CREATE INDEX IF NOT EXISTS idx_exchanges_type ON exchanges(type)",
		"CREATE INDEX IF NOT EXISTS idx_exchanges_dilar_id ON exchanges(dilar_id) WHERE dilar_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_reserves_currency_code ON reserves(currency_code)",
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQL migrations first; AutoMigrate is the fallback for fresh dev setups
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
