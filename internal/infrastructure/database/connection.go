package database

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrescamacho/puremvc-go/internal/adapters/persistence"
	"github.com/andrescamacho/puremvc-go/internal/infrastructure/config"
)

// ErrMissingURL is returned for a postgres journal without a connection string
var ErrMissingURL = errors.New("postgres journal requires database.url or DATABASE_URL")

// NewConnection opens the journal database described by cfg
func NewConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s journal: %w", cfg.Type, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying db: %w", err)
	}
	configurePool(sqlDB, cfg)

	return db, nil
}

func openDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Type {
	case "postgres":
		if cfg.URL == "" {
			return nil, ErrMissingURL
		}
		return postgres.Open(cfg.URL), nil
	case "sqlite":
		if cfg.InMemory() {
			return sqlite.Open(":memory:"), nil
		}
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}

// configurePool sizes the pool for the journal's write pattern. Every
// connection to ":memory:" is a separate database, and a sqlite file takes
// one writer at a time, so sqlite is pinned to one connection.
func configurePool(sqlDB *sql.DB, cfg *config.DatabaseConfig) {
	if cfg.Type == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
		return
	}
	if cfg.Pool.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Pool.MaxOpen)
	}
	if cfg.Pool.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Pool.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
}

// NewTestConnection creates a migrated in-memory journal for tests
func NewTestConnection() (*gorm.DB, error) {
	db, err := NewConnection(&config.DatabaseConfig{Type: "sqlite"})
	if err != nil {
		return nil, err
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate test database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the journal table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&persistence.NotificationJournalModel{})
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
