package database

import (
	"fmt"
	"strings"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/config"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open picks the driver from the DSN: postgres URLs go to postgres, anything
// else is treated as a sqlite path.
func Open(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if isPostgres(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Connect opens the application pool and brings the schema up to date.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = cfg.DatabasePath
	}

	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}

	migrationDSN := cfg.MigrationDSN()
	if migrationDSN == "" || migrationDSN == dsn {
		if err := Migrate(db); err != nil {
			Close(db)
			return nil, err
		}
		return db, nil
	}

	direct, err := Open(migrationDSN)
	if err != nil {
		Close(db)
		return nil, err
	}
	defer Close(direct)

	if err := Migrate(direct); err != nil {
		Close(db)
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("Failed to close database", "error", err)
	}
}

// OpenInMemory returns a migrated sqlite database that lives as long as the
// handle. The pool is capped at one connection since every sqlite :memory:
// connection is a separate database.
func OpenInMemory() (*gorm.DB, error) {
	db, err := Open(":memory:")
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
