package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ManuelReschke/ChatNest/app/models"
	"github.com/ManuelReschke/ChatNest/internal/pkg/env"
)

// ErrNoDSN is returned when neither DATABASE_URL nor the DB_* parts
// are configured. The process must not come up half-wired.
var ErrNoDSN = errors.New("database: no connection string configured (set DATABASE_URL)")

var db *gorm.DB

// BuildDSN resolves the MySQL DSN from the environment. DATABASE_URL
// wins; otherwise the DSN is composed from the individual DB_* values.
func BuildDSN() (string, error) {
	if url := env.GetEnv("DATABASE_URL", ""); url != "" {
		return url, nil
	}

	user := env.GetEnv("DB_USER", "")
	name := env.GetEnv("DB_NAME", "")
	if user == "" || name == "" {
		return "", ErrNoDSN
	}

	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user,
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		name,
	), nil
}

// Connect opens a pooled connection for the given DSN. There is no
// retry loop: a wrong connection string should fail loudly at startup.
func Connect(dsn string) (*gorm.DB, error) {
	handle, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       dsn,
		DefaultStringSize:         256,   // default size for string fields
		DisableDatetimePrecision:  true,  // datetime precision not supported before MySQL 5.6
		DontSupportRenameIndex:    true,  // drop & create when renaming an index (MySQL < 5.7, MariaDB)
		DontSupportRenameColumn:   true,  // `change` when renaming a column (MySQL < 8, MariaDB)
		SkipInitializeWithVersion: false, // auto configure based on current MySQL version
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	return handle, nil
}

// Close tears down the underlying connection pool. Callers own the
// handle lifecycle; nothing here closes implicitly at exit.
func Close(handle *gorm.DB) error {
	if handle == nil {
		return nil
	}
	sqlDB, err := handle.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrateAll creates or updates every table. Dev and test
// convenience only; production schema changes go through cmd/migrate.
func AutoMigrateAll(handle *gorm.DB) error {
	return handle.AutoMigrate(models.AllModels()...)
}

// SetupDatabase wires the package-level handle from the environment.
// cmd binaries use this once at startup; library code always takes an
// injected *gorm.DB instead.
func SetupDatabase() {
	dsn, err := BuildDSN()
	if err != nil {
		panic(err)
	}

	db, err = Connect(dsn)
	if err != nil {
		panic(err)
	}
}

func GetDB() *gorm.DB {
	return db
}

// SetDB swaps the package-level handle, for test setups that run
// against an in-memory store.
func SetDB(handle *gorm.DB) {
	db = handle
}
