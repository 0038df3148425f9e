package database

import (
	"strings"

	"pdp-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from the configured DSN. A postgres:// URL opens
// Postgres (PreferSimpleProtocol disables prepared statement caching to avoid
// 42P05 "prepared statement already exists" behind connection poolers);
// anything else is treated as a SQLite file path, the default for a
// single-operator deployment.
func Open(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// AutoMigrate creates the snapshot schema idempotently at startup.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Baseline{},
		&models.AgentRecord{},
		&models.OfficeAggregate{},
		&models.CompanyAggregate{},
	)
}
