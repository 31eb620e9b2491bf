// Package db wires the gorm connection and schema migrations.
package db

import (
	"fmt"

	"github.com/edualcrd/invoicemaker/internal/config"
	"github.com/edualcrd/invoicemaker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database selected by the DSN: PostgreSQL for URL or
// key=value form, SQLite for a plain file path. A single attempt is made;
// reconnection beyond the driver's own behavior is not our concern.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	// TranslateError lets callers match gorm.ErrDuplicatedKey across drivers.
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	var dialector gorm.Dialector
	if cfg.Postgres() {
		dialector = postgres.Open(cfg.DSN)
	} else {
		dialector = sqlite.Open(cfg.DSN)
	}
	conn, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return conn, nil
}

// Migrate creates or updates the schema from the model definitions.
func Migrate(conn *gorm.DB) error {
	toMigrate := []any{
		&models.User{},
		&models.Client{},
		&models.Product{},
		&models.Expense{},
		&models.Invoice{},
	}
	for _, m := range toMigrate {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}
