package database

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bookshelf/internal/config"
	"bookshelf/internal/models"
)

// Connect opens the postgres database and creates the schema if absent.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	// Fail early on a malformed DSN instead of at first query.
	if _, err := pgconn.ParseConfig(cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("invalid database url: %w", err)
	}

	level := gormlogger.Silent
	if cfg.IsDevelopment() {
		level = gormlogger.Warn
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("connected to the database")
	return db, nil
}

// Migrate creates or updates the six catalog tables, including the
// cascade constraints. There is no migration versioning.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Author{},
		&models.Category{},
		&models.Book{},
		&models.Review{},
		&models.UserBookCollection{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
