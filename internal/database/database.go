package database

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/welldanyogia/webrana-trivia-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connection pool configuration
const (
	DefaultMaxIdleConns    = 10
	DefaultMaxOpenConns    = 100
	DefaultConnMaxLifetime = time.Hour
	DefaultConnMaxIdleTime = 10 * time.Minute
)

const sqliteScheme = "sqlite://"

// Connect opens the store named by databaseURL. postgres:// URLs and
// key=value DSNs go to PostgreSQL, sqlite:// URLs to SQLite.
func Connect(databaseURL string, logMode logger.LogLevel) (*gorm.DB, error) {
	return ConnectWithConfig(databaseURL, logMode,
		DefaultMaxIdleConns, DefaultMaxOpenConns, DefaultConnMaxLifetime, DefaultConnMaxIdleTime)
}

// ConnectWithConfig establishes a connection with custom pool configuration
func ConnectWithConfig(databaseURL string, logMode logger.LogLevel, maxIdleConns, maxOpenConns int, connMaxLifetime, connMaxIdleTime time.Duration) (*gorm.DB, error) {
	// Validate SSL mode in production
	if os.Getenv("APP_ENV") == "production" {
		if err := validateSSLMode(databaseURL); err != nil {
			return nil, err
		}
	}

	dialector, memory := openDialector(databaseURL)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Every connection to :memory: is a separate database
	if memory {
		maxIdleConns, maxOpenConns = 1, 1
		connMaxLifetime, connMaxIdleTime = 0, 0
	}

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	if db.Dialector.Name() == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	slog.Info("Connected to database successfully", slog.String("driver", db.Dialector.Name()))
	return db, nil
}

// openDialector picks the gorm dialector for a database URL and reports
// whether it names an in-memory SQLite database
func openDialector(databaseURL string) (gorm.Dialector, bool) {
	if path, ok := sqlitePath(databaseURL); ok {
		memory := path == ":memory:" || strings.Contains(path, "mode=memory")
		return sqlite.Open(withForeignKeys(path)), memory
	}
	return postgres.Open(databaseURL), false
}

// sqlitePath extracts the SQLite path from a sqlite:// or file: URL
func sqlitePath(databaseURL string) (string, bool) {
	switch {
	case strings.HasPrefix(databaseURL, sqliteScheme):
		return strings.TrimPrefix(databaseURL, sqliteScheme), true
	case strings.HasPrefix(databaseURL, "file:"):
		return databaseURL, true
	default:
		return "", false
	}
}

func withForeignKeys(path string) string {
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=1"
	}
	return path + "?_foreign_keys=1"
}

// validateSSLMode ensures SSL is enabled in production
func validateSSLMode(databaseURL string) error {
	if strings.Contains(databaseURL, "sslmode=disable") {
		return fmt.Errorf("SSL mode cannot be disabled in production")
	}
	return nil
}

// GormLogLevel maps an application log level to a gorm log mode
func GormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "warn", "warning":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}

// Migrate runs auto-migration for all models
func Migrate(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
