// Package database opens the gorm connection and prepares the schema.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/progresstrack/progress-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Type identifies the SQL backend selected by a DSN.
type Type string

const (
	TypePostgres Type = "postgres"
	TypeSQLite   Type = "sqlite"
)

// DefaultRoles are seeded by Migrate.
var DefaultRoles = []models.Role{
	{Value: models.RoleAdmin, Description: "Administrator"},
	{Value: models.RoleUser, Description: "Regular user"},
}

// DetectType determines the database type from a DSN string.
func DetectType(dsn string) Type {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return TypePostgres
	}
	return TypeSQLite
}

// Connect opens a gorm connection for a PostgreSQL or SQLite DSN.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var dialector gorm.Dialector
	switch DetectType(dsn) {
	case TypePostgres:
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(withForeignKeys(dsn))
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	if DetectType(dsn) == TypeSQLite {
		// single writer; in-memory databases are per-connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates all tables and seeds the default roles.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return SeedRoles(ctx, db, DefaultRoles...)
}

// SeedRoles inserts the given roles unless a role with the same value exists.
func SeedRoles(ctx context.Context, db *gorm.DB, roles ...models.Role) error {
	for _, role := range roles {
		var existing models.Role
		err := db.WithContext(ctx).Where("value = ?", role.Value).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up role %s: %w", role.Value, err)
		}
		r := role
		if err := db.WithContext(ctx).Create(&r).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Value, err)
		}
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
