// filepath: internal/repository/repository.go

// Package repository implements the SQLite persistence layer: the category
// taxonomy, the recipe aggregate store and the filtered aggregate queries.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"

	"github.com/shinohara-jil/recipe-app/internal/config"
	"github.com/shinohara-jil/recipe-app/internal/db/migrations"
	"github.com/shinohara-jil/recipe-app/internal/logging"
)

const categoryListCacheKey = "categories:list"

// Repository wraps the SQLite connection, the SQL builder and a small
// read cache for the category list.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType
	Cache   *cache.Cache
}

// NewRepository opens (or creates) the SQLite database at the configured path.
func NewRepository(cfg *config.Config) (*Repository, error) {
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database path is not configured")
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on", cfg.Database.Path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:      db,
		Builder: squirrel.StatementBuilder,
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
	}, nil
}

// Close closes the underlying database connection.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// EnsureSchemaBootstrapped applies any pending migrations on startup.
func (s *Repository) EnsureSchemaBootstrapped() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	// The migration directory is embedded, so goose reads the root of the FS.
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logging.Log.Debug("Database schema is up to date")
	return nil
}

// IsUniqueConstraintErr reports whether err is a SQLite unique-constraint
// violation. The driver's extended error code is inspected rather than the
// message text, so the translation survives driver message changes.
func IsUniqueConstraintErr(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
