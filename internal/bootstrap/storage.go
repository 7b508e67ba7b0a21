package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/xenopets/XenoPets_Go/internal/config"
	"github.com/xenopets/XenoPets_Go/internal/persist"
)

// migrationsDir holds the goose SQL migrations, relative to the working
// directory.
const migrationsDir = "migrations"

// NewStore builds the persistence backend selected by config. The returned
// closer releases backend resources; for memory and file backends it is a
// no-op.
func NewStore(cfg *config.Config) (persist.Store, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		slog.Info(LogMsgStorageInitialized, "backend", "memory")
		return persist.NewMemoryStore(), func() {}, nil

	case "file":
		store, err := persist.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		slog.Info(LogMsgStorageInitialized, "backend", "file", "dir", cfg.DataDir)
		return store, func() {}, nil

	case "postgres":
		if err := runMigrations(cfg.GetDBConnString()); err != nil {
			return nil, nil, err
		}

		pool, err := persist.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, nil, err
		}
		slog.Info(LogMsgStorageInitialized, "backend", "postgres", "host", cfg.DBHost)
		return persist.NewPostgresStore(pool), pool.Close, nil
	}

	return nil, nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
}

// runMigrations applies pending goose migrations over a short-lived
// database/sql connection.
func runMigrations(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedOpenMigration, err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
	}

	slog.Info(LogMsgMigrationsApplied)
	return nil
}
