package db

import (
	"database/sql"
	"embed"
	"fmt"
	"tokenwatch/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Connect opens the SQLite database at path, verifies the connection and
// brings the schema up to date. The file is created on first use.
func Connect(path string) (*sql.DB, error) {
	// busy_timeout keeps a store command and a running daemon from tripping
	// over each other on short write locks.
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	logger.Log.WithField("path", path).Info("Opening token database")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to open database connection")
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		logger.Log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrateUp(db); err != nil {
		db.Close()
		logger.Log.WithError(err).Error("Failed to apply database migrations")
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Log.Info("Database connection established successfully")
	return db, nil
}

// migrateUp applies the embedded migrations to the open database.
func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not load embedded migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run up migrations: %w", err)
	}
	return nil
}
