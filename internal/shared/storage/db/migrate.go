package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// goose keeps dialect and filesystem in package globals.
var gooseMu sync.Mutex

func (d Driver) gooseDialect() string {
	if d == DriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}

func (d Driver) migrationsDir() string {
	if d == DriverSQLite {
		return "migrations/sqlite"
	}
	return "migrations/postgres"
}

func withGoose(driver Driver, fn func(dir string) error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	goose.SetBaseFS(migrationFiles)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(driver.gooseDialect()); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return fn(driver.migrationsDir())
}

// RunMigrations applies embedded SQL migrations via goose. If database is nil, it's a no-op.
func RunMigrations(ctx context.Context, database *sql.DB, driver Driver) error {
	if database == nil {
		return nil
	}
	return withGoose(driver, func(dir string) error {
		return goose.UpContext(ctx, database, dir)
	})
}

// RollbackMigration reverts the most recently applied migration.
func RollbackMigration(ctx context.Context, database *sql.DB, driver Driver) error {
	return withGoose(driver, func(dir string) error {
		return goose.DownContext(ctx, database, dir)
	})
}

// ResetMigrations reverts every applied migration.
func ResetMigrations(ctx context.Context, database *sql.DB, driver Driver) error {
	return withGoose(driver, func(dir string) error {
		return goose.ResetContext(ctx, database, dir)
	})
}

// MigrationVersion returns the current schema version.
func MigrationVersion(ctx context.Context, database *sql.DB, driver Driver) (int64, error) {
	var version int64
	err := withGoose(driver, func(string) error {
		v, err := goose.GetDBVersionContext(ctx, database)
		version = v
		return err
	})
	return version, err
}
