// Package dbtest provides migrated in-memory databases for store tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"marine-api/internal/shared/storage/db"
)

// MemoryDSN is a private in-memory sqlite database with foreign keys enforced.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// NewSQLite opens an in-memory sqlite pool and applies every migration, including the
// reference dataset. The pool is closed when the test finishes.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Connect(ctx, db.DriverSQLite, MemoryDSN, db.DefaultMigrateOptions())
	if err != nil {
		t.Fatalf("connect sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.RunMigrations(ctx, conn, db.DriverSQLite); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return conn
}
