package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

type nopDriver struct{}

func (d nopDriver) Open(name string) (driver.Conn, error) {
	return nopConn{}, nil
}

type nopConn struct{}

func (nopConn) Prepare(query string) (driver.Stmt, error) { return nopStmt{}, nil }
func (nopConn) Close() error                              { return nil }
func (nopConn) Begin() (driver.Tx, error)                 { return nopTx{}, nil }
func (nopConn) Ping(ctx context.Context) error            { return nil }

type nopStmt struct{}

func (nopStmt) Close() error                                    { return nil }
func (nopStmt) NumInput() int                                   { return -1 }
func (nopStmt) Exec(args []driver.Value) (driver.Result, error) { return nopResult{}, nil }
func (nopStmt) Query(args []driver.Value) (driver.Rows, error)  { return nopRows{}, nil }

type nopTx struct{}

func (nopTx) Commit() error   { return nil }
func (nopTx) Rollback() error { return nil }

type nopResult struct{}

func (nopResult) LastInsertId() (int64, error) { return 0, nil }
func (nopResult) RowsAffected() (int64, error) { return 0, nil }

type nopRows struct{}

func (nopRows) Columns() []string              { return []string{} }
func (nopRows) Close() error                   { return nil }
func (nopRows) Next(dest []driver.Value) error { return driver.ErrBadConn }

var registerTestDriverOnce sync.Once

func ensureTestDriverRegistered() {
	registerTestDriverOnce.Do(func() {
		sql.Register("dbtest", nopDriver{})
	})
}

func withTestDriver(t *testing.T) *[]string {
	t.Helper()
	ensureTestDriverRegistered()
	var opened []string
	prev := openDB
	openDB = func(name, dsn string) (*sql.DB, error) {
		opened = append(opened, name)
		return sql.Open("dbtest", dsn)
	}
	t.Cleanup(func() {
		openDB = prev
	})
	return &opened
}

func TestOptionsFromEnvAppliesOverrides(t *testing.T) {
	withTestDriver(t)

	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_MAX_IDLE_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "20m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45s")
	t.Setenv("DB_PING_TIMEOUT", "1s")

	opts := OptionsFromEnv(DefaultServerOptions())
	db, err := Connect(context.Background(), DriverPostgres, "ignored", opts)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	stats := db.Stats()
	if stats.MaxOpenConnections != 7 {
		t.Fatalf("expected MaxOpenConnections=7, got %d", stats.MaxOpenConnections)
	}
	if opts.MaxIdleConns != 3 {
		t.Fatalf("expected MaxIdleConns=3, got %d", opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime != 20*time.Minute {
		t.Fatalf("expected ConnMaxLifetime=20m, got %s", opts.ConnMaxLifetime)
	}
	if opts.ConnMaxIdleTime != 45*time.Second {
		t.Fatalf("expected ConnMaxIdleTime=45s, got %s", opts.ConnMaxIdleTime)
	}
	if opts.PingTimeout != time.Second {
		t.Fatalf("expected PingTimeout=1s, got %s", opts.PingTimeout)
	}
}

func TestConnectSelectsDriverAndPinsSQLitePool(t *testing.T) {
	opened := withTestDriver(t)

	pg, err := Connect(context.Background(), DriverPostgres, "ignored", DefaultServerOptions())
	if err != nil {
		t.Fatalf("Connect postgres: %v", err)
	}
	defer pg.Close()

	lite, err := Connect(context.Background(), DriverSQLite, "", DefaultServerOptions())
	if err != nil {
		t.Fatalf("Connect sqlite: %v", err)
	}
	defer lite.Close()

	if len(*opened) != 2 || (*opened)[0] != "pgx" || (*opened)[1] != "sqlite" {
		t.Fatalf("unexpected drivers opened: %v", *opened)
	}
	if got := lite.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("expected sqlite MaxOpenConnections=1, got %d", got)
	}
}

func TestConnectRequiresPostgresURL(t *testing.T) {
	withTestDriver(t)
	if _, err := Connect(context.Background(), DriverPostgres, "  ", DefaultServerOptions()); err == nil {
		t.Fatalf("expected error for empty DATABASE_URL")
	}
}

func TestParseDriverAndPlaceholder(t *testing.T) {
	if ParseDriver("SQLite") != DriverSQLite || ParseDriver("sqlite3") != DriverSQLite {
		t.Fatalf("expected sqlite driver")
	}
	if ParseDriver("") != DriverPostgres || ParseDriver("mysql") != DriverPostgres {
		t.Fatalf("expected postgres fallback")
	}
	if DriverPostgres.Placeholder(2) != "$2" {
		t.Fatalf("unexpected postgres placeholder %q", DriverPostgres.Placeholder(2))
	}
	if DriverSQLite.Placeholder(2) != "?" {
		t.Fatalf("unexpected sqlite placeholder %q", DriverSQLite.Placeholder(2))
	}
}

func TestIsForeignKeyViolationPostgres(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
	if !IsForeignKeyViolation(err) {
		t.Fatalf("expected FK violation")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("unique violation is not an FK violation")
	}
	if IsForeignKeyViolation(errors.New("boom")) || IsForeignKeyViolation(nil) {
		t.Fatalf("plain errors are not FK violations")
	}
}
