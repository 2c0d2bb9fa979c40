// Package dbtest opens migrated throwaway databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// NewSQLite creates a SQLite file under t.TempDir, applies the schema and
// returns the handle. The database is closed on cleanup.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scheduler.db")
	db, err := sql.Open("sqlite", dbx.SQLiteDSN(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.SQLite())
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, "."))

	return db
}

// Exec runs a seeding statement and fails the test on error.
func Exec(t testing.TB, db *sql.DB, query string, args ...any) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err)
}

// Count returns SELECT COUNT(*) for the given table.
func Count(t testing.TB, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
