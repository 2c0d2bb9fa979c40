// Package storage opens the configured database, applies the embedded
// migrations and pairs the handle with the matching repository manager.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Store struct {
	DB    *sql.DB
	Repos repomanager.RepositoryManager
}

func (s *Store) Close() error {
	return s.DB.Close()
}

// Open connects to driver (config.DriverSQLite or config.DriverPostgres),
// checks the connection and migrates the schema. For SQLite dsn is a file
// path and the connection pragmas are added by dbx.SQLiteDSN.
func Open(ctx context.Context, driver, dsn string, logger logging.Logger) (*Store, error) {
	var (
		sqlDriver string
		repos     repomanager.RepositoryManager
	)

	switch driver {
	case config.DriverSQLite:
		sqlDriver, dsn = "sqlite", dbx.SQLiteDSN(dsn)
		repos = repomanager.NewSQLiteRepositoryManager()
	case config.DriverPostgres:
		sqlDriver = "pgx"
		repos = repomanager.NewPostgresRepositoryManager()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	goose.SetLogger(&gooseLogger{ctx: ctx, log: logger})
	if err := repos.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	logger.Debug(ctx, "storage ready", "dialect", repos.Dialect())
	return &Store{DB: db, Repos: repos}, nil
}

// gooseLogger routes goose progress output to the debug log so it never
// reaches stdout.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "goose")
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.log.Error(g.ctx, msg, "component", "goose")
	panic(msg)
}
