package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	sqlite3 "github.com/mattn/go-sqlite3"

	"climate-server/internal/config"
)

const pingTimeout = 5 * time.Second

// Dialect names the SQL flavour behind a *sql.DB. Its value is the
// database/sql driver name.
type Dialect string

const (
	SQLite   Dialect = "sqlite3"
	Postgres Dialect = "pgx"
)

// Rebind rewrites '?' placeholders into the dialect's native form.
// Queries are expected not to contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) driver() (driver.Driver, error) {
	switch d {
	case SQLite:
		return &sqlite3.SQLiteDriver{}, nil
	case Postgres:
		return stdlib.GetDefaultDriver(), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", string(d))
	}
}

func Open(ctx context.Context, cfg config.Config) (*sql.DB, Dialect, error) {
	dialect := Dialect(cfg.Driver)

	dsn, err := buildDSN(cfg)
	if err != nil {
		return nil, dialect, err
	}

	var conn *sql.DB
	if cfg.LogSQL {
		drv, err := dialect.driver()
		if err != nil {
			return nil, dialect, err
		}
		connector, err := NewLoggingConnector(drv, dsn, slog.Default())
		if err != nil {
			return nil, dialect, err
		}
		conn = sql.OpenDB(connector)
	} else {
		conn, err = sql.Open(string(dialect), dsn)
		if err != nil {
			return nil, dialect, fmt.Errorf("db open: %w", err)
		}
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, dialect, fmt.Errorf("db ping: %w", err)
	}

	return conn, dialect, nil
}

func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}

func buildDSN(cfg config.Config) (string, error) {
	if cfg.DSN != "" {
		return cfg.DSN, nil
	}
	if Dialect(cfg.Driver) != SQLite {
		return "", fmt.Errorf("driver %q needs DB_DSN", cfg.Driver)
	}

	path := cfg.Path
	if !strings.HasPrefix(path, "file:") {
		dir := filepath.Dir(path)
		if dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	// busy_timeout keeps readers from failing while the loader holds a write lock.
	params := []string{
		"_foreign_keys=on",
		"_busy_timeout=5000",
		"_journal_mode=WAL",
	}

	if strings.HasPrefix(path, "file:") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + strings.Join(params, "&"), nil
	}

	return fmt.Sprintf("file:%s?%s", path, strings.Join(params, "&")), nil
}
