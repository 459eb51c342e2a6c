package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ErrorFormatLegacy = "legacy"
	ErrorFormatJSON   = "json"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	HTTPAddr string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration

	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	Driver          string
	DSN             string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
	LogSQL          bool

	// ErrorFormat selects how the range endpoint reports input errors.
	// "legacy" keeps plain-text guidance strings, "json" normalizes everything
	// to {"status":"failure","error":...} with a matching status code.
	ErrorFormat string
}

// fileConfig mirrors the optional YAML file named by CONFIG_FILE.
type fileConfig struct {
	AppEnv           string `yaml:"app_env"`
	LogLevel         string `yaml:"log_level"`
	HTTPAddr         string `yaml:"http_addr"`
	HTTPReadTimeout  string `yaml:"http_read_timeout"`
	HTTPWriteTimeout string `yaml:"http_write_timeout"`
	ErrorFormat      string `yaml:"error_format"`
	DB               struct {
		Driver          string `yaml:"driver"`
		DSN             string `yaml:"dsn"`
		Path            string `yaml:"path"`
		MaxOpenConns    string `yaml:"max_open_conns"`
		MaxIdleConns    string `yaml:"max_idle_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		Migrate         string `yaml:"migrate"`
		LogSQL          string `yaml:"log_sql"`
	} `yaml:"db"`
}

func LoadFromEnv() (Config, error) {
	var file fileConfig
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read CONFIG_FILE %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("decode CONFIG_FILE %q: %w", path, err)
		}
	}

	appEnv := lookup("APP_ENV", file.AppEnv, "dev")
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	level, err := parseLogLevel(lookup("LOG_LEVEL", file.LogLevel, "info"))
	if err != nil {
		return Config{}, err
	}

	httpAddr := lookup("HTTP_ADDR", file.HTTPAddr, ":8080")

	readTimeoutStr := lookup("HTTP_READ_TIMEOUT", file.HTTPReadTimeout, "10s")
	readTimeout, err := time.ParseDuration(readTimeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_READ_TIMEOUT %q: %w", readTimeoutStr, err)
	}
	writeTimeoutStr := lookup("HTTP_WRITE_TIMEOUT", file.HTTPWriteTimeout, "15s")
	writeTimeout, err := time.ParseDuration(writeTimeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_WRITE_TIMEOUT %q: %w", writeTimeoutStr, err)
	}

	driver := lookup("DB_DRIVER", file.DB.Driver, "sqlite3")
	switch driver {
	case "sqlite3", "pgx":
	default:
		return Config{}, fmt.Errorf("invalid DB_DRIVER %q (allowed: sqlite3, pgx)", driver)
	}
	dsn := lookup("DB_DSN", file.DB.DSN, "")
	if driver == "pgx" && dsn == "" {
		return Config{}, fmt.Errorf("DB_DSN is required when DB_DRIVER is %q", driver)
	}
	path := lookup("SQLITE_PATH", file.DB.Path, "Resources/hawaii.sqlite")

	maxOpenConnsStr := lookup("DB_MAX_OPEN_CONNS", file.DB.MaxOpenConns, "4")
	maxOpenConns, err := strconv.Atoi(maxOpenConnsStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_OPEN_CONNS %q: %w", maxOpenConnsStr, err)
	}

	maxIdleConnsStr := lookup("DB_MAX_IDLE_CONNS", file.DB.MaxIdleConns, "4")
	maxIdleConns, err := strconv.Atoi(maxIdleConnsStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MAX_IDLE_CONNS %q: %w", maxIdleConnsStr, err)
	}

	connMaxLifetimeStr := lookup("DB_CONN_MAX_LIFETIME", file.DB.ConnMaxLifetime, "0s")
	connMaxLifetime, err := time.ParseDuration(connMaxLifetimeStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME %q: %w", connMaxLifetimeStr, err)
	}

	migrateStr := lookup("DB_MIGRATE", file.DB.Migrate, "true")
	migrate, err := strconv.ParseBool(migrateStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_MIGRATE %q: %w", migrateStr, err)
	}

	logSQLStr := lookup("DB_LOG_SQL", file.DB.LogSQL, "false")
	logSQL, err := strconv.ParseBool(logSQLStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_LOG_SQL %q: %w", logSQLStr, err)
	}

	errorFormat := strings.ToLower(lookup("ERROR_FORMAT", file.ErrorFormat, ErrorFormatLegacy))
	switch errorFormat {
	case ErrorFormatLegacy, ErrorFormatJSON:
	default:
		return Config{}, fmt.Errorf("invalid ERROR_FORMAT %q (allowed: legacy, json)", errorFormat)
	}

	return Config{
		AppEnv:           appEnv,
		LogLevel:         level,
		HTTPAddr:         httpAddr,
		HTTPReadTimeout:  readTimeout,
		HTTPWriteTimeout: writeTimeout,
		Driver:           driver,
		DSN:              dsn,
		Path:             path,
		MaxOpenConns:     maxOpenConns,
		MaxIdleConns:     maxIdleConns,
		ConnMaxLifetime:  connMaxLifetime,
		Migrate:          migrate,
		LogSQL:           logSQL,
		ErrorFormat:      errorFormat,
	}, nil
}

// lookup returns the trimmed env value, then the file value, then def.
func lookup(env, fromFile, def string) string {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	if v := strings.TrimSpace(fromFile); v != "" {
		return v
	}
	return def
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
