package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"climate-server/internal/config"
	"climate-server/internal/db"
	"climate-server/internal/migrate"
	"climate-server/internal/seed"
)

type dbConn struct {
	db      *sql.DB
	dialect db.Dialect
}

func withDB(ctx context.Context, cfg config.Config, fn func(dbConn) error) error {
	conn, dialect, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(conn); closeErr != nil {
			slog.Error("db close", "err", closeErr)
		}
	}()
	return fn(dbConn{db: conn, dialect: dialect})
}

func load(ctx context.Context, conn dbConn, stationsPath, measurementsPath string, stdout io.Writer) error {
	stations, err := os.Open(stationsPath)
	if err != nil {
		return err
	}
	defer stations.Close()

	measurements, err := os.Open(measurementsPath)
	if err != nil {
		return err
	}
	defer measurements.Close()

	// The tables must exist before they can be replaced.
	if err := migrate.Run(ctx, conn.db, conn.dialect); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	res, err := seed.Load(ctx, conn.db, conn.dialect, stations, measurements)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	_, err = fmt.Fprintf(stdout, "loaded %d stations, %d measurements\n", res.Stations, res.Measurements)
	return err
}
