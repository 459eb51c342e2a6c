// Package seed bulk-loads the station and measurement CSV exports.
//
//	stations:     station,name,latitude,longitude,elevation
//	measurements: station,date,prcp,tobs
//
// Both files start with that header row. Empty numeric cells load as NULL.
package seed

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"climate-server/internal/db"
	"climate-server/internal/modules/climate/service"
)

var (
	stationHeader     = []string{"station", "name", "latitude", "longitude", "elevation"}
	measurementHeader = []string{"station", "date", "prcp", "tobs"}
)

const (
	insertStationSQL     = `INSERT INTO station (id, station, name, latitude, longitude, elevation) VALUES (?, ?, ?, ?, ?, ?)`
	insertMeasurementSQL = `INSERT INTO measurement (id, station, date, prcp, tobs) VALUES (?, ?, ?, ?, ?)`
)

type Result struct {
	Stations     int
	Measurements int
}

// Load replaces the contents of both tables with the given CSV data inside a
// single transaction. Row ids follow file order, starting at 1.
func Load(ctx context.Context, conn *sql.DB, dialect db.Dialect, stations, measurements io.Reader) (Result, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("seed rollback", "error", err)
		}
	}()

	for _, table := range []string{"measurement", "station"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return Result{}, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	var res Result
	res.Stations, err = loadStations(ctx, tx, dialect, stations)
	if err != nil {
		return Result{}, fmt.Errorf("stations: %w", err)
	}
	res.Measurements, err = loadMeasurements(ctx, tx, dialect, measurements)
	if err != nil {
		return Result{}, fmt.Errorf("measurements: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

func loadStations(ctx context.Context, tx *sql.Tx, dialect db.Dialect, r io.Reader) (int, error) {
	stmt, err := tx.PrepareContext(ctx, dialect.Rebind(insertStationSQL))
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	n := 0
	err = eachRecord(r, stationHeader, func(line int, rec []string) error {
		if rec[0] == "" || rec[1] == "" {
			return fmt.Errorf("line %d: station and name are required", line)
		}
		lat, err := parseNullable(rec[2])
		if err != nil {
			return fmt.Errorf("line %d: latitude: %w", line, err)
		}
		lng, err := parseNullable(rec[3])
		if err != nil {
			return fmt.Errorf("line %d: longitude: %w", line, err)
		}
		elev, err := parseNullable(rec[4])
		if err != nil {
			return fmt.Errorf("line %d: elevation: %w", line, err)
		}
		n++
		if _, err := stmt.ExecContext(ctx, n, rec[0], rec[1], lat, lng, elev); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		return nil
	})
	return n, err
}

func loadMeasurements(ctx context.Context, tx *sql.Tx, dialect db.Dialect, r io.Reader) (int, error) {
	stmt, err := tx.PrepareContext(ctx, dialect.Rebind(insertMeasurementSQL))
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	n := 0
	err = eachRecord(r, measurementHeader, func(line int, rec []string) error {
		if rec[0] == "" {
			return fmt.Errorf("line %d: station is required", line)
		}
		if err := service.ValidateDate(rec[1]); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		prcp, err := parseNullable(rec[2])
		if err != nil {
			return fmt.Errorf("line %d: prcp: %w", line, err)
		}
		tobs, err := parseNullable(rec[3])
		if err != nil {
			return fmt.Errorf("line %d: tobs: %w", line, err)
		}
		n++
		if _, err := stmt.ExecContext(ctx, n, rec[0], rec[1], prcp, tobs); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		return nil
	})
	return n, err
}

// eachRecord checks the header row, then calls fn for every data row with its
// 1-based line number.
func eachRecord(r io.Reader, header []string, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true

	got, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("missing header row")
		}
		return fmt.Errorf("header: %w", err)
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(got[i]), col) {
			return fmt.Errorf("header column %d is %q, want %q", i+1, got[i], col)
		}
	}

	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		line++
		if err != nil {
			return err
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

func parseNullable(s string) (sql.NullFloat64, error) {
	if s == "" {
		return sql.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}
