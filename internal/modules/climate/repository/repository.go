package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"climate-server/internal/db"
	"climate-server/internal/modules/climate/types"
)

//go:embed sql/list-measurements.sql
var listMeasurementsSQL string

//go:embed sql/list-stations.sql
var listStationsSQL string

//go:embed sql/aggregate-temperature.sql
var aggregateTemperatureSQL string

//go:embed sql/max-date.sql
var maxDateSQL string

//go:embed sql/count-stations.sql
var countStationsSQL string

// ClimateRepository is the read-only view of the measurement and station
// tables shared by the API and the chart pages.
type ClimateRepository interface {
	// ListMeasurements returns rows whose date matches filter, ordered by
	// date then id.
	ListMeasurements(ctx context.Context, filter types.DateFilter) ([]types.Measurement, error)
	// ListStations returns every station in id order.
	ListStations(ctx context.Context) ([]types.Station, error)
	// AggregateTemperature returns MIN/AVG/MAX of tobs for start <= date <= end.
	AggregateTemperature(ctx context.Context, start, end string) (types.TemperatureStats, error)
	// MaxDate returns the latest measurement date; ok is false for an empty table.
	MaxDate(ctx context.Context) (date string, ok bool, err error)
	CountStations(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewRepository(conn *sql.DB, dialect db.Dialect) ClimateRepository {
	return &repositoryImpl{db: conn, dialect: dialect}
}

func (r *repositoryImpl) ListMeasurements(ctx context.Context, filter types.DateFilter) ([]types.Measurement, error) {
	query := listMeasurementsSQL
	where, args := filter.Where("date")
	if where != "" {
		query += "WHERE " + where + "\n"
	}
	query += "ORDER BY date ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close measurement rows", "error", err)
		}
	}()

	var out []types.Measurement
	for rows.Next() {
		var (
			m          types.Measurement
			prcp, tobs sql.NullFloat64
		)
		if err := rows.Scan(&m.ID, &m.Station, &m.Date, &prcp, &tobs); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		m.Prcp = nullFloat(prcp)
		m.Tobs = nullFloat(tobs)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) ListStations(ctx context.Context) ([]types.Station, error) {
	rows, err := r.db.QueryContext(ctx, listStationsSQL)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("close station rows", "error", err)
		}
	}()

	var out []types.Station
	for rows.Next() {
		var (
			s              types.Station
			lat, lng, elev sql.NullFloat64
		)
		if err := rows.Scan(&s.ID, &s.Station, &s.Name, &lat, &lng, &elev); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		s.Latitude, s.Longitude, s.Elevation = lat.Float64, lng.Float64, elev.Float64
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repositoryImpl) AggregateTemperature(ctx context.Context, start, end string) (types.TemperatureStats, error) {
	var lo, mean, hi sql.NullFloat64
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(aggregateTemperatureSQL), start, end).Scan(&lo, &mean, &hi)
	if err != nil {
		return types.TemperatureStats{}, fmt.Errorf("aggregate temperature: %w", err)
	}
	return types.TemperatureStats{
		Min: nullFloat(lo),
		Avg: nullFloat(mean),
		Max: nullFloat(hi),
	}, nil
}

func (r *repositoryImpl) MaxDate(ctx context.Context) (string, bool, error) {
	var date sql.NullString
	if err := r.db.QueryRowContext(ctx, maxDateSQL).Scan(&date); err != nil {
		return "", false, fmt.Errorf("max date: %w", err)
	}
	if !date.Valid {
		return "", false, nil
	}
	return date.String, true, nil
}

func (r *repositoryImpl) CountStations(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countStationsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stations: %w", err)
	}
	return n, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
