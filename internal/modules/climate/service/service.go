package service

import (
	"context"
	"fmt"

	"climate-server/internal/modules/climate/repository"
	"climate-server/internal/modules/climate/types"
)

type Service struct {
	repository repository.ClimateRepository
}

func NewService(repository repository.ClimateRepository) *Service {
	return &Service{repository: repository}
}

// TemperatureSummary aggregates tobs over [start, end]. An empty end means the
// latest date in the dataset. start == end is a valid single-day range.
func (s *Service) TemperatureSummary(ctx context.Context, start, end string) (types.TemperatureSummary, error) {
	if start == "" {
		return types.TemperatureSummary{}, ErrMissingStartDate
	}
	if err := ValidateDate(start); err != nil {
		return types.TemperatureSummary{}, err
	}

	if end == "" {
		latest, ok, err := s.repository.MaxDate(ctx)
		if err != nil {
			return types.TemperatureSummary{}, err
		}
		if !ok {
			return types.TemperatureSummary{}, ErrNoData
		}
		end = latest
	} else if err := ValidateDate(end); err != nil {
		return types.TemperatureSummary{}, err
	}

	if end < start {
		return types.TemperatureSummary{}, ErrInvalidRange
	}

	stats, err := s.repository.AggregateTemperature(ctx, start, end)
	if err != nil {
		return types.TemperatureSummary{}, err
	}
	if !stats.Found() {
		return types.TemperatureSummary{}, ErrNoData
	}
	return types.TemperatureSummary{
		Tmin: *stats.Min,
		Tavg: *stats.Avg,
		Tmax: *stats.Max,
	}, nil
}

// RecentMeasurements returns the measurements of the last dataset year.
func (s *Service) RecentMeasurements(ctx context.Context) ([]types.Measurement, error) {
	return s.repository.ListMeasurements(ctx, types.RecentYear)
}

func (s *Service) Stations(ctx context.Context) ([]types.Station, error) {
	return s.repository.ListStations(ctx)
}

// Coverage describes how much data is loaded.
type Coverage struct {
	LatestDate   string
	HasData      bool
	StationCount int
}

func (s *Service) Coverage(ctx context.Context) (Coverage, error) {
	latest, ok, err := s.repository.MaxDate(ctx)
	if err != nil {
		return Coverage{}, fmt.Errorf("coverage: %w", err)
	}
	n, err := s.repository.CountStations(ctx)
	if err != nil {
		return Coverage{}, fmt.Errorf("coverage: %w", err)
	}
	return Coverage{LatestDate: latest, HasData: ok, StationCount: n}, nil
}
