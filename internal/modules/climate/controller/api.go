package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"climate-server/internal/config"
	"climate-server/internal/modules/climate/payload"
	"climate-server/internal/modules/climate/service"
	"climate-server/internal/modules/climate/types"
	"climate-server/internal/utils"
)

func (c *climateControllerImpl) handlePrecipitation(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.RecentMeasurements(r.Context())
	if err != nil {
		slog.Error("precipitation: list measurements failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load measurements")
		return
	}
	utils.WriteJSON(w, http.StatusOK, types.ListPayload{Result: payload.Pairs(rows, "date", "prcp")})
}

func (c *climateControllerImpl) handleTobs(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.RecentMeasurements(r.Context())
	if err != nil {
		slog.Error("tobs: list measurements failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load measurements")
		return
	}
	utils.WriteJSON(w, http.StatusOK, types.ListPayload{Result: payload.Pairs(rows, "date", "tobs")})
}

func (c *climateControllerImpl) handleStations(w http.ResponseWriter, r *http.Request) {
	stations, err := c.service.Stations(r.Context())
	if err != nil {
		slog.Error("stations: list failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load stations")
		return
	}
	utils.WriteJSON(w, http.StatusOK, types.ListPayload{Result: payload.Project(stations, "name")})
}

// handleTemperatureRange reports min/avg/max tobs between ?start and ?end.
// Every failure, including a panic, ends up as a response here.
func (c *climateControllerImpl) handleTemperatureRange(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("temperature range: panic", "panic", rec)
			c.writeRangeError(w, fmt.Errorf("%v", rec))
		}
	}()

	q := r.URL.Query()
	summary, err := c.service.TemperatureSummary(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		c.writeRangeError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}

func (c *climateControllerImpl) writeRangeError(w http.ResponseWriter, err error) {
	var formatErr *service.InvalidDateFormatError

	status := http.StatusInternalServerError
	guidance := false
	switch {
	case errors.Is(err, service.ErrMissingStartDate), errors.Is(err, service.ErrInvalidRange):
		status, guidance = http.StatusBadRequest, true
	case errors.Is(err, service.ErrNoData):
		status, guidance = http.StatusNotFound, true
	case errors.As(err, &formatErr):
		status = http.StatusBadRequest
	default:
		slog.Error("temperature range failed", "error", err)
	}

	if c.errorFormat == config.ErrorFormatJSON {
		utils.WriteJSON(w, status, types.FailurePayload{Status: "failure", Error: err.Error()})
		return
	}

	// Legacy responses: guidance as plain text, 200 except for missing data,
	// everything else as a 200 failure payload.
	if guidance {
		if status != http.StatusNotFound {
			status = http.StatusOK
		}
		utils.WriteText(w, status, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, types.FailurePayload{Status: "failure", Error: err.Error()})
}
