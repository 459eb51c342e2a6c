package controller

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"climate-server/internal/modules/climate/chart"
	"climate-server/internal/modules/climate/types"
	"climate-server/internal/modules/climate/views"
	"climate-server/internal/utils"
)

var routeIndex = []views.RouteLink{
	{Path: "/api/v1.0/precipitation", Example: "/api/v1.0/precipitation", Description: "precipitation by date for the last year"},
	{Path: "/api/v1.0/stations", Example: "/api/v1.0/stations", Description: "station names"},
	{Path: "/api/v1.0/tobs", Example: "/api/v1.0/tobs", Description: "temperature observations for the last year"},
	{Path: "/api/v1.0?start=YYYY-MM-DD&end=YYYY-MM-DD", Example: "/api/v1.0?start=2017-01-01&end=2017-01-31", Description: "min, average and max temperature for a date range"},
	{Path: "/charts/temperature", Example: "/charts/temperature", Description: "temperature chart"},
	{Path: "/charts/precipitation", Example: "/charts/precipitation", Description: "precipitation chart"},
}

func (c *climateControllerImpl) handleHome(w http.ResponseWriter, r *http.Request) {
	coverage, err := c.service.Coverage(r.Context())
	if err != nil {
		slog.Error("home: coverage failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load dataset coverage")
		return
	}
	data := &views.HomeData{
		Title:        "Hawaii Climate API",
		LatestDate:   coverage.LatestDate,
		HasData:      coverage.HasData,
		StationCount: coverage.StationCount,
		Routes:       routeIndex,
	}
	var buf bytes.Buffer
	if err := views.RenderHome(&buf, data); err != nil {
		slog.Error("home template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	writeHTML(w, buf.Bytes())
}

func (c *climateControllerImpl) handleTemperatureChart(w http.ResponseWriter, r *http.Request) {
	c.renderChart(w, r, "tobs", "Temperature observations", "tobs (°F)", chart.TemperatureStyle)
}

func (c *climateControllerImpl) handlePrecipitationChart(w http.ResponseWriter, r *http.Request) {
	c.renderChart(w, r, "prcp", "Precipitation", "prcp (in)", chart.PrecipitationStyle)
}

func (c *climateControllerImpl) renderChart(w http.ResponseWriter, r *http.Request, column, title, yAxis string, style chart.Style) {
	rows, err := c.service.RecentMeasurements(r.Context())
	if err != nil {
		slog.Error("chart: list measurements failed", "column", column, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to load measurements")
		return
	}
	points, err := chart.Series(rows, column)
	if err != nil {
		slog.Error("chart: build series failed", "column", column, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to build chart")
		return
	}
	traces, err := chart.Encode(chart.Scatter(column, points, style))
	if err != nil {
		slog.Error("chart: encode failed", "column", column, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to build chart")
		return
	}

	data := &views.ChartData{
		Title:  title,
		Window: "After " + types.RecentYear.From + " through " + types.RecentYear.To,
		YAxis:  yAxis,
		Traces: template.JS(traces),
	}
	var buf bytes.Buffer
	if err := views.RenderChart(&buf, data); err != nil {
		slog.Error("chart template render failed", "column", column, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(body); err != nil {
		slog.Error("write html response failed", "error", err)
	}
}
