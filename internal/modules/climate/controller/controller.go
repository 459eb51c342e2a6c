package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"climate-server/internal/modules/climate/service"
	"climate-server/internal/modules/climate/views"
)

type ClimateController interface {
	RegisterRoutes(r chi.Router)
}

type climateControllerImpl struct {
	service     *service.Service
	errorFormat string
}

// NewClimateController serves the API and pages. errorFormat is
// config.ErrorFormatLegacy or config.ErrorFormatJSON.
func NewClimateController(service *service.Service, errorFormat string) ClimateController {
	return &climateControllerImpl{service: service, errorFormat: errorFormat}
}

func (c *climateControllerImpl) RegisterRoutes(r chi.Router) {
	r.Get("/", c.handleHome)
	r.Get("/charts/temperature", c.handleTemperatureChart)
	r.Get("/charts/precipitation", c.handlePrecipitationChart)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(views.Static()))))

	r.Get("/api/v1.0", c.handleTemperatureRange)
	r.Get("/api/v1.0/precipitation", c.handlePrecipitation)
	r.Get("/api/v1.0/tobs", c.handleTobs)
	r.Get("/api/v1.0/stations", c.handleStations)
}
