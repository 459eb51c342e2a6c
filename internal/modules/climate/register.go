package climate

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"climate-server/internal/config"
	"climate-server/internal/db"
	"climate-server/internal/modules/climate/controller"
	"climate-server/internal/modules/climate/repository"
	"climate-server/internal/modules/climate/service"
)

func RegisterFeature(r chi.Router, conn *sql.DB, dialect db.Dialect, cfg config.Config) {
	climateRepository := repository.NewRepository(conn, dialect)
	climateService := service.NewService(climateRepository)
	climateController := controller.NewClimateController(climateService, cfg.ErrorFormat)
	climateController.RegisterRoutes(r)
}
