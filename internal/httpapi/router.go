package httpapi

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter returns a chi router with the shared middleware stack and
// /healthz mounted. Feature modules register their own routes on it.
func NewRouter(db *sql.DB) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	registerHealthcheck(r, db)
	return r
}
