package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/financial-data-api/docs"
	"github.com/rogerio-castellano/financial-data-api/internal/http/handlers"
	"github.com/rogerio-castellano/financial-data-api/internal/observability"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Server  *handlers.Server
	Logger  logrus.FieldLogger
	Metrics *observability.Metrics
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(p.Logger))
	r.Use(middleware.Recoverer)
	r.Use(p.Metrics.Middleware)
	r.Use(CORS())

	r.Get("/healthz", p.Server.HealthHandler)
	r.Get("/data", p.Server.GetDataHandler)
	r.Get("/data/export", p.Server.ExportDataHandler)

	r.Handle("/metrics", p.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	return r
}
