package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/employee-backend/internal/api/handlers"
	"github.com/baharkarakas/employee-backend/internal/config"
	"github.com/baharkarakas/employee-backend/internal/metrics"
	"github.com/baharkarakas/employee-backend/internal/middleware"
	"github.com/baharkarakas/employee-backend/internal/services"
)

type RouterDeps struct {
	Cfg       config.Config
	Employees *services.EmployeeService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.AccessLog, middleware.HTTPMetrics,
		middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	eh := handlers.NewEmployeeHandler(d.Employees)
	employees := func(r chi.Router) {
		r.Get("/", eh.List)
		r.Post("/", eh.Create)
		r.Get("/{empId}", eh.Get)
		r.Put("/{empId}", eh.Update)
		r.Delete("/{empId}", eh.Delete)
	}
	r.Route("/employees", employees)
	// prefix used by the existing frontend
	r.Route("/api/employees", employees)

	return r
}
