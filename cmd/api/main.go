package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/employee-backend/internal/api"
	"github.com/baharkarakas/employee-backend/internal/api/validate"
	"github.com/baharkarakas/employee-backend/internal/config"
	"github.com/baharkarakas/employee-backend/internal/db"
	"github.com/baharkarakas/employee-backend/internal/logger"
	"github.com/baharkarakas/employee-backend/internal/metrics"
	"github.com/baharkarakas/employee-backend/internal/repository/postgres"
	"github.com/baharkarakas/employee-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Migrate {
		if err := db.EnsureSchema(ctx, pool); err != nil {
			log.Error("schema", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool, cfg.StoreTimeout)
	employeeSvc := services.NewEmployeeService(repos.Employees, validate.New(time.Now))

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{Cfg: cfg, Employees: employeeSvc})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}
