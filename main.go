package main

import (
	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/logging"
	"food-ordering-api/routes"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	gin.SetMode(cfg.Server.Mode)

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to open database")
	}
	if err := config.Migrate(db); err != nil {
		logging.Fatal().Err(err).Msg("failed to migrate database")
	}
	logging.Info().Str("driver", cfg.Database.Driver).Msg("database connected and migrated")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := handlers.New(store.NewGormExecutor(db))
	r := routes.NewEngine(h, routes.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		JWTSecret:   []byte(cfg.Auth.JWTSecret),
		Registry:    reg,
	})

	logging.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logging.Fatal().Err(err).Msg("failed to start server")
	}
}
