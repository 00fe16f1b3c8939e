package main

import (
	"net/http"
	"os"
	"time"

	"pet-adoptions/internal/adapters/storage/postgres"
	"pet-adoptions/internal/platform/config"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/router"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{
		Logger:             log,
		AdoptionsPerMinute: cfg.AdoptionsPerMinute,
	}

	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("cannot open database", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		if err := postgres.Migrate(db); err != nil {
			log.Error("cannot run migrations", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
