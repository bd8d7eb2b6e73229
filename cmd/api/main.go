package main

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/estatenexus/estate-backend/config"
	"github.com/estatenexus/estate-backend/internal/bootstrap"
	"github.com/estatenexus/estate-backend/internal/insights"
	"github.com/estatenexus/estate-backend/internal/storage/postgres"
)

const serviceName = "estate-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	ctx := context.Background()

	// Missing store credentials disable the data paths instead of
	// killing the process: reads serve empty state, writes report a
	// configuration error.
	var (
		pool       *pgxpool.Pool
		settingsDB *sql.DB
	)
	if cfg.StorageConfigured() {
		pool, err = bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to database")
		}
		defer pool.Close()

		settingsDB, err = postgres.NewConnection(&cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open settings connection")
		}
		defer settingsDB.Close()
	} else {
		logrus.Warn("store credentials missing, starting with storage disabled")
	}

	rdb := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}

	// An unconfigured insights API is not an error: every generate call
	// fails fast and the summaries resolve to their fallback text.
	insightsClient := insights.NewClient(cfg.Insights.BaseURL, cfg.Insights.APIKey, cfg.Insights.Model)
	if cfg.Insights.BaseURL == "" {
		logrus.Warn("insights API not configured, summaries will use fallback text")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
		DB:          pool,
		SettingsDB:  settingsDB,
		Redis:       rdb,
		Insights:    insightsClient,
	})

	logrus.WithField("port", cfg.Server.Port).Info("listening")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
