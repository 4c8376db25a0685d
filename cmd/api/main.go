package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"sdgtrack.eurodata.org/internal/app"
	"sdgtrack.eurodata.org/internal/dataset"
	"sdgtrack.eurodata.org/internal/forecast"
	"sdgtrack.eurodata.org/internal/logging"
	"sdgtrack.eurodata.org/internal/restapi"
)

func main() {
	var cfg app.Config
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.StringVar(&cfg.DataPath, "data", "data/indicators.csv", "Path to the cleaned indicator CSV")
	flag.StringVar(&cfg.IndicatorsPath, "indicators", "", "Path to an indicator table YAML (empty uses the built-in table)")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	data, err := dataset.LoadCSV(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	table := forecast.DefaultConfig()
	if cfg.IndicatorsPath != "" {
		table, err = forecast.LoadConfig(cfg.IndicatorsPath)
		if err != nil {
			logger.Error("failed to load indicator table", "path", cfg.IndicatorsPath, "error", err)
			os.Exit(1)
		}
	}

	engine, err := forecast.NewEngine(table, data, logger)
	if err != nil {
		logger.Error("failed to build forecast engine", "error", err)
		os.Exit(1)
	}

	application := &app.Application{
		Config:   cfg,
		Logger:   logger,
		Data:     data,
		Engine:   engine,
		Results:  engine.Run(),
		Backtest: engine.Backtest(),
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
