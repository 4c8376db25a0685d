package app

import (
	"log/slog"

	"sdgtrack.eurodata.org/internal/dataset"
	"sdgtrack.eurodata.org/internal/forecast"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: the process configuration, the logger, the loaded dataset, the
// forecast engine, and the results of the production run served to the
// presentation layer.
type Application struct {
	Config   Config
	Logger   *slog.Logger
	Data     *dataset.Manager
	Engine   *forecast.Engine
	Results  *forecast.Result
	Backtest []forecast.BacktestRow
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), the accepted API
// keys, and the input file locations. These are read from command-line flags
// when the Application starts.
type Config struct {
	Port           int
	Env            string
	ApiKeys        []string
	DataPath       string
	IndicatorsPath string
}
