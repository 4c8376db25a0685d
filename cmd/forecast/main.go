package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"sdgtrack.eurodata.org/internal/dataset"
	"sdgtrack.eurodata.org/internal/export"
	"sdgtrack.eurodata.org/internal/forecast"
	"sdgtrack.eurodata.org/internal/logging"
)

func main() {
	var dataPath string
	var indicatorsPath string
	var outDir string

	flag.StringVar(&dataPath, "data", "data/indicators.csv", "Path to the cleaned indicator CSV")
	flag.StringVar(&indicatorsPath, "indicators", "", "Path to an indicator table YAML (empty uses the built-in table)")
	flag.StringVar(&outDir, "out", "out", "Directory for the generated artifacts")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if err := run(logger, dataPath, indicatorsPath, outDir); err != nil {
		logger.Error("forecast run failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dataPath, indicatorsPath, outDir string) error {
	data, err := dataset.LoadCSV(dataPath)
	if err != nil {
		return err
	}

	table := forecast.DefaultConfig()
	if indicatorsPath != "" {
		table, err = forecast.LoadConfig(indicatorsPath)
		if err != nil {
			return err
		}
	}

	engine, err := forecast.NewEngine(table, data, logger)
	if err != nil {
		return err
	}

	results := engine.Run()
	backtest := engine.Backtest()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	artifacts := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"forecasts.csv", func(w io.Writer) error { return export.WriteForecasts(w, results.Forecasts) }},
		{"statuses.csv", func(w io.Writer) error { return export.WriteStatuses(w, results.Outcomes) }},
		{"scores.csv", func(w io.Writer) error { return export.WriteSummaries(w, results.Summaries) }},
		{"backtest.csv", func(w io.Writer) error { return export.WriteBacktest(w, backtest) }},
	}
	for _, artifact := range artifacts {
		path := filepath.Join(outDir, artifact.name)
		if err := export.WriteFile(path, artifact.write); err != nil {
			return err
		}
		logger.Info("artifact written", "path", path)
	}

	workbookPath := filepath.Join(outDir, "report.xlsx")
	if err := export.WriteWorkbook(workbookPath, backtest, results.Outcomes, results.Summaries); err != nil {
		return err
	}
	logger.Info("artifact written", "path", workbookPath)

	return nil
}
