package app

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hannawannana/simulated-bond-index-construction/internal/bond"
	"github.com/hannawannana/simulated-bond-index-construction/internal/config"
	"github.com/hannawannana/simulated-bond-index-construction/internal/fetcher"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

func (a *App) newFetcher() fetcher.SeriesFetcher {
	return fetcher.NewFRED(fetcher.FREDOptions{
		BaseURL:   a.Config.FRED.BaseURL,
		APIKey:    a.Config.FRED.APIKey,
		Timeout:   a.Config.FRED.RequestTimeout,
		UserAgent: a.Config.FRED.UserAgent,
	}, a.Logger)
}

func weightsVector(w config.WeightsConfig) bond.Vector {
	return bond.Vector{
		OneYear:  decimal.NewFromFloat(w.OneYear),
		FiveYear: decimal.NewFromFloat(w.FiveYear),
		TenYear:  decimal.NewFromFloat(w.TenYear),
	}
}

// RunOptions override configured output destinations for one invocation.
type RunOptions struct {
	CSVPath string
	PNGPath string
}

// SimulateOptions configure the offline simulation command.
type SimulateOptions struct {
	PricesCSVPath string
}
