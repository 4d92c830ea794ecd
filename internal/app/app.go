package app

import (
	"time"

	"github.com/rs/zerolog"

	"cdf-compare/internal/config"
	"cdf-compare/internal/fetcher"
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

func (a *App) newFetcher() fetcher.DataFetcher {
	return fetcher.NewOMNI(fetcher.Options{
		BaseURL:    a.Config.Fetch.BaseURL,
		ScratchDir: a.Config.Fetch.ScratchDir,
		Timeout:    a.Config.Fetch.RequestTimeout,
		UserAgent:  a.Config.Fetch.UserAgent,
	}, a.Logger)
}

// FetchOptions configure the fetch command.
type FetchOptions struct {
	Date  time.Time
	Force bool
}

// CompareOptions hold parameters for the comparison pipeline.
type CompareOptions struct {
	Date     time.Time
	FilePath string
	Variable string
	From     *time.Time
	To       *time.Time
	PNGPath  string
	CSVPath  string
	Force    bool
}

// ShowOptions configure the show command.
type ShowOptions struct {
	FilePath string
	Variable string
	Backend  string
	Limit    int
}
