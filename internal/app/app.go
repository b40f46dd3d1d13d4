package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/specialistvlad/routecycle/internal/config"
	"github.com/specialistvlad/routecycle/internal/ctxlog"
	"github.com/specialistvlad/routecycle/internal/hop"
	"github.com/specialistvlad/routecycle/internal/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	stdin   io.Reader
	logger  *slog.Logger
	config  *Config
	model   *config.Model
	metrics *metrics.Metrics
	runID   string

	httpServer *http.Server
}

// Option customizes an App.
type Option func(*App)

// WithStdin sets the reader used for the "-" input.
func WithStdin(r io.Reader) Option {
	return func(a *App) { a.stdin = r }
}

// NewApp is the constructor for the main application. outW receives the
// result line, logW the structured log. The layout model is resolved here:
// the preset named in appConfig, then the layout file, then explicit flags.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) (*App, error) {
	runID := uuid.NewString()
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW).With("run_id", runID)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := resolveModel(ctx, appConfig, loader)
	if err != nil {
		return nil, err
	}
	logger.Debug("Run configuration resolved.",
		"layout", model.Layout.String(),
		"skip_header", model.Layout.SkipHeader,
		"prune", model.Search.Prune,
		"grouped", model.Search.Grouped,
	)

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		model:   model,
		metrics: metrics.New(),
		runID:   runID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func resolveModel(ctx context.Context, appConfig *Config, loader config.Loader) (*config.Model, error) {
	model := config.Default()
	layout, err := hop.LayoutByName(appConfig.Layout)
	if err != nil {
		return nil, err
	}
	model.Layout = layout

	if appConfig.LayoutFile != "" {
		if loader == nil {
			return nil, fmt.Errorf("layout file %s given but no loader configured", appConfig.LayoutFile)
		}
		model, err = loader.Load(ctx, appConfig.LayoutFile, model)
		if err != nil {
			return nil, fmt.Errorf("failed to load layout file: %w", err)
		}
	}

	if appConfig.Delimiter != "" {
		model.Layout.Delimiter = appConfig.Delimiter
	}
	if appConfig.SkipHeader {
		model.Layout.SkipHeader = true
	}
	if appConfig.Grouped {
		model.Search.Grouped = true
	}
	if appConfig.NoPrune {
		model.Search.Prune = false
	}

	if err := model.Layout.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}

// Model returns the resolved run configuration. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Metrics returns the run's collectors. This is primarily for testing.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}
