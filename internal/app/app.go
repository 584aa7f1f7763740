package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/hcl"
	"github.com/vk/restricteddsl/internal/plugin"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  *hcl.Loader
	project *plugin.Project
}

// New is the constructor for the main application. Task output goes to outW
// and log records to logW. Plugins default to the core modules. Every
// reachable schema is built here, so a schema-definition error is returned
// before any script runs.
func New(outW, logW io.Writer, cfg *Config, plugins ...plugin.Plugin) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(plugins) == 0 {
		plugins = coreModules(cfg)
	}

	project := plugin.NewProject()
	if err := project.Apply(ctx, plugins...); err != nil {
		return nil, fmt.Errorf("failed to configure project: %w", err)
	}
	logger.Debug("All plugins applied.", "count", len(plugins), "extensions", project.Extensions(), "tasks", project.Tasks())

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		loader:  hcl.NewLoader(),
		project: project,
	}, nil
}

// Project returns the application's project. This is primarily for testing.
func (a *App) Project() *plugin.Project {
	return a.project
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
