package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/buildrig/internal/config"
	"github.com/vk/buildrig/internal/ctxlog"
	"github.com/vk/buildrig/internal/engine"
	"github.com/vk/buildrig/internal/hclplan"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *engine.Registry
	plan     *config.Plan
}

// NewApp constructs the application: it builds an isolated logger and
// registry, registers modules (the compiled-in core set when none are
// given), and loads the plan through the given loader.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...engine.Module) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = hclplan.NewLoader()
	}
	plan, err := loader.Load(ctx, appConfig.PlanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	logger.Debug("Plan loaded into unified model.", "tasks", len(plan.Tasks))

	reg := engine.NewRegistry()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All runner modules registered.", "count", len(modules), "runners", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		plan:     plan,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *engine.Registry {
	return a.registry
}

// Plan returns the loaded plan. This is primarily for testing.
func (a *App) Plan() *config.Plan {
	return a.plan
}
