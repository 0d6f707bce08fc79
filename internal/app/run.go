package app

import (
	"context"
	"fmt"

	"github.com/subosito/gotenv"

	"github.com/vk/buildrig/internal/abspath"
	"github.com/vk/buildrig/internal/ctxlog"
	"github.com/vk/buildrig/internal/engine"
	"github.com/vk/buildrig/internal/taskenv"
)

// Run executes the loaded plan.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	projectDir, err := abspath.New(a.config.ProjectDir, abspath.Native())
	if err != nil {
		return fmt.Errorf("invalid project directory: %w", err)
	}

	baseEnv, err := a.seedBaseEnv()
	if err != nil {
		return err
	}

	eng, err := engine.New(a.plan, a.registry, engine.Options{
		Workers:    a.config.Workers,
		ProjectDir: projectDir.Canonical(),
		BaseEnv:    baseEnv,
	})
	if err != nil {
		return err
	}

	a.logger.Info("Starting concurrent execution.", "tasks", len(a.plan.Tasks), "workers", a.config.Workers)
	if err := eng.Run(ctx); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("Execution finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// seedBaseEnv captures the base variable snapshot every invocation's
// environment starts from: the real process environment, overlaid with the
// optional dotenv file. This is the single point where process-global
// state is read, before any invocation begins.
func (a *App) seedBaseEnv() (map[string]string, error) {
	baseEnv := taskenv.Snapshot()
	if a.config.EnvFile == "" {
		return baseEnv, nil
	}

	fileVars, err := gotenv.Read(a.config.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", a.config.EnvFile, err)
	}
	for k, v := range fileVars {
		baseEnv[k] = v
	}
	a.logger.Debug("Env file layered over process snapshot.", "file", a.config.EnvFile, "vars", len(fileVars))
	return baseEnv, nil
}
