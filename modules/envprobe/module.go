// Package envprobe provides the 'env_probe' runner: a diagnostic task that
// reports its own isolated view of the world. Useful for verifying that a
// plan's dir/env wiring produces what the author expects.
package envprobe

import (
	"context"

	"github.com/vk/buildrig/internal/ctxlog"
	"github.com/vk/buildrig/internal/engine"
	"github.com/vk/buildrig/internal/taskenv"
)

// Module implements the engine.Module interface for this package.
type Module struct{}

// Task logs the invocation's logical directory and effective variables.
// It is environment-aware: everything it reports comes from the injected
// instance, never from process-global state.
type Task struct {
	env *taskenv.Environment
}

// SetTaskEnvironment implements capability.EnvironmentAware.
func (t *Task) SetTaskEnvironment(env *taskenv.Environment) {
	t.env = env
}

// Run logs the environment snapshot.
func (t *Task) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	vars := t.env.Vars()
	logger.Info("Environment probe.",
		"dir", t.env.Dir().Value(),
		"canonicalDir", t.env.Dir().Canonical().Value(),
		"varCount", len(vars),
	)
	for k, v := range vars {
		logger.Debug("Variable.", "name", k, "value", v)
	}
	return nil
}

// Register registers the runner with the engine.
func (m *Module) Register(r *engine.Registry) {
	r.Register("env_probe", &engine.RegisteredTask{
		New: func() engine.Task { return &Task{} },
	})
}
