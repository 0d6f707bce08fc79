// Package execcmd provides the 'exec' runner: it spawns a subprocess whose
// working directory and environment block come entirely from the
// invocation's environment, so a child launched by one concurrent task
// never inherits another task's state.
package execcmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/buildrig/internal/ctxlog"
	"github.com/vk/buildrig/internal/engine"
	"github.com/vk/buildrig/internal/taskenv"
)

// Module implements the engine.Module interface for this package.
type Module struct{}

// Task runs one command. Args come from the plan: args[0] is the program,
// the rest its arguments.
type Task struct {
	env  *taskenv.Environment
	argv []string
}

// SetTaskEnvironment implements capability.EnvironmentAware.
func (t *Task) SetTaskEnvironment(env *taskenv.Environment) {
	t.env = env
}

// Configure implements engine.Configurable.
func (t *Task) Configure(args []string) error {
	if len(args) == 0 {
		return errors.New("execcmd: args must name a program to run")
	}
	t.argv = args
	return nil
}

// Run launches the configured command and waits for it.
func (t *Task) Run(ctx context.Context) error {
	if len(t.argv) == 0 {
		return errors.New("execcmd: no command configured")
	}
	logger := ctxlog.FromContext(ctx)

	cmd := t.env.Command(ctx, t.argv[0], t.argv[1:]...)
	logger.Debug("Spawning subprocess.", "program", t.argv[0], "dir", cmd.Dir)

	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		logger.Info("Subprocess output.", "program", t.argv[0], "output", string(out))
	}
	if err != nil {
		return fmt.Errorf("execcmd: %s: %w", t.argv[0], err)
	}
	return nil
}

// Register registers the runner with the engine.
func (m *Module) Register(r *engine.Registry) {
	r.Register("exec", &engine.RegisteredTask{
		New: func() engine.Task { return &Task{} },
	})
}
