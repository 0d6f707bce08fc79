package taskenv

import (
	"context"
	"os/exec"
	"sort"
)

// ProcessStartInfo is the launch configuration for a subprocess spawned
// from within a task. It carries the invocation's logical directory and
// effective variable view, so a child process never inherits another
// invocation's working-directory or environment assumptions. Launching and
// waiting belong to the caller.
type ProcessStartInfo struct {
	// Dir is the child's working directory.
	Dir string
	// Env is the child's full environment block in "key=value" form,
	// sorted by key for deterministic launches.
	Env []string
}

// ProcessStartInfo builds launch configuration from this invocation's
// current state. The snapshot is taken at call time; later SetVar calls do
// not retroactively change configurations already produced.
func (e *Environment) ProcessStartInfo() *ProcessStartInfo {
	vars := e.Vars()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}
	return &ProcessStartInfo{Dir: e.dir.Value(), Env: env}
}

// Command returns an exec.Cmd pre-seeded from ProcessStartInfo. It is the
// drop-in replacement for exec.Command inside a concurrently executing
// task, which must not let a child default to the real process directory
// and environment block.
func (e *Environment) Command(ctx context.Context, name string, args ...string) *exec.Cmd {
	info := e.ProcessStartInfo()
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = info.Dir
	cmd.Env = info.Env
	return cmd
}
