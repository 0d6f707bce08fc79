package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// Task is one independently schedulable unit of build work.
type Task interface {
	Run(ctx context.Context) error
}

// Configurable is implemented by tasks that accept plan-supplied arguments
// before execution.
type Configurable interface {
	Configure(args []string) error
}

// Module is the interface packages implement to register their tasks.
type Module interface {
	Register(r *Registry)
}

// RegisteredTask holds the compiled Go parts of one runner.
type RegisteredTask struct {
	// New constructs a fresh task value. Called once per invocation, so
	// no state leaks between plan entries sharing a runner.
	New func() Task
	// Marker declares the runner concurrent-safe without an environment
	// slot. Ignored for tasks implementing capability.EnvironmentAware.
	Marker bool
}

// Registry maps runner names to their Go implementations for a single
// application instance.
type Registry struct {
	runners map[string]*RegisteredTask
}

// NewRegistry creates and initializes a new Registry instance.
func NewRegistry() *Registry {
	return &Registry{runners: make(map[string]*RegisteredTask)}
}

// Register registers a runner implementation. Duplicate names and nil
// factories are programmer errors and panic.
func (r *Registry) Register(name string, task *RegisteredTask) {
	if task == nil || task.New == nil {
		panic(fmt.Sprintf("runner %q registered without a factory", name))
	}
	if _, exists := r.runners[name]; exists {
		panic(fmt.Sprintf("runner with name %q already registered", name))
	}
	slog.Debug("Registering runner.", "name", name, "marker", task.Marker)
	r.runners[name] = task
}

// Lookup returns the registration for a runner name.
func (r *Registry) Lookup(name string) (*RegisteredTask, bool) {
	t, ok := r.runners[name]
	return t, ok
}

// Names returns all registered runner names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
