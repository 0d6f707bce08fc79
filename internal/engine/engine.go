package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vk/buildrig/internal/abspath"
	"github.com/vk/buildrig/internal/capability"
	"github.com/vk/buildrig/internal/config"
	"github.com/vk/buildrig/internal/ctxlog"
	"github.com/vk/buildrig/internal/taskenv"
)

var (
	// ErrUnknownRunner is returned when a plan task names a runner absent
	// from the registry.
	ErrUnknownRunner = errors.New("unknown runner")
	// ErrNoProjectDir is returned when Options lacks a project directory.
	ErrNoProjectDir = errors.New("project directory is required")
)

// Options configures one Engine.
type Options struct {
	// Workers is the number of concurrent worker goroutines.
	Workers int
	// ProjectDir is the directory task-relative paths resolve against.
	ProjectDir abspath.AbsolutePath
	// BaseEnv is the variable snapshot each invocation's environment is
	// seeded from. Captured once by the host, before invocations begin.
	BaseEnv map[string]string
	// Launcher executes tasks with no concurrency declaration. Defaults
	// to a SerialLauncher.
	Launcher ProcessLauncher
}

// Engine executes one plan. Construct with New, run once with Run.
type Engine struct {
	plan *config.Plan
	reg  *Registry
	opts Options

	wg   sync.WaitGroup
	invs map[string]*Invocation
}

// New validates the plan against the registry and returns an engine ready
// to run it.
func New(plan *config.Plan, reg *Registry, opts Options) (*Engine, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if opts.ProjectDir.IsZero() {
		return nil, fmt.Errorf("engine: %w", ErrNoProjectDir)
	}
	for _, t := range plan.Tasks {
		if _, ok := reg.Lookup(t.Runner); !ok {
			return nil, fmt.Errorf("engine: task %q: %w %q", t.Name, ErrUnknownRunner, t.Runner)
		}
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Launcher == nil {
		opts.Launcher = &SerialLauncher{}
	}
	return &Engine{plan: plan, reg: reg, opts: opts}, nil
}

// Invocation returns the named invocation from the most recent Run, for
// inspection after the fact. Nil before Run.
func (e *Engine) Invocation(name string) *Invocation {
	return e.invs[name]
}

// Run builds a fresh invocation per plan task and executes them on the
// worker pool, honoring dependency order. It blocks until every invocation
// reaches a terminal state and returns the joined failures, if any.
func (e *Engine) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	invs, err := e.buildInvocations()
	if err != nil {
		return err
	}
	e.invs = invs
	if len(invs) == 0 {
		logger.Warn("Plan contains no tasks, nothing to execute.")
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered to total invocation count so unlocking dependents from a
	// worker never blocks.
	ready := make(chan *Invocation, len(invs))
	e.wg.Add(len(invs))
	for i := 0; i < e.opts.Workers; i++ {
		go e.worker(runCtx, ready, cancel, i+1)
	}

	// Seed everything with no unmet dependencies.
	for _, t := range e.plan.Tasks {
		inv := invs[t.Name]
		if inv.depCount.Load() == 0 {
			ready <- inv
		}
	}

	e.wg.Wait()
	close(ready)

	var errs []error
	for _, t := range e.plan.Tasks {
		if inv := invs[t.Name]; inv.Err() != nil {
			errs = append(errs, fmt.Errorf("task %q: %w", inv.Name(), inv.Err()))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("engine: execution failed: %w", errors.Join(errs...))
	}
	return nil
}

// buildInvocations constructs one fresh Invocation per plan task: a new
// task value from the runner factory, the capability decision, and — for
// interface-capable tasks — a newly constructed environment. No state is
// shared between invocations; construction for distinct invocations is
// safe to perform concurrently, though this engine does it up front.
func (e *Engine) buildInvocations() (map[string]*Invocation, error) {
	invs := make(map[string]*Invocation, len(e.plan.Tasks))

	for _, cfg := range e.plan.Tasks {
		reg, ok := e.reg.Lookup(cfg.Runner)
		if !ok {
			return nil, fmt.Errorf("engine: task %q: %w %q", cfg.Name, ErrUnknownRunner, cfg.Runner)
		}
		task := reg.New()

		if c, ok := task.(Configurable); ok && len(cfg.Args) > 0 {
			if err := c.Configure(cfg.Args); err != nil {
				return nil, fmt.Errorf("engine: task %q: configure: %w", cfg.Name, err)
			}
		}

		inv := &Invocation{
			id:   uuid.New(),
			cfg:  cfg,
			task: task,
			cap:  capability.Detect(task, reg.Marker),
		}

		if inv.cap == capability.Interface {
			env, err := e.buildEnvironment(cfg)
			if err != nil {
				return nil, fmt.Errorf("engine: task %q: %w", cfg.Name, err)
			}
			inv.env = env
			task.(capability.EnvironmentAware).SetTaskEnvironment(env)
			inv.setState(EnvironmentAssigned)
		}

		invs[cfg.Name] = inv
	}

	// Wire dependency counters and dependent lists.
	for _, cfg := range e.plan.Tasks {
		inv := invs[cfg.Name]
		inv.depCount.Store(int32(len(cfg.DependsOn)))
		for _, dep := range cfg.DependsOn {
			parent := invs[dep]
			parent.dependents = append(parent.dependents, inv)
		}
	}
	return invs, nil
}

// buildEnvironment resolves one task's logical directory and seeds its
// private variable snapshot: the engine-wide base overlaid with the task's
// plan-level overrides.
func (e *Engine) buildEnvironment(cfg *config.Task) (*taskenv.Environment, error) {
	dir := e.opts.ProjectDir
	if cfg.Dir != "" {
		resolved, err := abspath.Join(cfg.Dir, e.opts.ProjectDir)
		if err != nil {
			return nil, fmt.Errorf("resolving dir: %w", err)
		}
		dir = resolved.Canonical()
	}

	vars := make(map[string]string, len(e.opts.BaseEnv)+len(cfg.Env))
	for k, v := range e.opts.BaseEnv {
		vars[k] = v
	}
	for k, v := range cfg.Env {
		vars[k] = v
	}
	return taskenv.New(dir, vars)
}
