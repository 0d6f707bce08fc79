package engine

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/vk/buildrig/internal/capability"
	"github.com/vk/buildrig/internal/config"
	"github.com/vk/buildrig/internal/taskenv"
)

// State is the execution state of one invocation.
type State int32

const (
	// NotStarted is the initial state of every invocation.
	NotStarted State = iota
	// EnvironmentAssigned means a fresh environment has been injected
	// into the task. Skipped for invocations that receive no injection.
	EnvironmentAssigned
	// Executing means the task's entry point is running. This is the only
	// state in which task code runs.
	Executing
	// Completed means the task returned successfully.
	Completed
	// Faulted means the task returned an error, or was skipped because a
	// dependency faulted or the run was canceled.
	Faulted
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case EnvironmentAssigned:
		return "environment-assigned"
	case Executing:
		return "executing"
	case Completed:
		return "completed"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Invocation is one execution of one plan task. It owns the task value,
// the capability decision, and — for interface-capable tasks — the single
// environment instance serving this invocation and no other.
type Invocation struct {
	id   uuid.UUID
	cfg  *config.Task
	task Task
	cap  capability.Capability
	// env is non-nil only for interface-capable invocations. It is
	// constructed fresh for this invocation and discarded with it.
	env *taskenv.Environment

	// Error stores the failure that faulted this invocation, if any.
	err error

	// state is managed atomically; workers and skip cascades touch it
	// from different goroutines.
	state atomic.Int32
	// depCount counts unmet dependencies; an invocation is ready at zero.
	depCount   atomic.Int32
	dependents []*Invocation
	// doneOnce ensures an invocation releases its wait-group slot exactly
	// once, whether it finishes in a worker or is skipped by a fault
	// cascade, possibly through several faulted parents.
	doneOnce sync.Once
}

// ID returns the unique identifier of this invocation.
func (inv *Invocation) ID() string {
	return inv.id.String()
}

// Name returns the plan task name this invocation executes.
func (inv *Invocation) Name() string {
	return inv.cfg.Name
}

// Capability returns the capability the engine detected for the task.
func (inv *Invocation) Capability() capability.Capability {
	return inv.cap
}

// Environment returns the environment injected into the task, or nil when
// the invocation received no injection.
func (inv *Invocation) Environment() *taskenv.Environment {
	return inv.env
}

// State returns the invocation's current state.
func (inv *Invocation) State() State {
	return State(inv.state.Load())
}

// Err returns the failure that faulted this invocation, or nil.
func (inv *Invocation) Err() error {
	return inv.err
}

func (inv *Invocation) setState(s State) {
	inv.state.Store(int32(s))
}

// decrementDepCount atomically decrements the dependency counter and
// returns the new value.
func (inv *Invocation) decrementDepCount() int32 {
	return inv.depCount.Add(-1)
}

// tryStartExecuting transitions the invocation into Executing unless a
// fault cascade already finished it. A false return means the worker must
// not run the task.
func (inv *Invocation) tryStartExecuting() bool {
	for {
		s := inv.state.Load()
		if State(s) == Faulted {
			return false
		}
		if inv.state.CompareAndSwap(s, int32(Executing)) {
			return true
		}
	}
}

// finish records the invocation's terminal state and releases its slot in
// the run's wait group. Only the first caller wins; a cascade skipping an
// invocation a worker is about to complete leaves it faulted.
func (inv *Invocation) finish(state State, cause error, wg *sync.WaitGroup) {
	inv.doneOnce.Do(func() {
		inv.err = cause
		inv.setState(state)
		wg.Done()
	})
}

// skip marks the invocation faulted without running it.
func (inv *Invocation) skip(cause error, wg *sync.WaitGroup) {
	inv.finish(Faulted, cause, wg)
}
