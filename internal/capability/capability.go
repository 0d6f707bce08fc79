// Package capability defines how a task declares that it is safe to run
// concurrently inside the engine process, and how the engine detects that
// declaration before dispatching the task.
package capability

import (
	"github.com/vk/buildrig/internal/taskenv"
)

// EnvironmentAware is the interface a task implements to opt into
// concurrent in-process execution. The engine injects a fresh Environment
// through SetTaskEnvironment before the task's entry point runs; the task
// commits to routing every working-directory-relative and
// environment-variable operation through that instance instead of ambient
// process state.
type EnvironmentAware interface {
	SetTaskEnvironment(env *taskenv.Environment)
}

// Capability is the task-capability sum type the engine dispatches on. The
// three variants are an exhaustive match, not ad hoc type probing.
type Capability int

const (
	// None means the task made no declaration. It runs under the legacy
	// model: one task, one isolated worker process, free use of
	// process-global state.
	None Capability = iota
	// Interface means the task implements EnvironmentAware and receives
	// an injected Environment before execution.
	Interface
	// Marker means the task was registered with a marker declaring it
	// never touches process-global state at all. Nothing is injected and
	// nothing is verified at runtime; the declaration is trust-based and
	// checked only by external static analysis.
	Marker
)

// String returns a human-readable name for the capability.
func (c Capability) String() string {
	switch c {
	case None:
		return "none"
	case Interface:
		return "interface"
	case Marker:
		return "marker"
	default:
		return "unknown"
	}
}

// InProcess reports whether the capability permits concurrent execution
// inside the engine process.
func (c Capability) InProcess() bool {
	return c == Interface || c == Marker
}

// Detect probes task for its declared capability. The interface
// declaration wins over a registration-time marker: a task exposing an
// environment slot expects injection, regardless of how it was registered.
func Detect(task any, marked bool) Capability {
	if _, ok := task.(EnvironmentAware); ok {
		return Interface
	}
	if marked {
		return Marker
	}
	return None
}
