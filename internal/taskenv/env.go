package taskenv

import (
	"fmt"
	"os"
	"strings"

	"github.com/vk/buildrig/internal/abspath"
)

// Environment is one task invocation's logical view of the process: its
// working directory, its environment variables, and the configuration any
// subprocess it spawns should inherit. Construct a fresh instance per
// invocation and discard it when the invocation ends; instances are never
// pooled or reused, and a retried task gets a new one.
type Environment struct {
	dir  abspath.AbsolutePath
	base map[string]string
	// overrides layers task-scoped writes over the base snapshot without
	// ever touching the real process block.
	overrides map[string]override
}

type override struct {
	value string
	unset bool
}

// New constructs an Environment rooted at dir with vars as its variable
// snapshot. The map is copied, so later mutation by the caller is not
// observed. dir must be a non-zero AbsolutePath.
func New(dir abspath.AbsolutePath, vars map[string]string) (*Environment, error) {
	if dir.IsZero() {
		return nil, fmt.Errorf("taskenv: working directory: %w", abspath.ErrEmpty)
	}
	base := make(map[string]string, len(vars))
	for k, v := range vars {
		base[k] = v
	}
	return &Environment{dir: dir, base: base, overrides: make(map[string]override)}, nil
}

// Dir returns the task's logical working directory. This is what the task
// "believes" its current directory is, independent of the real OS-level
// process working directory.
func (e *Environment) Dir() abspath.AbsolutePath {
	return e.dir
}

// GetAbsolutePath resolves p for use with ordinary file APIs. An empty p
// yields the zero AbsolutePath ("no path" — some callers pass optional
// paths); a fully qualified p is wrapped as-is; a relative p resolves
// against the logical working directory. No real process state is
// consulted.
func (e *Environment) GetAbsolutePath(p string) abspath.AbsolutePath {
	if p == "" {
		return abspath.AbsolutePath{}
	}
	abs, err := abspath.Join(p, e.dir)
	if err != nil {
		// Unreachable: p is non-empty and e.dir was validated at New.
		panic(err)
	}
	return abs
}

// LookupVar returns the value of the named variable in this invocation's
// effective view and whether it is present. The view is the construction
// snapshot overlaid with this instance's own writes; live process state is
// never queried.
func (e *Environment) LookupVar(name string) (string, bool) {
	if o, ok := e.overrides[name]; ok {
		if o.unset {
			return "", false
		}
		return o.value, true
	}
	v, ok := e.base[name]
	return v, ok
}

// Var returns the named variable's value, or "" when unset.
func (e *Environment) Var(name string) string {
	v, _ := e.LookupVar(name)
	return v
}

// Vars returns a copy of the effective variable view.
func (e *Environment) Vars() map[string]string {
	all := make(map[string]string, len(e.base))
	for k, v := range e.base {
		all[k] = v
	}
	for k, o := range e.overrides {
		if o.unset {
			delete(all, k)
		} else {
			all[k] = o.value
		}
	}
	return all
}

// SetVar records a task-scoped write. The real process environment and
// every other invocation's Environment are unaffected.
func (e *Environment) SetVar(name, value string) {
	e.overrides[name] = override{value: value}
}

// UnsetVar removes the variable from this invocation's effective view.
func (e *Environment) UnsetVar(name string) {
	e.overrides[name] = override{unset: true}
}

// Snapshot captures the real process environment as a map. The engine calls
// this once, before invocations begin, to seed base snapshots; task code
// should never need it.
func Snapshot() map[string]string {
	environ := os.Environ()
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}
