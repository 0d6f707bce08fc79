// Package policy enumerates the process-global operations a
// concurrency-capable task must not perform, and the Environment surface
// that replaces each of them.
//
// The catalog is rationale, not enforcement. Nothing here intercepts calls
// at runtime; a task bypassing its Environment fails silently by resolving
// against some other invocation's state, which is exactly why an external
// static-analysis layer consumes this table to flag violations before they
// reach runtime. The runtime core is required to stay consistent with the
// catalog: every replacement named here must exist on taskenv.Environment
// (a test holds this).
package policy

import "sort"

// Category groups rules by the kind of process-global state involved.
type Category string

const (
	// WorkingDirectory covers the process-wide current directory and
	// anything that resolves relative paths against it.
	WorkingDirectory Category = "working-directory"
	// EnvironmentBlock covers the process-wide environment variables.
	EnvironmentBlock Category = "environment-block"
	// ProcessLaunch covers spawning children that inherit process-global
	// state by default.
	ProcessLaunch Category = "process-launch"
)

// Rule describes one unsafe operation and its task-scoped replacement.
type Rule struct {
	// ID is the stable diagnostic identifier tooling reports.
	ID string
	// Call is the fully qualified operation, e.g. "os.Chdir".
	Call string
	// Category is the state the call touches.
	Category Category
	// Replacement is the Environment member to use instead, in
	// "Environment.Method" form, or empty when no replacement exists and
	// the operation is simply forbidden.
	Replacement string
	// Note explains the hazard in one line.
	Note string
}

var rules = []Rule{
	{
		ID:          "BR0001",
		Call:        "os.Getwd",
		Category:    WorkingDirectory,
		Replacement: "Environment.Dir",
		Note:        "the process directory belongs to no single invocation",
	},
	{
		ID:       "BR0002",
		Call:     "os.Chdir",
		Category: WorkingDirectory,
		Note:     "changes every concurrent invocation's view at once; no replacement exists",
	},
	{
		ID:          "BR0003",
		Call:        "relative path passed to a file API",
		Category:    WorkingDirectory,
		Replacement: "Environment.GetAbsolutePath",
		Note:        "resolves against whichever directory the process happens to have",
	},
	{
		ID:          "BR0004",
		Call:        "os.Getenv",
		Category:    EnvironmentBlock,
		Replacement: "Environment.Var",
		Note:        "reads live process state another invocation may be mutating",
	},
	{
		ID:          "BR0005",
		Call:        "os.LookupEnv",
		Category:    EnvironmentBlock,
		Replacement: "Environment.LookupVar",
		Note:        "reads live process state another invocation may be mutating",
	},
	{
		ID:          "BR0006",
		Call:        "os.Environ",
		Category:    EnvironmentBlock,
		Replacement: "Environment.Vars",
		Note:        "reads live process state another invocation may be mutating",
	},
	{
		ID:          "BR0007",
		Call:        "os.Setenv",
		Category:    EnvironmentBlock,
		Replacement: "Environment.SetVar",
		Note:        "visible to every concurrent invocation and to child processes",
	},
	{
		ID:          "BR0008",
		Call:        "os.Unsetenv",
		Category:    EnvironmentBlock,
		Replacement: "Environment.UnsetVar",
		Note:        "visible to every concurrent invocation and to child processes",
	},
	{
		ID:          "BR0009",
		Call:        "exec.Command",
		Category:    ProcessLaunch,
		Replacement: "Environment.Command",
		Note:        "a child with nil Dir/Env inherits the real process directory and block",
	},
	{
		ID:          "BR0010",
		Call:        "exec.Cmd with nil Env or empty Dir",
		Category:    ProcessLaunch,
		Replacement: "Environment.ProcessStartInfo",
		Note:        "launch configuration must carry the invocation's resolved state",
	},
}

// Rules returns the catalog ordered by ID. The slice is a copy.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the rule for the given call, if one exists.
func Lookup(call string) (Rule, bool) {
	for _, r := range rules {
		if r.Call == call {
			return r, true
		}
	}
	return Rule{}, false
}
