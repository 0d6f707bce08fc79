// Package taskenv provides the per-invocation Environment a concurrently
// executing task uses instead of process-global state.
//
// Each concurrent task invocation owns exactly one Environment: its logical
// working directory, a private snapshot of environment variables, and a
// factory for subprocess launch configuration. Nothing an Environment does
// reads or writes the real process working directory or environment block,
// so two invocations can never observe each other through it.
//
// A single Environment is not internally synchronized. Isolation is
// guaranteed between distinct invocations, each holding its own instance;
// a task that spawns its own goroutines and shares its instance across
// them must synchronize that access itself.
package taskenv
