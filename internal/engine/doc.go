// Package engine executes a build plan's tasks concurrently inside one
// process, giving each invocation its own isolated environment.
//
// # Dispatch Model
//
// Before a task runs, the engine detects its declared capability:
//
//   - Interface: the task exposes an environment slot. The engine
//     constructs a fresh taskenv.Environment seeded with the task's
//     resolved directory and a private variable snapshot, injects it, and
//     runs the task on a worker goroutine alongside others.
//   - Marker: the task was registered as concurrent-safe without exposing
//     a slot. It runs on a worker goroutine with nothing injected; the
//     declaration is trust-based and verified only by external tooling.
//   - None: the task made no declaration and is handed to the
//     ProcessLauncher, which isolates it the legacy way instead of relying
//     on in-process discipline.
//
// # Invocation Lifecycle
//
// Each task occurrence in the plan becomes exactly one Invocation per run:
// NotStarted, EnvironmentAssigned (skipped when nothing is injected),
// Executing, then Completed or Faulted. An environment instance serves
// exactly one invocation and is never reused; running the engine again
// builds everything fresh.
//
// Workers drain a ready channel gated by atomic dependency counters. A
// faulted invocation cancels the run and its dependents are skipped.
package engine
