package engine

import (
	"context"
	"sync"
)

// ProcessLauncher executes tasks that made no concurrency declaration.
// Such tasks assume exclusive ownership of process-global state, so they
// must not overlap with each other; OS-level worker processes are the real
// isolation boundary, and providing them is the engine host's concern.
type ProcessLauncher interface {
	Launch(ctx context.Context, inv *Invocation) error
}

// SerialLauncher is the default in-process stand-in for worker-process
// isolation: legacy tasks run one at a time under a mutex, so none of them
// observes another mid-flight. Declared-capable tasks never pass through
// here and keep running concurrently around them.
type SerialLauncher struct {
	mu sync.Mutex
}

// Launch implements ProcessLauncher.
func (l *SerialLauncher) Launch(ctx context.Context, inv *Invocation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return inv.task.Run(ctx)
}
