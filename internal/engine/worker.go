package engine

import (
	"context"
	"fmt"

	"github.com/vk/buildrig/internal/capability"
	"github.com/vk/buildrig/internal/ctxlog"
)

// worker is the core processing loop for a single concurrent worker.
func (e *Engine) worker(ctx context.Context, ready chan *Invocation, cancel context.CancelFunc, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for inv := range ready {
		invLogger := logger.With("workerID", workerID, "invocationID", inv.ID(), "task", inv.Name())

		if ctx.Err() != nil {
			inv.skip(fmt.Errorf("skipped: %w", ctx.Err()), &e.wg)
			e.skipDependents(inv)
			continue
		}

		if !inv.tryStartExecuting() {
			// A fault cascade finished this invocation while it sat in
			// the ready queue.
			continue
		}
		invLogger.Debug("Worker picked up invocation.", "capability", inv.Capability().String())

		invCtx := ctxlog.WithLogger(ctx, invLogger)
		err := e.runInvocation(invCtx, inv)

		if err != nil {
			invLogger.Error("Invocation faulted.", "error", err)
			inv.finish(Faulted, err, &e.wg)
			cancel()
			e.skipDependents(inv)
			continue
		}

		invLogger.Debug("Invocation completed.")

		// Unlock dependents before releasing this invocation's wait-group
		// slot: the run only closes the ready channel once every slot is
		// released, so enqueueing must happen while ours is still held.
		for _, dependent := range inv.dependents {
			if dependent.decrementDepCount() == 0 {
				invLogger.Debug("Unlocking dependent invocation.", "dependent", dependent.Name())
				ready <- dependent
			}
		}
		inv.finish(Completed, nil, &e.wg)
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}

// runInvocation dispatches on the capability decision: in-process execution
// for declared-capable tasks, the launcher for everything else.
func (e *Engine) runInvocation(ctx context.Context, inv *Invocation) error {
	if inv.Capability() == capability.None {
		return e.opts.Launcher.Launch(ctx, inv)
	}
	return inv.task.Run(ctx)
}

// skipDependents faults the whole downstream cone of a failed invocation.
// A dependent reached through several faulted parents is accounted once.
func (e *Engine) skipDependents(inv *Invocation) {
	for _, dependent := range inv.dependents {
		dependent.skip(fmt.Errorf("skipped: dependency %q faulted", inv.Name()), &e.wg)
		e.skipDependents(dependent)
	}
}
