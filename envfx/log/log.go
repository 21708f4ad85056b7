// Package log provides zap-based execution tracing for effects.
//
// Traced wraps an Effect so every run emits a start and a settle entry,
// tagged with a fresh run id. Tracing is itself part of the wrapped
// value: nothing is logged until the Effect actually runs.
package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/envfx_go/envfx"
	"github.com/on-the-ground/envfx_go/result"
	"github.com/on-the-ground/envfx_go/taskresult"
)

// Traced wraps an Effect with start/settle logging. Each execution gets
// its own run id, so overlapping runs of the same Effect stay
// distinguishable in the log stream. Settle level reflects the outcome:
// debug on success, warn on failure.
func Traced[R, E, A any](logger *zap.Logger, name string, fa envfx.Effect[R, E, A]) envfx.Effect[R, E, A] {
	return func(r R) taskresult.TaskResult[E, A] {
		fra := fa(r)
		return func(ctx context.Context) result.Result[E, A] {
			runID := uuid.NewString()
			logger.Debug("effect run started",
				zap.String("effect", name),
				zap.String("runId", runID),
			)
			start := time.Now()
			ra := fra(ctx)
			elapsed := time.Since(start)

			if e, failed := ra.Fail(); failed {
				logger.Warn("effect run settled to failure",
					zap.String("effect", name),
					zap.String("runId", runID),
					zap.Duration("elapsed", elapsed),
					zap.Any("failure", e),
				)
			} else {
				logger.Debug("effect run settled to success",
					zap.String("effect", name),
					zap.String("runId", runID),
					zap.Duration("elapsed", elapsed),
				)
			}
			return ra
		}
	}
}
