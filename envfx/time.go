package envfx

import (
	"context"
	"time"

	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/envfx_go/result"
	"github.com/on-the-ground/envfx_go/taskresult"
)

type TimeSpan = timespan.TimeSpan

// Timed pairs a success value with the span its evaluation covered.
type Timed[A any] struct {
	Value A
	Span  TimeSpan
}

// WithTimespan wraps an Effect so each successful run also reports the
// time span covering that execution. Failures pass through unchanged.
func WithTimespan[R, E, A any](fa Effect[R, E, A]) Effect[R, E, Timed[A]] {
	return func(r R) taskresult.TaskResult[E, Timed[A]] {
		fra := fa(r)
		return func(ctx context.Context) result.Result[E, Timed[A]] {
			from := time.Now()
			ra := fra(ctx)
			span := timespan.BetweenTimes(from, time.Now())
			return result.Map(ra, func(a A) Timed[A] {
				return Timed[A]{Value: a, Span: span}
			})
		}
	}
}
