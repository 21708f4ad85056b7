// Package taskresult provides the failable deferred base effect: a Task
// whose settled value is a result.Result.
//
// Invoking a TaskResult always settles to a Result; failure lives inside
// the settled value, never as a panic or an out-of-band signal at this
// layer. Sequencing combinators (Chain, ApSeq) short-circuit on Failure,
// the independent Ap runs both sides regardless of either's outcome.
package taskresult

import (
	"context"

	"github.com/on-the-ground/envfx_go/result"
	"github.com/on-the-ground/envfx_go/task"
	"github.com/on-the-ground/envfx_go/thunk"
)

// TaskResult is a not-yet-run asynchronous computation settling to a
// Result[E, A].
type TaskResult[E, A any] func(context.Context) result.Result[E, A]

// Of wraps a value into an always-succeeding TaskResult.
func Of[E, A any](a A) TaskResult[E, A] {
	return func(context.Context) result.Result[E, A] {
		return result.Success[E](a)
	}
}

// Left wraps a value into an always-failing TaskResult.
func Left[E, A any](e E) TaskResult[E, A] {
	return func(context.Context) result.Result[E, A] {
		return result.Failure[E, A](e)
	}
}

// FromResult defers an already-settled Result.
func FromResult[E, A any](ra result.Result[E, A]) TaskResult[E, A] {
	return func(context.Context) result.Result[E, A] { return ra }
}

// FromTask lifts a never-failing Task into success position.
func FromTask[E, A any](ta task.Task[A]) TaskResult[E, A] {
	return func(ctx context.Context) result.Result[E, A] {
		return result.Success[E](ta(ctx))
	}
}

// LeftFromTask lifts a never-failing Task into failure position.
func LeftFromTask[E, A any](te task.Task[E]) TaskResult[E, A] {
	return func(ctx context.Context) result.Result[E, A] {
		return result.Failure[E, A](te(ctx))
	}
}

// FromThunk lifts a synchronous computation into success position, deferred.
func FromThunk[E, A any](ta thunk.Thunk[A]) TaskResult[E, A] {
	return func(context.Context) result.Result[E, A] {
		return result.Success[E](ta())
	}
}

// LeftFromThunk lifts a synchronous computation into failure position, deferred.
func LeftFromThunk[E, A any](te thunk.Thunk[E]) TaskResult[E, A] {
	return func(context.Context) result.Result[E, A] {
		return result.Failure[E, A](te())
	}
}

// FromResultThunk defers a synchronous computation that already settles to
// a Result.
func FromResultThunk[E, A any](tra thunk.Thunk[result.Result[E, A]]) TaskResult[E, A] {
	return func(context.Context) result.Result[E, A] { return tra() }
}

// TryTask adapts Go's conventional (value, error) asynchronous shape.
func TryTask[A any](fn func(context.Context) (A, error)) TaskResult[error, A] {
	return func(ctx context.Context) result.Result[error, A] {
		return result.From(fn(ctx))
	}
}

// Map transforms the success branch of the eventual Result.
func Map[E, A, B any](fa TaskResult[E, A], f func(A) B) TaskResult[E, B] {
	return func(ctx context.Context) result.Result[E, B] {
		return result.Map(fa(ctx), f)
	}
}

// MapLeft transforms the failure branch of the eventual Result.
func MapLeft[E, F, A any](fa TaskResult[E, A], f func(E) F) TaskResult[F, A] {
	return func(ctx context.Context) result.Result[F, A] {
		return result.MapLeft(fa(ctx), f)
	}
}

// Bimap transforms whichever branch the eventual Result holds.
func Bimap[E, F, A, B any](fa TaskResult[E, A], onFailure func(E) F, onSuccess func(A) B) TaskResult[F, B] {
	return func(ctx context.Context) result.Result[F, B] {
		return result.Bimap(fa(ctx), onFailure, onSuccess)
	}
}

// Ap applies a wrapped function to a wrapped value, running both sides
// independently: the function side on its own goroutine, the value side on
// the caller's. Once both settle they combine by the Result rule, so a
// function-position failure wins over a value-position one.
func Ap[E, A, B any](fab TaskResult[E, func(A) B], fa TaskResult[E, A]) TaskResult[E, B] {
	return func(ctx context.Context) result.Result[E, B] {
		var rab result.Result[E, func(A) B]
		done := make(chan struct{})
		go func() {
			defer close(done)
			rab = fab(ctx)
		}()
		ra := fa(ctx)
		<-done
		return result.Ap(rab, ra)
	}
}

// ApSeq is the sequential applicative: the value side is not constructed
// until the function side has settled successfully.
func ApSeq[E, A, B any](fab TaskResult[E, func(A) B], fa TaskResult[E, A]) TaskResult[E, B] {
	return Chain(fab, func(f func(A) B) TaskResult[E, B] {
		return Map(fa, f)
	})
}

// Chain sequences a TaskResult-producing continuation. On Failure the
// continuation is never invoked and the failure propagates.
func Chain[E, A, B any](fa TaskResult[E, A], f func(A) TaskResult[E, B]) TaskResult[E, B] {
	return func(ctx context.Context) result.Result[E, B] {
		ra := fa(ctx)
		if e, failed := ra.Fail(); failed {
			return result.Failure[E, B](e)
		}
		a, _ := ra.Get()
		return f(a)(ctx)
	}
}

// Alt settles to fa when it succeeds; on Failure the lazily evaluated
// that() runs instead.
func Alt[E, A any](fa TaskResult[E, A], that func() TaskResult[E, A]) TaskResult[E, A] {
	return func(ctx context.Context) result.Result[E, A] {
		ra := fa(ctx)
		if ra.IsSuccess() {
			return ra
		}
		return that()(ctx)
	}
}

// Fold collapses both branches of the eventual Result into a single Task.
// Exactly one handler runs per settled Result.
func Fold[E, A, B any](fa TaskResult[E, A], onFailure func(E) task.Task[B], onSuccess func(A) task.Task[B]) task.Task[B] {
	return func(ctx context.Context) B {
		return result.Fold(fa(ctx), onFailure, onSuccess)(ctx)
	}
}

// GetOrElse recovers a same-typed value on Failure.
func GetOrElse[E, A any](fa TaskResult[E, A], onFailure func(E) task.Task[A]) task.Task[A] {
	return Fold(fa, onFailure, task.Of[A])
}

// OrElse replaces the remainder of the computation with f(e) on Failure;
// a Success passes through untouched and f is never invoked.
func OrElse[E, F, A any](fa TaskResult[E, A], f func(E) TaskResult[F, A]) TaskResult[F, A] {
	return func(ctx context.Context) result.Result[F, A] {
		ra := fa(ctx)
		if e, failed := ra.Fail(); failed {
			return f(e)(ctx)
		}
		a, _ := ra.Get()
		return result.Success[F](a)
	}
}
