package envfx

import (
	"context"

	"github.com/on-the-ground/envfx_go/option"
	"github.com/on-the-ground/envfx_go/reader"
	"github.com/on-the-ground/envfx_go/readert"
	"github.com/on-the-ground/envfx_go/result"
	"github.com/on-the-ground/envfx_go/task"
	"github.com/on-the-ground/envfx_go/taskresult"
	"github.com/on-the-ground/envfx_go/thunk"
)

// Effect is a pure value describing a not-yet-run computation that, given
// a read-only environment R, eventually settles to a failure E or a
// success A. Combining Effects performs no work; Run starts it.
type Effect[R, E, A any] func(R) taskresult.TaskResult[E, A]

// Right lifts a plain value into an always-succeeding Effect.
func Right[R, E, A any](a A) Effect[R, E, A] {
	return Effect[R, E, A](readert.Of[R, A, taskresult.TaskResult[E, A]](taskresult.Of[E, A])(a))
}

// Left lifts a plain value into an always-failing Effect, ignoring the
// environment.
func Left[R, E, A any](e E) Effect[R, E, A] {
	return FromTaskResult[R](taskresult.Left[E, A](e))
}

// FromTaskResult lifts an existing failable deferred computation into a
// constant, environment-ignoring Effect.
func FromTaskResult[R, E, A any](fa taskresult.TaskResult[E, A]) Effect[R, E, A] {
	return Effect[R, E, A](readert.FromM[R, taskresult.TaskResult[E, A]](fa))
}

// RightTask lifts a never-failing deferred computation into success position.
func RightTask[R, E, A any](ta task.Task[A]) Effect[R, E, A] {
	return FromTaskResult[R](taskresult.FromTask[E](ta))
}

// LeftTask lifts a never-failing deferred computation into failure position.
func LeftTask[R, E, A any](te task.Task[E]) Effect[R, E, A] {
	return FromTaskResult[R](taskresult.LeftFromTask[E, A](te))
}

// RightThunk lifts a synchronous computation into success position,
// deferred behind the asynchronous boundary.
func RightThunk[R, E, A any](ta thunk.Thunk[A]) Effect[R, E, A] {
	return FromTaskResult[R](taskresult.FromThunk[E](ta))
}

// LeftThunk lifts a synchronous computation into failure position, deferred.
func LeftThunk[R, E, A any](te thunk.Thunk[E]) Effect[R, E, A] {
	return FromTaskResult[R](taskresult.LeftFromThunk[E, A](te))
}

// FromResult lifts an already-settled Result.
func FromResult[R, E, A any](ra result.Result[E, A]) Effect[R, E, A] {
	return FromTaskResult[R](taskresult.FromResult(ra))
}

// FromResultThunk lifts a synchronous computation that settles to a Result.
func FromResultThunk[R, E, A any](tra thunk.Thunk[result.Result[E, A]]) Effect[R, E, A] {
	return FromTaskResult[R](taskresult.FromResultThunk(tra))
}

// TryTask adapts Go's conventional (value, error) asynchronous shape.
func TryTask[R, A any](fn func(context.Context) (A, error)) Effect[R, error, A] {
	return FromTaskResult[R](taskresult.TryTask(fn))
}

// FromOption builds a converter mapping an absent value to a computed
// failure. onNone runs only when the option is None.
func FromOption[R, E, A any](onNone func() E) func(option.Option[A]) Effect[R, E, A] {
	return func(oa option.Option[A]) Effect[R, E, A] {
		return option.Fold(oa,
			func() Effect[R, E, A] { return Left[R, E, A](onNone()) },
			Right[R, E, A],
		)
	}
}

// FromPredicate builds a converter that succeeds iff the predicate holds.
func FromPredicate[R, E, A any](predicate func(A) bool, onFalse func(A) E) func(A) Effect[R, E, A] {
	return func(a A) Effect[R, E, A] {
		if predicate(a) {
			return Right[R, E, A](a)
		}
		return Left[R, E, A](onFalse(a))
	}
}

// RightReader lifts an environment-dependent pure value into success position.
func RightReader[R, E, A any](fa reader.Reader[R, A]) Effect[R, E, A] {
	return Effect[R, E, A](readert.Asks[R, A, taskresult.TaskResult[E, A]](taskresult.Of[E, A], fa))
}

// LeftReader lifts an environment-dependent pure value into failure position.
func LeftReader[R, E, A any](fe reader.Reader[R, E]) Effect[R, E, A] {
	return Effect[R, E, A](readert.Asks[R, E, taskresult.TaskResult[E, A]](taskresult.Left[E, A], fe))
}
