package envfx

import (
	"github.com/on-the-ground/envfx_go/reader"
	"github.com/on-the-ground/envfx_go/task"
	"github.com/on-the-ground/envfx_go/taskresult"
)

// Fold collapses both outcomes into a single deferred value, losing the
// failure/success distinction. Exactly one handler runs per settled result.
func Fold[R, E, A, B any](
	fa Effect[R, E, A],
	onFailure func(E) task.Task[B],
	onSuccess func(A) task.Task[B],
) reader.Reader[R, task.Task[B]] {
	return func(r R) task.Task[B] {
		return taskresult.Fold(fa(r), onFailure, onSuccess)
	}
}

// GetOrElse recovers a same-typed value on Failure.
func GetOrElse[R, E, A any](fa Effect[R, E, A], onFailure func(E) task.Task[A]) reader.Reader[R, task.Task[A]] {
	return func(r R) task.Task[A] {
		return taskresult.GetOrElse(fa(r), onFailure)
	}
}

// OrElse replaces the remainder of the computation with f(e) on Failure,
// re-evaluated against the same environment. A Success passes through
// untouched and f is never invoked.
func OrElse[R, E, F, A any](fa Effect[R, E, A], f func(E) Effect[R, F, A]) Effect[R, F, A] {
	return func(r R) taskresult.TaskResult[F, A] {
		return taskresult.OrElse(fa(r), func(e E) taskresult.TaskResult[F, A] {
			return f(e)(r)
		})
	}
}
