package envfx

import (
	"github.com/on-the-ground/envfx_go/readert"
	"github.com/on-the-ground/envfx_go/taskresult"
)

// Map transforms the success value. Failures pass through unchanged.
func Map[R, E, A, B any](fa Effect[R, E, A], f func(A) B) Effect[R, E, B] {
	return Effect[R, E, B](readert.Map[R, A, B, taskresult.TaskResult[E, A], taskresult.TaskResult[E, B]](
		taskresult.Map[E, A, B], fa, f,
	))
}

// Bimap transforms whichever branch the eventual result holds, without
// altering timing.
func Bimap[R, E, F, A, B any](fa Effect[R, E, A], onFailure func(E) F, onSuccess func(A) B) Effect[R, F, B] {
	return func(r R) taskresult.TaskResult[F, B] {
		return taskresult.Bimap(fa(r), onFailure, onSuccess)
	}
}

// MapLeft transforms only the failure branch.
func MapLeft[R, E, F, A any](fa Effect[R, E, A], f func(E) F) Effect[R, F, A] {
	return func(r R) taskresult.TaskResult[F, A] {
		return taskresult.MapLeft(fa(r), f)
	}
}

// Ap combines independently: both sides run against the same environment
// with no ordering constraint between their suspension points, and once
// both settle a function-position failure wins over a value-position one.
func Ap[R, E, A, B any](fab Effect[R, E, func(A) B], fa Effect[R, E, A]) Effect[R, E, B] {
	return Effect[R, E, B](readert.Ap[R,
		taskresult.TaskResult[E, func(A) B],
		taskresult.TaskResult[E, A],
		taskresult.TaskResult[E, B],
	](taskresult.Ap[E, A, B], fab, fa))
}

// ApSeq combines sequentially: the value side is not constructed until
// the function side has settled successfully. A function-side failure
// means the value side never executes.
func ApSeq[R, E, A, B any](fab Effect[R, E, func(A) B], fa Effect[R, E, A]) Effect[R, E, B] {
	return Effect[R, E, B](readert.Ap[R,
		taskresult.TaskResult[E, func(A) B],
		taskresult.TaskResult[E, A],
		taskresult.TaskResult[E, B],
	](taskresult.ApSeq[E, A, B], fab, fa))
}

// ApFirst runs both independently and keeps the first value.
func ApFirst[R, E, A, B any](fa Effect[R, E, A], fb Effect[R, E, B]) Effect[R, E, A] {
	return Ap(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecond runs both independently and keeps the second value.
func ApSecond[R, E, A, B any](fa Effect[R, E, A], fb Effect[R, E, B]) Effect[R, E, B] {
	return Ap(Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
}

// Chain sequences an Effect-producing continuation under the same
// environment. On Failure the continuation is never invoked and the
// failure propagates.
func Chain[R, E, A, B any](fa Effect[R, E, A], f func(A) Effect[R, E, B]) Effect[R, E, B] {
	return Effect[R, E, B](readert.Chain[R, A, taskresult.TaskResult[E, A], taskresult.TaskResult[E, B]](
		taskresult.Chain[E, A, B],
		fa,
		func(a A) func(R) taskresult.TaskResult[E, B] { return f(a) },
	))
}

// ChainFirst sequences for its effect only, keeping the original value.
func ChainFirst[R, E, A, B any](fa Effect[R, E, A], f func(A) Effect[R, E, B]) Effect[R, E, A] {
	return Chain(fa, func(a A) Effect[R, E, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// Flatten collapses a nested Effect.
func Flatten[R, E, A any](ffa Effect[R, E, Effect[R, E, A]]) Effect[R, E, A] {
	return Chain(ffa, func(fa Effect[R, E, A]) Effect[R, E, A] { return fa })
}

// Alt settles to fa when it succeeds. On Failure the lazily evaluated
// that() runs against the same environment and its outcome is adopted.
func Alt[R, E, A any](fa Effect[R, E, A], that func() Effect[R, E, A]) Effect[R, E, A] {
	return func(r R) taskresult.TaskResult[E, A] {
		return taskresult.Alt(fa(r), func() taskresult.TaskResult[E, A] {
			return that()(r)
		})
	}
}
