package envfx

import (
	"github.com/on-the-ground/envfx_go/readert"
	"github.com/on-the-ground/envfx_go/taskresult"
)

// Ask reflects the environment itself as the success value. Never fails.
func Ask[R, E any]() Effect[R, E, R] {
	return Effect[R, E, R](readert.Ask[R, taskresult.TaskResult[E, R]](taskresult.Of[E, R]))
}

// Asks reflects a projection of the environment as the success value.
// Never fails.
func Asks[R, E, A any](f func(R) A) Effect[R, E, A] {
	return Effect[R, E, A](readert.Asks[R, A, taskresult.TaskResult[E, A]](taskresult.Of[E, A], f))
}

// Local runs an existing Effect under a derived environment f(q). The
// caller's environment value is never mutated; this is the dependency
// injection seam.
func Local[R, Q, E, A any](fa Effect[R, E, A], f func(Q) R) Effect[Q, E, A] {
	return Effect[Q, E, A](readert.Local[R, Q, taskresult.TaskResult[E, A]](fa, f))
}
