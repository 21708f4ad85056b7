// Package reader provides the environment-dependent pure value: a function
// from a read-only environment R to an A, with no deferral and no failure.
package reader

// Reader computes an A from a read-only environment R.
type Reader[R, A any] func(R) A

// Of ignores the environment and returns a.
func Of[R, A any](a A) Reader[R, A] {
	return func(R) A { return a }
}

// Ask reflects the environment itself as the computed value.
func Ask[R any]() Reader[R, R] {
	return func(r R) R { return r }
}

// Asks computes a value by projecting the environment.
func Asks[R, A any](f func(R) A) Reader[R, A] {
	return Reader[R, A](f)
}

// Map transforms the computed value.
func Map[R, A, B any](fa Reader[R, A], f func(A) B) Reader[R, B] {
	return func(r R) B { return f(fa(r)) }
}

// Chain sequences a Reader-producing continuation under the same environment.
func Chain[R, A, B any](fa Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	return func(r R) B { return f(fa(r))(r) }
}

// Local runs fa under a derived environment f(q). The caller's environment
// value is never mutated.
func Local[R, Q, A any](fa Reader[R, A], f func(Q) R) Reader[Q, A] {
	return func(q Q) A { return fa(f(q)) }
}
