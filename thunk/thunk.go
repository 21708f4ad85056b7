// Package thunk provides the synchronous side-effecting computation leaf:
// a zero-argument callable whose work happens only when it is called.
//
// Constructing or combining thunks performs no work. Faults are the
// caller's concern; a thunk that can fail should produce a result.Result
// rather than panic.
package thunk

// Thunk is a not-yet-run synchronous computation producing an A.
type Thunk[A any] func() A

// Of wraps an already-computed value.
func Of[A any](a A) Thunk[A] {
	return func() A { return a }
}

// Map transforms the produced value without running the thunk.
func Map[A, B any](ta Thunk[A], f func(A) B) Thunk[B] {
	return func() B { return f(ta()) }
}

// Chain sequences a thunk-producing continuation.
func Chain[A, B any](ta Thunk[A], f func(A) Thunk[B]) Thunk[B] {
	return func() B { return f(ta())() }
}

// Ap applies a wrapped function to a wrapped value, function side first.
func Ap[A, B any](tab Thunk[func(A) B], ta Thunk[A]) Thunk[B] {
	return func() B { return tab()(ta()) }
}
