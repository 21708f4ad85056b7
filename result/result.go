// Package result provides a closed sum type holding exactly one of a
// failure E or a success A.
//
// A Result is consumed by matching (Fold) or transformed by the usual
// combinators (Map, Chain, OrElse, ...). Failures are ordinary values,
// never out-of-band signals: no combinator in this package panics.
//
// Combinators that introduce a new type parameter cannot be methods in Go,
// so the whole surface is package-level functions taking the Result first.
package result

// Result holds exactly one of a failure E or a success A.
// The zero value is a Failure holding E's zero value.
type Result[E, A any] struct {
	success A
	failure E
	ok      bool
}

// Success wraps a value into the success branch.
func Success[E, A any](a A) Result[E, A] {
	return Result[E, A]{success: a, ok: true}
}

// Failure wraps a value into the failure branch.
func Failure[E, A any](e E) Result[E, A] {
	return Result[E, A]{failure: e}
}

// From converts Go's conventional (value, error) pair into a Result.
// A nil error yields Success.
func From[A any](a A, err error) Result[error, A] {
	if err != nil {
		return Failure[error, A](err)
	}
	return Success[error](a)
}

func (r Result[E, A]) IsSuccess() bool { return r.ok }
func (r Result[E, A]) IsFailure() bool { return !r.ok }

// Get returns the success value; ok reports whether r is a Success.
func (r Result[E, A]) Get() (a A, ok bool) {
	return r.success, r.ok
}

// Fail returns the failure value; ok reports whether r is a Failure.
func (r Result[E, A]) Fail() (e E, ok bool) {
	return r.failure, !r.ok
}

// Fold collapses the Result by applying exactly one of the two handlers.
func Fold[E, A, B any](r Result[E, A], onFailure func(E) B, onSuccess func(A) B) B {
	if r.ok {
		return onSuccess(r.success)
	}
	return onFailure(r.failure)
}

// Map transforms the success branch; a Failure passes through unchanged.
func Map[E, A, B any](ra Result[E, A], f func(A) B) Result[E, B] {
	if !ra.ok {
		return Failure[E, B](ra.failure)
	}
	return Success[E](f(ra.success))
}

// MapLeft transforms the failure branch; a Success passes through unchanged.
func MapLeft[E, F, A any](ra Result[E, A], f func(E) F) Result[F, A] {
	if ra.ok {
		return Success[F](ra.success)
	}
	return Failure[F, A](f(ra.failure))
}

// Bimap transforms whichever branch is present.
func Bimap[E, F, A, B any](ra Result[E, A], onFailure func(E) F, onSuccess func(A) B) Result[F, B] {
	if ra.ok {
		return Success[F](onSuccess(ra.success))
	}
	return Failure[F, B](onFailure(ra.failure))
}

// Ap applies a wrapped function to a wrapped value.
// If the function position is a Failure, that failure wins regardless of
// the value position; otherwise a value-position failure wins.
func Ap[E, A, B any](rab Result[E, func(A) B], ra Result[E, A]) Result[E, B] {
	if !rab.ok {
		return Failure[E, B](rab.failure)
	}
	if !ra.ok {
		return Failure[E, B](ra.failure)
	}
	return Success[E](rab.success(ra.success))
}

// Chain sequences a Result-producing continuation; a Failure short-circuits
// and f is never invoked.
func Chain[E, A, B any](ra Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if !ra.ok {
		return Failure[E, B](ra.failure)
	}
	return f(ra.success)
}

// Alt returns ra if it is a Success, otherwise the lazily evaluated that().
func Alt[E, A any](ra Result[E, A], that func() Result[E, A]) Result[E, A] {
	if ra.ok {
		return ra
	}
	return that()
}

// OrElse replaces a Failure with f(e); a Success passes through with the
// failure type retagged.
func OrElse[E, F, A any](ra Result[E, A], f func(E) Result[F, A]) Result[F, A] {
	if ra.ok {
		return Success[F](ra.success)
	}
	return f(ra.failure)
}

// GetOrElse extracts the success value, recovering a Failure via onFailure.
func GetOrElse[E, A any](ra Result[E, A], onFailure func(E) A) A {
	if ra.ok {
		return ra.success
	}
	return onFailure(ra.failure)
}

// FromPredicate builds a constructor that succeeds iff the predicate holds.
func FromPredicate[E, A any](predicate func(A) bool, onFalse func(A) E) func(A) Result[E, A] {
	return func(a A) Result[E, A] {
		if predicate(a) {
			return Success[E](a)
		}
		return Failure[E, A](onFalse(a))
	}
}
