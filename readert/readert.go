// Package readert provides the generic reader-transformer construction:
// given any base effect M with of/map/ap/chain, it produces the
// environment-parameterized version func(R) M of that effect.
//
// Go has no higher-kinded type parameters, so the base effect's algebra
// enters as explicit function capabilities, one per operation, with the
// instantiated effect types appearing as ordinary type parameters MA, MB.
// The construction is reusable verbatim for any qualifying base effect;
// the envfx package instantiates it with taskresult, and the tests
// additionally instantiate it with bare tasks and with plain results.
//
// Every function here only composes callables. No work happens and no
// environment is touched until the produced func(R) M is applied.
package readert

// Of lifts a value, ignoring the environment.
func Of[R, A, MA any](of func(A) MA) func(A) func(R) MA {
	return func(a A) func(R) MA {
		return func(R) MA { return of(a) }
	}
}

// FromM lifts an existing base effect into a constant, environment-ignoring
// computation.
func FromM[R, MA any](ma MA) func(R) MA {
	return func(R) MA { return ma }
}

// Map lifts the base effect's map over the environment layer.
func Map[R, A, B, MA, MB any](mp func(MA, func(A) B) MB, fa func(R) MA, f func(A) B) func(R) MB {
	return func(r R) MB { return mp(fa(r), f) }
}

// Ap runs the function-producing and value-producing computations against
// the same environment. Evaluation order between the two base effects is
// delegated entirely to the base ap.
func Ap[R, MAB, MA, MB any](ap func(MAB, MA) MB, fab func(R) MAB, fa func(R) MA) func(R) MB {
	return func(r R) MB { return ap(fab(r), fa(r)) }
}

// Chain sequences a computation-producing continuation. The continuation
// receives the same environment as the first computation.
func Chain[R, A, MA, MB any](ch func(MA, func(A) MB) MB, fa func(R) MA, f func(A) func(R) MB) func(R) MB {
	return func(r R) MB {
		return ch(fa(r), func(a A) MB { return f(a)(r) })
	}
}

// Ask reflects the environment as the base effect's value.
func Ask[R, MR any](of func(R) MR) func(R) MR {
	return func(r R) MR { return of(r) }
}

// Asks reflects a projection of the environment as the base effect's value.
func Asks[R, A, MA any](of func(A) MA, f func(R) A) func(R) MA {
	return func(r R) MA { return of(f(r)) }
}

// Local runs an existing computation under a derived environment f(q),
// without mutating the caller's environment.
func Local[R, Q, MA any](fa func(R) MA, f func(Q) R) func(Q) MA {
	return func(q Q) MA { return fa(f(q)) }
}
