// Package envfx provides an environment-aware, asynchronous, failable
// effect type for Go.
//
// An Effect[R, E, A] is a pure value: a function from a read-only
// environment R to a deferred computation that settles to either a
// failure E or a success A. Building and combining Effects performs no
// work and touches no environment; work begins only when Run supplies a
// concrete environment.
//
// # Why three semantics in one type?
//
// Real pipelines need all three at once:
//   - dependencies arrive late (the environment, injected at the edge),
//   - work must not start until asked (deferral),
//   - failure is a value to route, not a panic to catch.
//
// Threading them through one composable type keeps business logic free of
// plumbing: no hand-carried config structs, no ad-hoc error channels, no
// premature goroutines.
//
// # How is it built?
//
// The type is a reader transformer over the failable deferred base effect:
//
//	Effect[R, E, A] = func(R) taskresult.TaskResult[E, A]
//
// The environment-threading logic lives once, generically, in package
// readert; envfx instantiates it with taskresult and adds conversions,
// recovery, and execution on top. The same construction lifts any base
// effect with of/map/ap/chain.
//
// # Evaluation disciplines
//
// Two applicative combinations are provided. Ap evaluates both sides
// independently (the underlying deferred computations may overlap) and,
// when both have settled, lets a function-position failure win. ApSeq and
// Chain are strictly sequential and short-circuit: after a Failure the
// rest of the pipeline is never constructed, let alone started.
//
// # Execution
//
// Run is the sole operation that performs observable work. It never
// panics on failure: unrecovered failures come back inside the settled
// result.Result.
//
//	cfg := Config{BaseURL: "https://internal"}
//	res := envfx.Run(ctx, pipeline, cfg)
package envfx
