package envfx

import (
	"context"

	"github.com/on-the-ground/envfx_go/result"
)

// Run is the sole execution entry point: it supplies the environment,
// forces the deferred computation, and returns the settled Result. It
// never panics on failure; unrecovered failures come back as the
// Result's failure branch.
//
// The context is forwarded to the leaf computations untouched. This
// layer defines no cancellation semantics of its own.
func Run[R, E, A any](ctx context.Context, fa Effect[R, E, A], r R) result.Result[E, A] {
	return fa(r)(ctx)
}
