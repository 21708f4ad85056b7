package envfx

import (
	"context"
	"sync"

	"github.com/on-the-ground/envfx_go/envfx/internal/dispatch"
	"github.com/on-the-ground/envfx_go/result"
	"github.com/on-the-ground/envfx_go/taskresult"
)

// Keyed is satisfied by items carrying a partition routing key.
type Keyed interface {
	PartitionKey() string
}

// ScopeConfig bounds the worker pool behind TraversePartitioned.
type ScopeConfig struct {
	NumWorkers int // default: 1
	BufferSize int // default: 1
}

// NewScopeConfig normalizes non-positive values to 1.
func NewScopeConfig(numWorkers, bufferSize int) ScopeConfig {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return ScopeConfig{
		NumWorkers: numWorkers,
		BufferSize: bufferSize,
	}
}

// TraverseSeq evaluates f over the items strictly in order, against the
// same environment. The effect for an item is not even constructed until
// every earlier one has settled successfully; the first Failure
// short-circuits the rest.
func TraverseSeq[R, E, A, B any](items []A, f func(A) Effect[R, E, B]) Effect[R, E, []B] {
	return func(r R) taskresult.TaskResult[E, []B] {
		return func(ctx context.Context) result.Result[E, []B] {
			out := make([]B, 0, len(items))
			for _, a := range items {
				rb := f(a)(r)(ctx)
				if e, failed := rb.Fail(); failed {
					return result.Failure[E, []B](e)
				}
				b, _ := rb.Get()
				out = append(out, b)
			}
			return result.Success[E](out)
		}
	}
}

// TraversePar evaluates f over all items independently against the same
// environment, one goroutine per item. Every branch runs regardless of
// the others' outcomes; once all settle, the lowest-index failure wins,
// matching the independent Ap rule.
func TraversePar[R, E, A, B any](items []A, f func(A) Effect[R, E, B]) Effect[R, E, []B] {
	effs := make([]Effect[R, E, B], len(items))
	for i, a := range items {
		effs[i] = f(a)
	}
	return SequencePar(effs)
}

// SequencePar is TraversePar over already-constructed effects.
func SequencePar[R, E, A any](effs []Effect[R, E, A]) Effect[R, E, []A] {
	return func(r R) taskresult.TaskResult[E, []A] {
		return func(ctx context.Context) result.Result[E, []A] {
			settled := make([]result.Result[E, A], len(effs))
			ready := sync.WaitGroup{}
			done := sync.WaitGroup{}
			for i := range effs {
				ready.Add(1)
				done.Add(1)
				go func(i int) {
					defer done.Done()
					ready.Done()
					settled[i] = effs[i](r)(ctx)
				}(i)
			}
			// all branches have started before we wait on any of them
			ready.Wait()
			done.Wait()
			return combineIndexed(settled)
		}
	}
}

// TraversePartitioned evaluates f over the items on a fixed pool of
// cfg.NumWorkers workers. Items sharing a PartitionKey are evaluated by
// the same worker in input order; distinct keys may overlap. Results come
// back in input order and every branch runs; once all settle, the
// lowest-index failure wins.
func TraversePartitioned[R, E any, A Keyed, B any](cfg ScopeConfig, items []A, f func(A) Effect[R, E, B]) Effect[R, E, []B] {
	cfg = NewScopeConfig(cfg.NumWorkers, cfg.BufferSize)
	effs := make([]Effect[R, E, B], len(items))
	for i, a := range items {
		effs[i] = f(a)
	}
	return func(r R) taskresult.TaskResult[E, []B] {
		return func(ctx context.Context) result.Result[E, []B] {
			settled := make([]result.Result[E, B], len(items))
			pool := dispatch.NewPartitionedPool(
				cfg.NumWorkers,
				cfg.BufferSize,
				func(i int) string { return items[i].PartitionKey() },
				func(i int) { settled[i] = effs[i](r)(ctx) },
			)
			for i := range items {
				pool.Submit(i)
			}
			pool.Close()
			return combineIndexed(settled)
		}
	}
}

func combineIndexed[E, A any](settled []result.Result[E, A]) result.Result[E, []A] {
	out := make([]A, len(settled))
	for i, ra := range settled {
		if e, failed := ra.Fail(); failed {
			return result.Failure[E, []A](e)
		}
		a, _ := ra.Get()
		out[i] = a
	}
	return result.Success[E](out)
}
