// Package task provides the deferred computation leaf: a value representing
// an asynchronous computation that has not started yet.
//
// A Task starts only when invoked with a context. The context is forwarded
// to whatever the leaf computation does with it; this package itself never
// inspects it. Invoking the same Task twice yields two independent
// executions unless the Task was built with Memoize.
package task

import (
	"context"
	"sync"

	"github.com/on-the-ground/envfx_go/thunk"
)

// Task is a not-yet-run asynchronous computation producing an A.
type Task[A any] func(context.Context) A

// Of wraps an already-computed value.
func Of[A any](a A) Task[A] {
	return func(context.Context) A { return a }
}

// FromThunk defers a synchronous computation behind the asynchronous boundary.
func FromThunk[A any](ta thunk.Thunk[A]) Task[A] {
	return func(context.Context) A { return ta() }
}

// Map transforms the produced value without starting the task.
func Map[A, B any](ta Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) B { return f(ta(ctx)) }
}

// Chain sequences a task-producing continuation. The second task is not
// constructed until the first has settled.
func Chain[A, B any](ta Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) B { return f(ta(ctx))(ctx) }
}

// Ap applies a wrapped function to a wrapped value. Both tasks run
// independently: the function side runs on its own goroutine while the
// value side runs on the caller's, and Ap waits for both.
func Ap[A, B any](tab Task[func(A) B], ta Task[A]) Task[B] {
	return func(ctx context.Context) B {
		var fn func(A) B
		done := make(chan struct{})
		go func() {
			defer close(done)
			fn = tab(ctx)
		}()
		a := ta(ctx)
		<-done
		return fn(a)
	}
}

// Memoize caches the first invocation's value; later invocations reuse it
// without re-running the computation. Leaf-level caching is the one
// exception to run-twice independence.
func Memoize[A any](ta Task[A]) Task[A] {
	var (
		once   sync.Once
		cached A
	)
	return func(ctx context.Context) A {
		once.Do(func() { cached = ta(ctx) })
		return cached
	}
}
