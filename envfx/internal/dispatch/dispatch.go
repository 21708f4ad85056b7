// Package dispatch provides a bounded pool of workers fed through
// hash-partitioned channels: messages sharing a partition key land on the
// same worker and are handled in submission order, while distinct keys
// may overlap.
package dispatch

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Pool routes messages to a fixed set of workers by partition key.
type Pool[T any] struct {
	chans []chan T
	keyOf func(T) string
	wg    sync.WaitGroup
}

// NewPartitionedPool starts numWorkers workers, each draining its own
// buffered channel. It returns only after every worker is running.
func NewPartitionedPool[T any](
	numWorkers, bufferSize int,
	keyOf func(T) string,
	handle func(T),
) *Pool[T] {
	if numWorkers <= 0 {
		panic("dispatch: number of workers cannot be 0")
	}
	p := &Pool[T]{
		chans: make([]chan T, numWorkers),
		keyOf: keyOf,
	}
	ready := sync.WaitGroup{}
	for i := range p.chans {
		ch := make(chan T, bufferSize)
		p.chans[i] = ch
		p.wg.Add(1)
		ready.Add(1)
		go func(ch chan T) {
			defer p.wg.Done()
			ready.Done()
			for msg := range ch {
				handle(msg)
			}
		}(ch)
	}
	ready.Wait()
	return p
}

// Submit routes a message to the worker owning its partition. It blocks
// only when that worker's buffer is full. Must not be called after Close.
func (p *Pool[T]) Submit(msg T) {
	p.chans[p.indexOf(msg)] <- msg
}

// Close stops intake and blocks until every submitted message has been
// handled.
func (p *Pool[T]) Close() {
	for _, ch := range p.chans {
		close(ch)
	}
	p.wg.Wait()
}

func (p *Pool[T]) indexOf(msg T) int {
	if len(p.chans) == 1 {
		return 0
	}
	return int(xxhash.Sum64String(p.keyOf(msg)) % uint64(len(p.chans)))
}
