package dispatch_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/envfx_go/envfx/internal/dispatch"
)

type msg struct {
	key string
	seq int
}

func TestPool_HandlesEverythingBeforeCloseReturns(t *testing.T) {
	var mu sync.Mutex
	handled := 0

	pool := dispatch.NewPartitionedPool(4, 2,
		func(m msg) string { return m.key },
		func(m msg) {
			mu.Lock()
			handled++
			mu.Unlock()
		},
	)
	for i := 0; i < 100; i++ {
		pool.Submit(msg{key: fmt.Sprintf("k%d", i%7), seq: i})
	}
	pool.Close()

	assert.Equal(t, 100, handled)
}

func TestPool_SameKeySubmissionOrder(t *testing.T) {
	var mu sync.Mutex
	order := map[string][]int{}

	pool := dispatch.NewPartitionedPool(3, 1,
		func(m msg) string { return m.key },
		func(m msg) {
			mu.Lock()
			order[m.key] = append(order[m.key], m.seq)
			mu.Unlock()
		},
	)
	for i := 0; i < 60; i++ {
		pool.Submit(msg{key: fmt.Sprintf("k%d", i%5), seq: i})
	}
	pool.Close()

	for key, seqs := range order {
		assert.IsIncreasing(t, seqs, "key %s must be handled in submission order", key)
	}
}

func TestPool_SingleWorkerIsGlobalOrder(t *testing.T) {
	got := []int{}
	pool := dispatch.NewPartitionedPool(1, 1,
		func(m msg) string { return m.key },
		func(m msg) { got = append(got, m.seq) },
	)
	for i := 0; i < 10; i++ {
		pool.Submit(msg{key: "same", seq: i})
	}
	pool.Close()

	assert.IsIncreasing(t, got)
}

func TestPool_ZeroWorkersPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for zero workers")
		}
	}()
	dispatch.NewPartitionedPool(0, 1, func(m msg) string { return m.key }, func(msg) {})
}
