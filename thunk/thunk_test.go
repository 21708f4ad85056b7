package thunk_test

import (
	"testing"

	"github.com/on-the-ground/envfx_go/thunk"
)

func TestThunk_CombinatorsDeferWork(t *testing.T) {
	ran := 0
	ta := thunk.Thunk[int](func() int {
		ran++
		return 1
	})

	tb := thunk.Chain(thunk.Map(ta, func(x int) int { return x + 1 }), func(x int) thunk.Thunk[int] {
		return thunk.Of(x * 10)
	})
	if ran != 0 {
		t.Fatalf("combining thunks must not run them, ran=%d", ran)
	}

	if got := tb(); got != 20 {
		t.Fatalf("unexpected value: got %d", got)
	}
	if ran != 1 {
		t.Fatalf("expected exactly one execution, ran=%d", ran)
	}
}

func TestThunk_Ap(t *testing.T) {
	tab := thunk.Of(func(x int) int { return x * 3 })
	if got := thunk.Ap(tab, thunk.Of(2))(); got != 6 {
		t.Fatalf("unexpected value: got %d", got)
	}
}
