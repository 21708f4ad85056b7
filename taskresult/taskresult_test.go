package taskresult_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/envfx_go/result"
	"github.com/on-the-ground/envfx_go/task"
	"github.com/on-the-ground/envfx_go/taskresult"
)

func settle[E, A any](t *testing.T, fa taskresult.TaskResult[E, A]) result.Result[E, A] {
	t.Helper()
	return fa(context.Background())
}

func TestTaskResult_ChainShortCircuits(t *testing.T) {
	called := false
	out := taskresult.Chain(
		taskresult.Left[string, int]("boom"),
		func(x int) taskresult.TaskResult[string, int] {
			called = true
			return taskresult.Of[string](x * 10)
		},
	)

	e, failed := settle(t, out).Fail()
	assert.True(t, failed)
	assert.Equal(t, "boom", e)
	assert.False(t, called)
}

func TestTaskResult_ApFunctionPositionFailureWins(t *testing.T) {
	out := taskresult.Ap(
		taskresult.Left[string, func(int) int]("f-err"),
		taskresult.Left[string, int]("v-err"),
	)
	e, failed := settle(t, out).Fail()
	assert.True(t, failed)
	assert.Equal(t, "f-err", e)
}

func TestTaskResult_ApRunsBothBranches(t *testing.T) {
	valRan := false
	out := taskresult.Ap(
		taskresult.Left[string, func(int) int]("f-err"),
		taskresult.TaskResult[string, int](func(ctx context.Context) result.Result[string, int] {
			valRan = true
			return result.Success[string](1)
		}),
	)
	settle(t, out)
	assert.True(t, valRan, "independent ap must run the value branch even when the function branch fails")
}

func TestTaskResult_ApSeqSkipsValueBranchOnFailure(t *testing.T) {
	valRan := false
	out := taskresult.ApSeq(
		taskresult.Left[string, func(int) int]("f-err"),
		taskresult.TaskResult[string, int](func(ctx context.Context) result.Result[string, int] {
			valRan = true
			return result.Success[string](1)
		}),
	)

	e, failed := settle(t, out).Fail()
	assert.True(t, failed)
	assert.Equal(t, "f-err", e)
	assert.False(t, valRan, "sequential ap must not run the value branch after a function-branch failure")
}

func TestTaskResult_AltIsLazy(t *testing.T) {
	out := taskresult.Alt(taskresult.Of[string](1), func() taskresult.TaskResult[string, int] {
		t.Fatal("alternative must not be evaluated on success")
		return taskresult.Of[string](0)
	})
	v, ok := settle(t, out).Get()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTaskResult_AltRecoversFailure(t *testing.T) {
	out := taskresult.Alt(taskresult.Left[string, int]("e"), func() taskresult.TaskResult[string, int] {
		return taskresult.Of[string](9)
	})
	v, ok := settle(t, out).Get()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestTaskResult_FoldTotality(t *testing.T) {
	onFailure := func(e string) task.Task[string] { return task.Of("F:" + e) }
	onSuccess := func(a int) task.Task[string] { return task.Of("S") }

	ctx := context.Background()
	assert.Equal(t, "S", taskresult.Fold(taskresult.Of[string](1), onFailure, onSuccess)(ctx))
	assert.Equal(t, "F:e", taskresult.Fold(taskresult.Left[string, int]("e"), onFailure, onSuccess)(ctx))
}

func TestTaskResult_OrElsePassesSuccessThrough(t *testing.T) {
	called := false
	out := taskresult.OrElse(taskresult.Of[string](5), func(e string) taskresult.TaskResult[int, int] {
		called = true
		return taskresult.Of[int](0)
	})
	v, ok := settle(t, out).Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.False(t, called)
}

func TestTaskResult_TryTask(t *testing.T) {
	boom := errors.New("boom")

	v, ok := settle(t, taskresult.TryTask(func(ctx context.Context) (int, error) {
		return 3, nil
	})).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	e, failed := settle(t, taskresult.TryTask(func(ctx context.Context) (int, error) {
		return 0, boom
	})).Fail()
	assert.True(t, failed)
	assert.ErrorIs(t, e, boom)
}

func TestTaskResult_GetOrElse(t *testing.T) {
	fallback := func(e string) task.Task[int] { return task.Of(-1) }
	ctx := context.Background()

	assert.Equal(t, 5, taskresult.GetOrElse(taskresult.Of[string](5), fallback)(ctx))
	assert.Equal(t, -1, taskresult.GetOrElse(taskresult.Left[string, int]("e"), fallback)(ctx))
}
