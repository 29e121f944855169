package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoAndAwait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tk := Go(ctx, func(context.Context) int {
		time.Sleep(5 * time.Millisecond)
		return 42
	})

	v, ok := tk.Await(ctx)
	require.True(t, ok)
	assert.Equal(t, 42, v)

	// Memoized: a second await returns the same value immediately.
	v, ok = tk.Await(ctx)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestAwaitHonorsContext(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	tk := Go(context.Background(), func(context.Context) int {
		close(started)
		<-release
		return 1
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok := tk.Await(ctx)
	assert.False(t, ok, "a cancelled context must not block on the task")

	// The task is unaffected and can still be awaited.
	close(release)
	v, ok := tk.Await(context.Background())
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestResolved(t *testing.T) {
	t.Parallel()

	tk := Resolved("ready")
	select {
	case <-tk.Done():
	default:
		t.Fatal("a resolved task should be done immediately")
	}
	assert.Equal(t, "ready", tk.Result())
}

func TestResultPanicsBeforeCompletion(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	tk := Go(context.Background(), func(context.Context) int {
		<-release
		return 1
	})
	defer close(release)

	assert.Panics(t, func() { _ = tk.Result() })
}

func TestProvenance(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	tk := Resolved(0)
	after := time.Now().UTC()

	assert.NotEqual(t, uuid.Nil, tk.Id())
	assert.False(t, tk.StartedAt().Before(before))
	assert.False(t, tk.StartedAt().After(after))
}

func TestIdsAreUnique(t *testing.T) {
	t.Parallel()

	a, b := Resolved(0), Resolved(0)
	assert.NotEqual(t, a.Id(), b.Id())
}

func TestAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ts := []*Task[int]{
		Go(ctx, func(context.Context) int {
			time.Sleep(10 * time.Millisecond)
			return 1
		}),
		Resolved(2),
		Go(ctx, func(context.Context) int { return 3 }),
	}

	vs, ok := All(ctx, ts...)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, vs)
}

func TestAllGivesUpWithContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	blocked := Go(context.Background(), func(context.Context) int {
		<-release
		return 1
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, ok := All(ctx, Resolved(0), blocked)
	assert.False(t, ok)
}
