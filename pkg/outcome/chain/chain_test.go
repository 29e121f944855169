package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome/either"
)

var errBoom = errors.New("boom")

func parsePositive(ctx context.Context, s string) either.Either[error, int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return either.First[error, int](err)
	}
	if n <= 0 {
		return either.First[error, int](errors.New("not positive"))
	}
	return either.Second[error](n)
}

func TestFromValueThenMap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	c := Map(
		Then(FromValue(ctx, "21"), parsePositive),
		func(ctx context.Context, n int) int { return n * 2 },
	)

	v, err := c.Unpack()
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}

func TestThenSkipsOnFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	calls := 0

	c := Then(Start(ctx, either.First[error, string](errBoom)),
		func(ctx context.Context, s string) either.Either[error, int] {
			calls++
			return parsePositive(ctx, s)
		})

	if calls != 0 {
		t.Fatalf("expected step to be skipped, ran %d times", calls)
	}
	if _, err := c.Unpack(); !errors.Is(err, errBoom) {
		t.Fatalf("expected original failure to pass through, got: %v", err)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	good := ThenTry(FromValue(ctx, "7"),
		func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	if v, err := good.Unpack(); err != nil || v != 7 {
		t.Fatalf("expected 7, got (%d, %v)", v, err)
	}

	bad := ThenTry(FromValue(ctx, "seven"),
		func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	if _, err := bad.Unpack(); err == nil {
		t.Fatalf("expected parse failure, got success")
	}
}

func TestEnsureRunsOnlyOnSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	seen := 0
	FromValue(ctx, 5).Ensure(func(ctx context.Context, v int) { seen = v })
	if seen != 5 {
		t.Fatalf("expected side effect to see 5, saw %d", seen)
	}

	seen = 0
	Start(ctx, either.First[error, int](errBoom)).
		Ensure(func(ctx context.Context, v int) { seen = v })
	if seen != 0 {
		t.Fatalf("expected side effect to be skipped on failure, saw %d", seen)
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	failed := Start(ctx, either.First[error, int](errBoom))
	backup := FromValue(ctx, 9)

	if v, err := failed.OrElse(backup).Unpack(); err != nil || v != 9 {
		t.Fatalf("expected fallback 9, got (%d, %v)", v, err)
	}

	// A successful chain ignores the alternative.
	if v, err := FromValue(ctx, 1).OrElse(backup).Unpack(); err != nil || v != 1 {
		t.Fatalf("expected original 1, got (%d, %v)", v, err)
	}

	// Both failed: the original failure wins.
	other := Start(ctx, either.First[error, int](errors.New("other")))
	if _, err := failed.OrElse(other).Unpack(); !errors.Is(err, errBoom) {
		t.Fatalf("expected original failure, got: %v", err)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	v := FromValue(ctx, 3).Finally(
		func(ctx context.Context, v int) int { return v * 10 },
		func(ctx context.Context, err error) int { return -1 },
	)
	if v != 30 {
		t.Fatalf("expected 30, got %d", v)
	}

	v = Start(ctx, either.First[error, int](errBoom)).Finally(
		func(ctx context.Context, v int) int { return v * 10 },
		func(ctx context.Context, err error) int { return -1 },
	)
	if v != -1 {
		t.Fatalf("expected -1, got %d", v)
	}
}

func TestContextReachesSteps(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "tenant-7")

	c := Map(FromValue(ctx, 0), func(ctx context.Context, _ int) string {
		s, _ := ctx.Value(key{}).(string)
		return s
	})

	if v, err := c.Unpack(); err != nil || v != "tenant-7" {
		t.Fatalf("expected context value to reach the step, got (%q, %v)", v, err)
	}
}
