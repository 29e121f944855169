package either

import (
	"fmt"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	sum := func(acc int, item int) Either[string, int] {
		return Second[string](acc + item)
	}
	if got := Reduce([]int{1, 2, 3}, sum, 10); got.MustSecond() != 16 {
		t.Fatalf("Reduce = %v, want Second(16)", got)
	}
	if got := Reduce(nil, sum, 10); got.MustSecond() != 10 {
		t.Fatal("Reduce over no items should return the initial accumulator")
	}
}

func TestReduceShortCircuits(t *testing.T) {
	t.Parallel()

	calls := 0
	step := func(acc int, item int) Either[string, int] {
		calls++
		if item < 0 {
			return First[string, int](fmt.Sprintf("negative item %d", item))
		}
		return Second[string](acc + item)
	}

	got := Reduce([]int{1, -2, 3, 4}, step, 0)
	if got.MustFirst() != "negative item -2" {
		t.Fatalf("Reduce = %v", got)
	}
	if calls != 2 {
		t.Fatalf("step ran %d times, want 2", calls)
	}
}

func TestCollectPreservesOrder(t *testing.T) {
	t.Parallel()

	got := Collect([]Either[string, int]{Second[string](1), Second[string](2), Second[string](3)})
	vs := got.MustSecond()
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
		t.Fatalf("Collect = %v, want [1 2 3]", vs)
	}
}

func TestCollectStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	got := Collect([]Either[string, int]{Second[string](1), First[string, int]("x"), Second[string](3)})
	if got.MustFirst() != "x" {
		t.Fatalf("Collect = %v, want First(x)", got)
	}
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	calls := 0
	parse := func(item string) Either[string, int] {
		calls++
		if item == "bad" {
			return First[string, int]("unparsable: " + item)
		}
		return Second[string](len(item))
	}

	got := Traverse([]string{"a", "bb", "ccc"}, parse)
	vs := got.MustSecond()
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
		t.Fatalf("Traverse = %v", vs)
	}

	calls = 0
	got = Traverse([]string{"a", "bad", "ccc"}, parse)
	if got.MustFirst() != "unparsable: bad" {
		t.Fatalf("Traverse = %v", got)
	}
	if calls != 2 {
		t.Fatalf("f ran %d times after a failure, want 2", calls)
	}
}

func TestTraverseIntoMapBuilder(t *testing.T) {
	t.Parallel()

	items := []string{"a", "bb"}
	got := TraverseInto[map[string]int](items, func(item string) Either[string, outcome.Entry[string, int]] {
		return Second[string](outcome.Entry[string, int]{Key: item, Val: len(item)})
	}, outcome.NewMapBuilder[string, int](len(items)))

	m := got.MustSecond()
	if len(m) != 2 || m["a"] != 1 || m["bb"] != 2 {
		t.Fatalf("TraverseInto = %v", m)
	}
}

func TestTraverseIntoDiscardBuilder(t *testing.T) {
	t.Parallel()

	seen := 0
	got := TraverseInto[struct{}]([]int{1, 2, 3}, func(item int) Either[string, struct{}] {
		seen++
		return Second[string](struct{}{})
	}, outcome.NewDiscardBuilder[struct{}]())

	if !got.IsSecond() || seen != 3 {
		t.Fatalf("TraverseInto with discard builder: second=%v seen=%d", got.IsSecond(), seen)
	}
}

func TestGatherVisitsKeysInSortedOrder(t *testing.T) {
	t.Parallel()

	var visited []string
	m := map[string]int{"c": 3, "a": 1, "b": 2}

	got := Gather(m, func(k string, v int) Either[string, int] {
		visited = append(visited, k)
		return Second[string](v * 10)
	})

	out := got.MustSecond()
	if len(out) != 3 || out["a"] != 10 || out["b"] != 20 || out["c"] != 30 {
		t.Fatalf("Gather = %v", out)
	}
	if len(visited) != 3 || visited[0] != "a" || visited[1] != "b" || visited[2] != "c" {
		t.Fatalf("visit order = %v, want sorted keys", visited)
	}
}

func TestGatherShortCircuits(t *testing.T) {
	t.Parallel()

	m := map[int]string{1: "one", 2: "bad", 3: "three"}
	calls := 0

	got := Gather(m, func(k int, v string) Either[string, string] {
		calls++
		if v == "bad" {
			return First[string, string](fmt.Sprintf("key %d is bad", k))
		}
		return Second[string](v)
	})

	if got.MustFirst() != "key 2 is bad" {
		t.Fatalf("Gather = %v", got)
	}
	if calls != 2 {
		t.Fatalf("f ran %d times, want 2 (sorted keys, stop at 2)", calls)
	}
}

func TestLift2(t *testing.T) {
	t.Parallel()

	add := Lift2[string](func(a, b int) int { return a + b })

	if got := add(Second[string](1), Second[string](2)); got.MustSecond() != 3 {
		t.Fatalf("Lift2 = %v", got)
	}
	if got := add(First[string, int]("l"), Second[string](2)); got.MustFirst() != "l" {
		t.Fatalf("Lift2 = %v", got)
	}
}

func TestLift3(t *testing.T) {
	t.Parallel()

	join := Lift3[string](func(a, b, c string) string { return a + b + c })

	got := join(Second[string]("x"), Second[string]("y"), Second[string]("z"))
	if got.MustSecond() != "xyz" {
		t.Fatalf("Lift3 = %v", got)
	}
	got = join(Second[string]("x"), First[string, string]("mid"), First[string, string]("end"))
	if got.MustFirst() != "mid" {
		t.Fatal("the leftmost failure should win")
	}
}
