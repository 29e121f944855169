package these

import (
	"strings"
	"testing"
)

func TestReduceNotesAreLatestWins(t *testing.T) {
	t.Parallel()

	// Items above the soft limit leave a note; the fold keeps going and
	// only the last note survives.
	clamp := func(acc int, item int) These[string, int] {
		if item > 10 {
			return Both("clamped "+strings.Repeat("I", item/10), acc+10)
		}
		return Second[string](acc + item)
	}

	got := Reduce([]int{1, 20, 2, 30}, clamp, 0)
	if got.MustFirst() != "clamped III" {
		t.Fatalf("note = %q, want the latest one", got.MustFirst())
	}
	if got.MustSecond() != 23 {
		t.Fatalf("acc = %d, want 23", got.MustSecond())
	}
}

func TestReduceBareFirstHalts(t *testing.T) {
	t.Parallel()

	calls := 0
	step := func(acc int, item int) These[string, int] {
		calls++
		if item < 0 {
			return First[string, int]("negative")
		}
		return Second[string](acc + item)
	}

	got := Reduce([]int{1, -1, 5}, step, 0)
	if !got.IsFirst() || got.MustFirst() != "negative" {
		t.Fatalf("Reduce = %v", got)
	}
	if calls != 2 {
		t.Fatalf("step ran %d times, want 2", calls)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	got := Collect([]These[string, int]{Second[string](1), Both("n", 2), Second[string](3)})
	if got.MustFirst() != "n" {
		t.Fatalf("Collect note = %q", got.MustFirst())
	}
	vs := got.MustSecond()
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
		t.Fatalf("Collect = %v", vs)
	}

	all := Collect([]These[string, int]{Second[string](1), Second[string](2)})
	if !all.IsSecond() {
		t.Fatal("Collect without notes should be a bare Second")
	}
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	got := Traverse([]int{1, 2, 3}, func(item int) These[string, int] {
		if item == 2 {
			return Both("two seen", item*10)
		}
		return Second[string](item * 10)
	})

	if got.MustFirst() != "two seen" {
		t.Fatalf("note = %q", got.MustFirst())
	}
	vs := got.MustSecond()
	if len(vs) != 3 || vs[0] != 10 || vs[1] != 20 || vs[2] != 30 {
		t.Fatalf("Traverse = %v", vs)
	}
}

func TestGatherVisitsKeysInOrder(t *testing.T) {
	t.Parallel()

	var visited []string
	got := Gather(map[string]int{"b": 2, "a": 1, "c": 3}, func(k string, v int) These[string, int] {
		visited = append(visited, k)
		if v == 2 {
			return Both("b adjusted", v*10)
		}
		return Second[string](v * 10)
	})

	if len(visited) != 3 || visited[0] != "a" || visited[1] != "b" || visited[2] != "c" {
		t.Fatalf("visited = %v, want ascending keys", visited)
	}
	if got.MustFirst() != "b adjusted" {
		t.Fatalf("note = %q", got.MustFirst())
	}
	m := got.MustSecond()
	if len(m) != 3 || m["a"] != 10 || m["b"] != 20 || m["c"] != 30 {
		t.Fatalf("Gather = %v", m)
	}
}

func TestLift2KeepsLatestNote(t *testing.T) {
	t.Parallel()

	add := Lift2[string](func(a, b int) int { return a + b })

	got := add(Both("left", 1), Both("right", 2))
	if got.MustFirst() != "right" || got.MustSecond() != 3 {
		t.Fatalf("Lift2 = %v", got)
	}

	halted := add(First[string, int]("dead"), Both("right", 2))
	if !halted.IsFirst() || halted.MustFirst() != "dead" {
		t.Fatalf("Lift2 with bare First = %v", halted)
	}
}

func TestLift3(t *testing.T) {
	t.Parallel()

	sum := Lift3[string](func(a, b, c int) int { return a + b + c })

	got := sum(Second[string](1), Both("mid", 2), Second[string](3))
	if got.MustFirst() != "mid" || got.MustSecond() != 6 {
		t.Fatalf("Lift3 = %v", got)
	}
}
