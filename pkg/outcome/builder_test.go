package outcome

import (
	"testing"
)

func TestSliceBuilder(t *testing.T) {
	t.Parallel()

	b := NewSliceBuilder[int](2)
	b.Add(1)
	b.Add(2)
	b.Add(3)
	got := b.Finish()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("slice builder = %v, want [1 2 3]", got)
	}
}

func TestMapBuilder(t *testing.T) {
	t.Parallel()

	b := NewMapBuilder[string, int](2)
	b.Add(Entry[string, int]{Key: "a", Val: 1})
	b.Add(Entry[string, int]{Key: "b", Val: 2})
	b.Add(Entry[string, int]{Key: "a", Val: 3})
	got := b.Finish()
	if len(got) != 2 || got["a"] != 3 || got["b"] != 2 {
		t.Fatalf("map builder = %v, want map[a:3 b:2]", got)
	}
}

func TestDiscardBuilder(t *testing.T) {
	t.Parallel()

	b := NewDiscardBuilder[int]()
	b.Add(1)
	b.Add(2)
	_ = b.Finish()
}
