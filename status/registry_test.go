package status

import (
	"strings"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("draw.participants")
	b := r.Ints.Get("draw.participants")
	if a != b {
		t.Fatal("Expected the same pointer for repeated Get")
	}
	a.Store(4)
	if b.Load() != 4 {
		t.Errorf("Expected 4, got %d", b.Load())
	}
	if !r.Ints.Has("draw.participants") {
		t.Error("Expected key to be registered")
	}
}

func TestAtomicStringTruncatesRunes(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected zero value to be empty")
	}

	long := strings.Repeat("뽑", MaxStringLen+5)
	s.Store(long)
	if got := []rune(s.Load()); len(got) != MaxStringLen {
		t.Errorf("Expected %d runes, got %d", MaxStringLen, len(got))
	}
}

func TestRegistryLineIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.count").Store(2)
	r.Ints.Get("a.count").Store(1)
	r.Bools.Get("c.flag").Store(true)

	if got, want := r.Line(), "a.count=1 b.count=2 c.flag=true"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}

func TestMetricMapSortedStopsEarly(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"c", "a", "b"} {
		*m.Get(k) = len(k)
	}

	var seen []string
	for k := range m.Sorted() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	if got := strings.Join(seen, ","); got != "a,b" {
		t.Errorf("Expected a,b, got %s", got)
	}
}
