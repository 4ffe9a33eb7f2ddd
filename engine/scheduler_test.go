package engine

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func newTestScheduler() (*Scheduler, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClock()
	return NewScheduler(clock), clock
}

func TestSchedulerAfter(t *testing.T) {
	s, clock := newTestScheduler()
	ran := 0
	s.After(500*time.Millisecond, func() { ran++ })

	clock.Advance(499 * time.Millisecond)
	if n := s.RunDue(); n != 0 || ran != 0 {
		t.Fatalf("ran early: RunDue=%d ran=%d", n, ran)
	}

	clock.Advance(time.Millisecond)
	if n := s.RunDue(); n != 1 || ran != 1 {
		t.Fatalf("RunDue=%d ran=%d, want 1", n, ran)
	}

	clock.Advance(time.Second)
	s.RunDue()
	if ran != 1 || s.Pending() != 0 {
		t.Errorf("one-shot ran %d times, pending %d", ran, s.Pending())
	}
}

func TestSchedulerOrder(t *testing.T) {
	s, clock := newTestScheduler()
	var order []int
	s.After(300*time.Millisecond, func() { order = append(order, 3) })
	s.After(100*time.Millisecond, func() { order = append(order, 1) })
	s.After(100*time.Millisecond, func() { order = append(order, 2) })

	clock.Advance(time.Second)
	s.RunDue()

	want := []int{1, 2, 3}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSchedulerEvery(t *testing.T) {
	s, clock := newTestScheduler()
	ticks := 0
	id := s.Every(time.Second, func() { ticks++ })

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		s.RunDue()
	}
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}

	// a late frame catches up on every missed period
	clock.Advance(2 * time.Second)
	s.RunDue()
	if ticks != 5 {
		t.Fatalf("ticks = %d after catch-up, want 5", ticks)
	}

	if !s.Cancel(id) {
		t.Fatal("Cancel returned false for a live task")
	}
	clock.Advance(time.Second)
	s.RunDue()
	if ticks != 5 {
		t.Errorf("cancelled task ran")
	}
	if s.Cancel(id) {
		t.Error("second Cancel returned true")
	}
}

func TestSchedulerEveryPanicsOnZeroPeriod(t *testing.T) {
	s, _ := newTestScheduler()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	s.Every(0, func() {})
}

func TestSchedulerCancelFromCallback(t *testing.T) {
	s, clock := newTestScheduler()
	ticks := 0
	var id TaskID
	id = s.Every(100*time.Millisecond, func() {
		ticks++
		if ticks == 2 {
			s.Cancel(id)
		}
	})

	clock.Advance(time.Second)
	s.RunDue()
	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d", s.Pending())
	}
}

func TestSchedulerNextGenerationDefuses(t *testing.T) {
	s, clock := newTestScheduler()
	ran := 0
	s.After(100*time.Millisecond, func() { ran++ })
	s.Every(100*time.Millisecond, func() { ran++ })

	gen := s.NextGeneration()
	if gen != 1 || s.Generation() != 1 {
		t.Fatalf("generation = %d", gen)
	}
	if s.Pending() != 0 {
		t.Fatalf("pending = %d after NextGeneration", s.Pending())
	}
	if s.Defused() != 2 {
		t.Errorf("defused = %d, want 2", s.Defused())
	}

	clock.Advance(time.Second)
	s.RunDue()
	if ran != 0 {
		t.Errorf("stale tasks ran %d times", ran)
	}
}

func TestSchedulerGenerationChangeInsideCallback(t *testing.T) {
	s, clock := newTestScheduler()
	ran := 0
	s.After(100*time.Millisecond, func() { s.NextGeneration() })
	s.After(100*time.Millisecond, func() { ran++ })

	clock.Advance(100 * time.Millisecond)
	s.RunDue()
	if ran != 0 {
		t.Error("task of the previous generation ran after the switch")
	}

	s.After(50*time.Millisecond, func() { ran++ })
	clock.Advance(50 * time.Millisecond)
	s.RunDue()
	if ran != 1 {
		t.Error("task of the new generation did not run")
	}
}
