package engine

import (
	"container/heap"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// TaskID identifies a scheduled callback for cancellation
type TaskID uint64

// task is one deferred callback; every > 0 makes it repeat
type task struct {
	id    TaskID
	due   time.Time
	every time.Duration
	gen   uint64
	seq   uint64
	fn    func()
	index int
}

// taskQueue orders tasks by due time, then by insertion order
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs deferred callbacks against a shared clock
// Nothing fires on its own: the render loop calls RunDue once per frame, so every callback
// executes on the loop goroutine. Each task captures the generation current at scheduling
// time and is discarded unrun if the generation moved on before it became due
type Scheduler struct {
	mu    sync.Mutex
	clock clockwork.Clock

	queue taskQueue
	byID  map[TaskID]*task

	nextID     TaskID
	seq        uint64
	generation uint64

	// defused counts tasks dropped by a generation mismatch
	defused uint64
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock clockwork.Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		byID:  make(map[TaskID]*task),
	}
}

// Clock returns the scheduler's time source
func (s *Scheduler) Clock() clockwork.Clock {
	return s.clock
}

// Generation returns the current generation
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// NextGeneration invalidates every pending task and returns the new generation
func (s *Scheduler) NextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.defused += uint64(len(s.queue))
	for _, t := range s.queue {
		t.index = -1
	}
	s.queue = s.queue[:0]
	clear(s.byID)
	return s.generation
}

// After schedules fn once, d from now
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	return s.schedule(d, 0, fn)
}

// Every schedules fn repeatedly with period d, first run d from now
// Panics on a non-positive period
func (s *Scheduler) Every(d time.Duration, fn func()) TaskID {
	if d <= 0 {
		panic("engine: Every requires a positive period")
	}
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(d, every time.Duration, fn func()) TaskID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.seq++
	t := &task{
		id:    s.nextID,
		due:   s.clock.Now().Add(d),
		every: every,
		gen:   s.generation,
		seq:   s.seq,
		fn:    fn,
	}
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t.id
}

// Cancel removes a pending task, returns false if it already ran or was dropped
func (s *Scheduler) Cancel(id TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Pending returns the number of queued tasks
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Defused returns how many tasks were dropped for belonging to an old generation
func (s *Scheduler) Defused() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defused
}

// RunDue runs every task due at the current clock time and returns how many ran
// Callbacks run without the lock held and may schedule, cancel or advance the generation
func (s *Scheduler) RunDue() int {
	ran := 0
	for {
		fn, ok := s.popDue()
		if !ok {
			return ran
		}
		fn()
		ran++
	}
}

// popDue takes the next runnable callback, rescheduling repeating tasks
func (s *Scheduler) popDue() (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for len(s.queue) > 0 {
		t := s.queue[0]
		if t.due.After(now) {
			return nil, false
		}

		if t.gen != s.generation {
			heap.Pop(&s.queue)
			delete(s.byID, t.id)
			s.defused++
			continue
		}

		if t.every > 0 {
			t.due = t.due.Add(t.every)
			s.seq++
			t.seq = s.seq
			heap.Fix(&s.queue, t.index)
		} else {
			heap.Pop(&s.queue)
			delete(s.byID, t.id)
		}
		return t.fn, true
	}
	return nil, false
}
