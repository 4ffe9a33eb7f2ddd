package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
)

// EventHandler consumes one input event, returning false to stop the loop
type EventHandler func(ev tcell.Event) bool

// FrameHandler advances and paints one frame
type FrameHandler func(now time.Time, dt time.Duration)

// Loop is the single scheduling primitive: input events and frame ticks are serialized
// on the goroutine calling Run, so everything they touch has one writer
type Loop struct {
	clock     clockwork.Clock
	scheduler *Scheduler
	interval  time.Duration

	events  <-chan tcell.Event
	onEvent EventHandler
	onFrame FrameHandler

	lastFrame time.Time
	frames    atomic.Uint64
}

// NewLoop creates a loop ticking every interval on the scheduler's clock
// events may be nil when no input source is attached
func NewLoop(scheduler *Scheduler, interval time.Duration, events <-chan tcell.Event, onEvent EventHandler, onFrame FrameHandler) *Loop {
	return &Loop{
		clock:     scheduler.Clock(),
		scheduler: scheduler,
		interval:  interval,
		events:    events,
		onEvent:   onEvent,
		onFrame:   onFrame,
	}
}

// Frames returns the number of frames stepped so far
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Step runs due deferred callbacks then advances one frame
func (l *Loop) Step() {
	now := l.clock.Now()
	var dt time.Duration
	if !l.lastFrame.IsZero() {
		dt = now.Sub(l.lastFrame)
	}
	l.lastFrame = now

	l.scheduler.RunDue()
	if l.onFrame != nil {
		l.onFrame(now, dt)
	}
	l.frames.Add(1)
}

// Run blocks until the context ends or the event handler asks to stop
func (l *Loop) Run(ctx context.Context) error {
	ticker := l.clock.NewTicker(l.interval)
	defer ticker.Stop()

	l.lastFrame = l.clock.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-l.events:
			if !ok {
				l.events = nil
				continue
			}
			if l.onEvent != nil && !l.onEvent(ev) {
				return nil
			}

		case <-ticker.Chan():
			l.Step()
		}
	}
}

// PumpEvents forwards screen events to out until the screen is finalized or ctx ends
// Finalizing the screen is what unblocks PollEvent
func PumpEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}
