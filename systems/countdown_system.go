package systems

import (
	"time"

	"github.com/lixenwraith/lucky-draw/components"
	"github.com/lixenwraith/lucky-draw/engine"
	"github.com/rs/zerolog/log"
)

// CountdownSystem gates winner selection behind a restartable countdown
// Inactive -> Counting(from) -> ... -> Counting(0) -> Inactive + complete
type CountdownSystem struct {
	scheduler *engine.Scheduler
	from      int
	tick      time.Duration

	state components.CountdownComponent
	task  engine.TaskID
	epoch uint64

	onTick     func(remaining int)
	onComplete func()
}

// NewCountdownSystem creates an inactive countdown
// onTick runs on start and after every decrement that does not complete
func NewCountdownSystem(scheduler *engine.Scheduler, from int, tick time.Duration, onTick func(remaining int), onComplete func()) *CountdownSystem {
	return &CountdownSystem{
		scheduler:  scheduler,
		from:       from,
		tick:       tick,
		onTick:     onTick,
		onComplete: onComplete,
	}
}

// State returns the current countdown state
func (s *CountdownSystem) State() components.CountdownComponent {
	return s.state
}

// Start (re)starts counting from the initial value
func (s *CountdownSystem) Start() {
	s.stop()
	s.epoch++
	epoch := s.epoch

	s.state = components.CountdownComponent{Active: true, Remaining: s.from}
	s.task = s.scheduler.Every(s.tick, func() {
		s.advance(epoch)
	})

	log.Debug().Int("from", s.from).Msg("countdown started")
	if s.onTick != nil {
		s.onTick(s.from)
	}
}

// Cancel pre-empts a running countdown, returns false if it was inactive
func (s *CountdownSystem) Cancel() bool {
	if !s.state.Active {
		return false
	}
	s.stop()
	s.epoch++
	log.Debug().Msg("countdown cancelled")
	return true
}

// Reset returns to inactive without reporting
func (s *CountdownSystem) Reset() {
	s.stop()
	s.epoch++
}

func (s *CountdownSystem) stop() {
	if s.task != 0 {
		s.scheduler.Cancel(s.task)
		s.task = 0
	}
	s.state = components.CountdownComponent{}
}

// advance is the periodic tick, stale epochs are ignored
func (s *CountdownSystem) advance(epoch uint64) {
	if epoch != s.epoch || !s.state.Active {
		return
	}

	s.state.Remaining--
	if s.state.Remaining > 0 {
		if s.onTick != nil {
			s.onTick(s.state.Remaining)
		}
		return
	}

	s.stop()
	s.epoch++
	log.Debug().Msg("countdown complete")
	if s.onComplete != nil {
		s.onComplete()
	}
}
