package game

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/lucky-draw/components"
	"github.com/lixenwraith/lucky-draw/config"
	"github.com/lixenwraith/lucky-draw/constants"
	"github.com/lixenwraith/lucky-draw/engine"
	"github.com/lixenwraith/lucky-draw/i18n"
	"github.com/lixenwraith/lucky-draw/render"
	"github.com/lixenwraith/lucky-draw/status"
	"github.com/lixenwraith/lucky-draw/systems"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"
)

// Session orchestrates one draw: it owns the contact tracker, the countdown and the confetti
// All methods must be called from the loop goroutine
type Session struct {
	cfg       config.Config
	clock     clockwork.Clock
	scheduler *engine.Scheduler
	printer   *message.Printer
	sound     Sound

	base        *render.Layer
	celebration *render.Layer

	contacts  *systems.ContactSystem
	countdown *systems.CountdownSystem
	particles *systems.ParticleSystem

	mode       Mode
	id         uuid.UUID
	generation uint64
	requested  int
	accepting  bool
	policy     components.ParticlePolicy
	done       bool
	winners    []components.ParticipantComponent
	listeners  []func(WinnersReady)

	status     string
	field      string
	message    string
	messageErr bool

	reg     *status.Registry
	metrics sessionMetrics
}

// sessionMetrics caches registry pointers written every frame
type sessionMetrics struct {
	contacts     *atomic.Int64
	participants *atomic.Int64
	countdown    *atomic.Int64
	particles    *atomic.Int64
	generation   *atomic.Int64
	defused      *atomic.Int64
	accepting    *atomic.Bool
	mode         *status.AtomicString
	status       *status.AtomicString
}

// NewSession creates an idle session drawing onto base (participants, countdown) and celebration (confetti)
// sound and reg may be nil
func NewSession(cfg config.Config, scheduler *engine.Scheduler, base, celebration *render.Layer, sound Sound, reg *status.Registry) (*Session, error) {
	printer, err := i18n.NewPrinter(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("session printer: %w", err)
	}
	if sound == nil {
		sound = silentSound{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	s := &Session{
		cfg:         cfg,
		clock:       scheduler.Clock(),
		scheduler:   scheduler,
		printer:     printer,
		sound:       sound,
		base:        base,
		celebration: celebration,
		reg:         reg,
		metrics: sessionMetrics{
			contacts:     reg.Ints.Get("draw.contacts"),
			participants: reg.Ints.Get("draw.participants"),
			countdown:    reg.Ints.Get("draw.countdown"),
			particles:    reg.Ints.Get("draw.particles"),
			generation:   reg.Ints.Get("draw.generation"),
			defused:      reg.Ints.Get("draw.defused"),
			accepting:    reg.Bools.Get("draw.accepting"),
			mode:         reg.Strings.Get("draw.mode"),
			status:       reg.Strings.Get("draw.status"),
		},
	}

	s.contacts = systems.NewContactSystem(systems.ContactConfig{
		QualifyThreshold: cfg.QualifyThreshold,
		SettleDelay:      cfg.SettleDelay,
		Radius:           cfg.ContactRadius,
		PulseGrowth:      cfg.PulseGrowth,
		BorderWidth:      constants.ContactBorderWidth,
	}, scheduler, base)
	s.contacts.SetOverlay(s.paintCountdown)

	s.countdown = systems.NewCountdownSystem(scheduler, cfg.CountdownFrom, cfg.CountdownTick, s.onCountdownTick, s.onCountdownComplete)
	s.particles = systems.NewParticleSystem(celebration)

	s.publish()
	return s, nil
}

// OnWinners registers a listener for the winners-ready notification
func (s *Session) OnWinners(fn func(WinnersReady)) {
	s.listeners = append(s.listeners, fn)
}

// Start validates n and begins a fresh collecting session
// An invalid n leaves the session untouched
func (s *Session) Start(n int) error {
	if n < constants.MinWinners || n > constants.MaxWinners {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidWinnerCount, n, constants.MinWinners, constants.MaxWinners)
	}

	s.teardown()
	s.id = uuid.New()
	s.mode = ModeCollecting
	s.requested = n
	s.accepting = true
	s.policy = s.cfg.Policy()
	s.particles.SetPolicy(s.policy)
	s.status = s.printer.Sprintf(i18n.KeyStatusTarget, n)
	s.field = ""
	s.showMessage(s.printer.Sprintf(i18n.KeyInstruction), false)

	gen := s.generation
	s.scheduler.After(s.cfg.MessageDuration, func() {
		if gen != s.generation {
			return
		}
		s.hideMessage()
	})

	log.Info().
		Str("session_id", s.id.String()).
		Uint64("generation", s.generation).
		Int("winners", n).
		Str("policy", s.policy.String()).
		Msg("session started")

	s.publish()
	return nil
}

// Reset returns to idle from any mode, cancelling every pending callback
func (s *Session) Reset() {
	prev := s.mode
	s.teardown()
	s.mode = ModeIdle
	s.id = uuid.Nil
	s.requested = 0
	s.status = ""
	s.hideMessage()

	log.Info().
		Uint64("generation", s.generation).
		Str("from", prev.String()).
		Msg("session reset")

	s.publish()
}

// teardown clears every component and advances the generation
func (s *Session) teardown() {
	s.generation = s.scheduler.NextGeneration()
	s.contacts.Reset()
	s.countdown.Reset()
	s.particles.Clear()
	s.base.Clear()
	s.accepting = false
	s.done = false
	s.winners = nil
}

// ContactBegin handles a new contact, ignored outside the collecting window
func (s *Session) ContactBegin(id components.ContactID, pos components.Point) {
	if !s.accepting {
		return
	}
	if !s.contacts.Begin(id, pos, s.clock.Now()) {
		return
	}
	s.sound.Press()
	s.hideMessage()

	// Fresh input pre-empts the countdown, the gate is re-checked on the next release
	if s.countdown.Cancel() {
		s.mode = ModeCollecting
		s.contacts.RepaintParticipants()
		log.Debug().Str("session_id", s.id.String()).Int64("contact", int64(id)).Msg("countdown pre-empted")
	}
}

// ContactMove follows a held contact
func (s *Session) ContactMove(id components.ContactID, pos components.Point) {
	if !s.accepting {
		return
	}
	s.contacts.Move(id, pos)
}

// ContactEnd releases a contact and re-checks the countdown gate
func (s *Session) ContactEnd(id components.ContactID) {
	if !s.accepting {
		return
	}
	_, qualified, tracked := s.contacts.End(id, s.clock.Now())
	if !tracked {
		return
	}
	if qualified {
		s.sound.Qualified()
	}

	if s.contacts.ParticipantCount() > s.requested {
		s.mode = ModeCountingDown
		s.countdown.Start()
	}
}

// paintCountdown overlays the remaining count after a participant repaint
func (s *Session) paintCountdown(layer *render.Layer) {
	st := s.countdown.State()
	if !st.Active {
		return
	}
	layer.DrawDigits(strconv.Itoa(st.Remaining), render.CountdownColor)
}

func (s *Session) onCountdownTick(remaining int) {
	s.contacts.RepaintParticipants()
	s.sound.Tick(remaining)
}

// onCountdownComplete draws the winners and starts the celebration
func (s *Session) onCountdownComplete() {
	pool := s.contacts.Participants()
	winners, rest := systems.Select(pool, s.requested)
	s.contacts.ReplaceParticipants(rest)
	s.contacts.Freeze()

	s.winners = winners
	s.accepting = false
	s.mode = ModeCelebrating
	s.status = ""
	s.paintWinners()

	colors := make([]components.ColorTag, constants.PaletteSize)
	for i := range colors {
		colors[i] = components.ColorTag(i)
	}
	s.particles.Spawn(s.cfg.ConfettiCount, colors)
	s.sound.Fanfare()

	if s.policy == components.PolicyWrap {
		gen := s.generation
		s.scheduler.After(s.cfg.CelebrationDuration, func() {
			if gen != s.generation {
				return
			}
			s.endCelebration()
		})
	}

	log.Info().
		Str("session_id", s.id.String()).
		Uint64("generation", s.generation).
		Int("winners", len(winners)).
		Int("remaining", len(rest)).
		Msg("winners selected")

	ev := WinnersReady{
		SessionID:  s.id,
		Generation: s.generation,
		Requested:  s.requested,
		Winners:    append([]components.ParticipantComponent(nil), winners...),
	}
	for _, fn := range s.listeners {
		fn(ev)
	}
}

func (s *Session) paintWinners() {
	s.base.Clear()
	for _, w := range s.winners {
		s.base.FillCircle(w.Position, s.cfg.ContactRadius, render.PaletteColor(w.Color), constants.WinnerBorderWidth)
	}
}

// endCelebration tears the batch down and re-exposes reset
func (s *Session) endCelebration() {
	if s.done {
		return
	}
	s.done = true
	s.particles.Clear()
	log.Debug().Str("session_id", s.id.String()).Msg("celebration ended")
}

// Frame advances every time-driven component, called once per loop tick
func (s *Session) Frame(now time.Time, dt time.Duration) {
	if s.accepting {
		s.contacts.Update(now)
	}

	if s.mode == ModeCelebrating && !s.done {
		if s.particles.Count() > 0 {
			s.particles.Advance(dt)
			s.particles.Render()
		}
		if s.policy == components.PolicyRemove && s.particles.Count() == 0 {
			s.endCelebration()
		}
	}

	s.publish()
}

// Redraw repaints the base layer after a resize
func (s *Session) Redraw() {
	if s.mode == ModeCelebrating {
		s.paintWinners()
		return
	}
	s.contacts.RepaintParticipants()
}

// publish copies live state into the status registry
func (s *Session) publish() {
	s.metrics.contacts.Store(int64(s.contacts.ActiveCount()))
	s.metrics.participants.Store(int64(s.contacts.ParticipantCount()))
	s.metrics.countdown.Store(int64(s.countdown.State().Remaining))
	s.metrics.particles.Store(int64(s.particles.Count()))
	s.metrics.generation.Store(int64(s.generation))
	s.metrics.defused.Store(int64(s.scheduler.Defused()))
	s.metrics.accepting.Store(s.accepting)
	s.metrics.mode.Store(s.mode.String())
	s.metrics.status.Store(s.status)
}

// Mode returns the current session mode
func (s *Session) Mode() Mode {
	return s.mode
}

// ID returns the current session id, uuid.Nil while idle
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Generation returns the generation of the current session
func (s *Session) Generation() uint64 {
	return s.generation
}

// Requested returns the target winner count
func (s *Session) Requested() int {
	return s.requested
}

// Accepting reports whether contact events are processed
func (s *Session) Accepting() bool {
	return s.accepting
}

// Participants returns the registered set
func (s *Session) Participants() []components.ParticipantComponent {
	return s.contacts.Participants()
}

// ActiveContacts returns the number of held contacts
func (s *Session) ActiveContacts() int {
	return s.contacts.ActiveCount()
}

// Contact returns a held contact by id
func (s *Session) Contact(id components.ContactID) (components.ContactComponent, bool) {
	return s.contacts.Contact(id)
}

// Countdown returns the countdown state
func (s *Session) Countdown() components.CountdownComponent {
	return s.countdown.State()
}

// Winners returns the drawn winners, nil before selection
func (s *Session) Winners() []components.ParticipantComponent {
	return append([]components.ParticipantComponent(nil), s.winners...)
}

// Particles returns the live confetti count
func (s *Session) Particles() int {
	return s.particles.Count()
}

// CelebrationDone reports whether the confetti batch has ended
func (s *Session) CelebrationDone() bool {
	return s.done
}

// ResetAvailable reports whether the reset affordance is shown
func (s *Session) ResetAvailable() bool {
	switch s.mode {
	case ModeCollecting, ModeCountingDown:
		return true
	case ModeCelebrating:
		return s.done
	default:
		return false
	}
}

// Status returns the human readable winner target, empty once winners are drawn
func (s *Session) Status() string {
	return s.status
}
