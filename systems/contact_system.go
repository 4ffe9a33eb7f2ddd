package systems

import (
	"time"

	"github.com/lixenwraith/lucky-draw/components"
	"github.com/lixenwraith/lucky-draw/constants"
	"github.com/lixenwraith/lucky-draw/engine"
	"github.com/lixenwraith/lucky-draw/render"
	"github.com/rs/zerolog/log"
)

// ContactConfig holds the contact timing and geometry
type ContactConfig struct {
	QualifyThreshold time.Duration
	SettleDelay      time.Duration
	Radius           float64
	PulseGrowth      float64
	BorderWidth      float64
}

// DefaultContactConfig returns the canonical constants
func DefaultContactConfig() ContactConfig {
	return ContactConfig{
		QualifyThreshold: constants.QualifyThreshold,
		SettleDelay:      constants.SettleDelay,
		Radius:           constants.ContactRadius,
		PulseGrowth:      constants.PulseGrowth,
		BorderWidth:      constants.ContactBorderWidth,
	}
}

// ContactSystem tracks held contacts and the registered participant set
// Event handlers and Update are called from the loop goroutine only
type ContactSystem struct {
	cfg       ContactConfig
	scheduler *engine.Scheduler
	layer     *render.Layer

	active     map[components.ContactID]*components.ContactComponent
	order      []components.ContactID
	registered []components.ParticipantComponent
	nextColor  int

	// epoch invalidates settle repaints scheduled before the last Reset
	epoch uint64

	// overlay repaints anything owned by others on top of a settle repaint
	overlay func(layer *render.Layer)
}

// NewContactSystem creates a tracker painting onto layer
func NewContactSystem(cfg ContactConfig, scheduler *engine.Scheduler, layer *render.Layer) *ContactSystem {
	return &ContactSystem{
		cfg:       cfg,
		scheduler: scheduler,
		layer:     layer,
		active:    make(map[components.ContactID]*components.ContactComponent),
	}
}

// SetOverlay registers a painter run after every participant repaint
func (s *ContactSystem) SetOverlay(fn func(layer *render.Layer)) {
	s.overlay = fn
}

// Begin starts tracking a contact, returns false for an id that is already tracked
func (s *ContactSystem) Begin(id components.ContactID, pos components.Point, now time.Time) bool {
	if _, exists := s.active[id]; exists {
		log.Debug().Int64("contact", int64(id)).Msg("duplicate begin ignored")
		return false
	}

	c := &components.ContactComponent{
		ID:         id,
		Position:   pos,
		Color:      components.ColorTag(s.nextColor % constants.PaletteSize),
		PressStart: now,
		Painted:    pos,
		HasPaint:   true,
	}
	s.nextColor++
	s.active[id] = c
	s.order = append(s.order, id)

	s.layer.FillCircle(pos, s.cfg.Radius, render.PaletteColor(c.Color), 0)
	return true
}

// Move updates the position of a tracked contact
func (s *ContactSystem) Move(id components.ContactID, pos components.Point) bool {
	c, ok := s.active[id]
	if !ok {
		return false
	}
	c.Position = pos
	return true
}

// End releases a contact
// A contact held at least the qualify threshold is registered and returned with qualified=true
// tracked is false when the id was unknown
func (s *ContactSystem) End(id components.ContactID, now time.Time) (p components.ParticipantComponent, qualified, tracked bool) {
	c, ok := s.active[id]
	if !ok {
		return p, false, false
	}
	s.remove(id)

	held := c.Held(now)
	s.clearContact(c)

	if held >= s.cfg.QualifyThreshold {
		p = components.ParticipantComponent{
			ID:       c.ID,
			Position: c.Position,
			Color:    c.Color,
			Held:     held,
		}
		s.registered = append(s.registered, p)
		s.layer.FillCircle(p.Position, s.cfg.Radius, render.PaletteColor(p.Color), s.cfg.BorderWidth)
		qualified = true
	} else {
		s.RepaintParticipants()
	}

	epoch := s.epoch
	s.scheduler.After(s.cfg.SettleDelay, func() {
		if epoch != s.epoch {
			return
		}
		s.RepaintParticipants()
	})

	log.Debug().
		Int64("contact", int64(id)).
		Dur("held", held).
		Bool("qualified", qualified).
		Int("registered", len(s.registered)).
		Msg("contact released")

	return p, qualified, true
}

func (s *ContactSystem) remove(id components.ContactID) {
	delete(s.active, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// clearContact erases the largest area the contact can have painted
func (s *ContactSystem) clearContact(c *components.ContactComponent) {
	if c.HasPaint {
		s.layer.ClearCircle(c.Painted, s.cfg.Radius+s.cfg.PulseGrowth)
	}
}

// Update repaints every active contact from its elapsed hold time
func (s *ContactSystem) Update(now time.Time) {
	palette := constants.PaletteSize
	for _, id := range s.order {
		c := s.active[id]
		s.clearContact(c)

		if c.Phase(now, s.cfg.QualifyThreshold) == components.PhaseQualified {
			s.layer.FillCircle(c.Position, s.cfg.Radius, render.PaletteColor(c.Color), s.cfg.BorderWidth)
		} else {
			progress := c.Progress(now, s.cfg.QualifyThreshold)
			radius := s.cfg.Radius + progress*s.cfg.PulseGrowth
			color := components.ColorTag(int(progress*float64(palette)) % palette)
			s.layer.FillCircle(c.Position, radius, render.PaletteColor(color), 0)
		}
		c.Painted = c.Position
		c.HasPaint = true
	}
}

// RepaintParticipants clears the layer and draws every registered participant
func (s *ContactSystem) RepaintParticipants() {
	s.layer.Clear()
	for _, p := range s.registered {
		s.layer.FillCircle(p.Position, s.cfg.Radius, render.PaletteColor(p.Color), s.cfg.BorderWidth)
	}
	for _, c := range s.active {
		c.HasPaint = false
	}
	if s.overlay != nil {
		s.overlay(s.layer)
	}
}

// Participants returns a copy of the registered set in registration order
func (s *ContactSystem) Participants() []components.ParticipantComponent {
	out := make([]components.ParticipantComponent, len(s.registered))
	copy(out, s.registered)
	return out
}

// ParticipantCount returns the registered set size
func (s *ContactSystem) ParticipantCount() int {
	return len(s.registered)
}

// ReplaceParticipants swaps the registered set, used after winners are drawn from it
func (s *ContactSystem) ReplaceParticipants(rest []components.ParticipantComponent) {
	s.registered = append(s.registered[:0], rest...)
}

// ActiveCount returns the number of held contacts
func (s *ContactSystem) ActiveCount() int {
	return len(s.active)
}

// Contact returns a copy of an active contact
func (s *ContactSystem) Contact(id components.ContactID) (components.ContactComponent, bool) {
	c, ok := s.active[id]
	if !ok {
		return components.ContactComponent{}, false
	}
	return *c, true
}

// Freeze defuses pending settle repaints, the layer is left to the caller
func (s *ContactSystem) Freeze() {
	s.epoch++
}

// Reset drops all contacts and participants and defuses pending settle repaints
func (s *ContactSystem) Reset() {
	s.epoch++
	clear(s.active)
	s.order = s.order[:0]
	s.registered = s.registered[:0]
	s.nextColor = 0
}
