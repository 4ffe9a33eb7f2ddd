package components

import (
	"time"

	"github.com/lixenwraith/lucky-draw/constants"
)

// ContactID identifies one held contact, unique among active contacts only
type ContactID int64

// Point is a position in surface pixels
type Point struct {
	X, Y float64
}

// ColorTag is an index into constants.Palette
type ColorTag int

// Name returns the palette colour name, wrapping out-of-range tags
func (c ColorTag) Name() string {
	i := int(c) % constants.PaletteSize
	if i < 0 {
		i += constants.PaletteSize
	}
	return constants.Palette[i]
}

// Phase is the temporal stage of a contact
type Phase uint8

const (
	PhasePressing Phase = iota
	PhaseQualified
	PhaseReleased
)

// String returns the phase name for logs
func (p Phase) String() string {
	switch p {
	case PhasePressing:
		return "pressing"
	case PhaseQualified:
		return "qualified"
	case PhaseReleased:
		return "released"
	default:
		return "unknown"
	}
}

// ContactComponent represents one held touch
// Phase and pulse state are derived from PressStart on every read, nothing is stored per frame
type ContactComponent struct {
	ID         ContactID
	Position   Point
	Color      ColorTag
	PressStart time.Time

	// Painted is where the contact was last drawn, cleared before the next paint
	Painted  Point
	HasPaint bool
}

// Held returns how long the contact has been held at now
func (c *ContactComponent) Held(now time.Time) time.Duration {
	held := now.Sub(c.PressStart)
	if held < 0 {
		return 0
	}
	return held
}

// Progress returns held/threshold clamped to [0, 1]
func (c *ContactComponent) Progress(now time.Time, threshold time.Duration) float64 {
	if threshold <= 0 {
		return 1
	}
	p := float64(c.Held(now)) / float64(threshold)
	if p > 1 {
		return 1
	}
	return p
}

// Phase derives the contact phase from elapsed time
func (c *ContactComponent) Phase(now time.Time, threshold time.Duration) Phase {
	if c.Held(now) >= threshold {
		return PhaseQualified
	}
	return PhasePressing
}

// ParticipantComponent is a contact promoted at release, immutable once registered
type ParticipantComponent struct {
	ID       ContactID
	Position Point
	Color    ColorTag
	Held     time.Duration
}
