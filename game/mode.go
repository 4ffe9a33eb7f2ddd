package game

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lixenwraith/lucky-draw/components"
)

// ErrInvalidWinnerCount reports a winner count outside [MinWinners, MaxWinners] or not a number
var ErrInvalidWinnerCount = errors.New("invalid winner count")

// Mode is the overall session state
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeCollecting
	ModeCountingDown
	ModeCelebrating
)

// String returns the mode name for logs and the debug overlay
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeCollecting:
		return "collecting"
	case ModeCountingDown:
		return "counting"
	case ModeCelebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// WinnersReady is delivered to listeners once winners are drawn
type WinnersReady struct {
	SessionID  uuid.UUID
	Generation uint64
	Requested  int
	Winners    []components.ParticipantComponent
}

// Sound receives the audible cues of a session
type Sound interface {
	Press()
	Qualified()
	Tick(remaining int)
	Fanfare()
}

type silentSound struct{}

func (silentSound) Press()     {}
func (silentSound) Qualified() {}
func (silentSound) Tick(int)   {}
func (silentSound) Fanfare()   {}
