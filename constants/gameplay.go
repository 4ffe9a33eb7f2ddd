package constants

import "time"

// Contact Timing
const (
	// QualifyThreshold is the minimum hold duration for a contact to become a participant
	QualifyThreshold = 3000 * time.Millisecond

	// SettleDelay is the delay of the one-shot participant repaint after a release
	SettleDelay = 500 * time.Millisecond
)

// Countdown
const (
	// CountdownFrom is the first value shown when the countdown starts
	CountdownFrom = 5

	// CountdownTick is the interval between countdown decrements
	CountdownTick = 1000 * time.Millisecond
)

// Session
const (
	MinWinners = 1
	MaxWinners = 20

	// MessageDuration is how long the instruction message stays visible after start
	MessageDuration = 10000 * time.Millisecond

	// CelebrationDuration ends a wrapping confetti batch
	CelebrationDuration = 5000 * time.Millisecond
)

// Contact Geometry (surface pixels)
const (
	// ContactRadius is the radius of a held or registered contact
	ContactRadius = 32.0

	// PulseGrowth is the radius gained over the qualify threshold
	PulseGrowth = 10.0

	// ContactBorderWidth is the ring width of a qualified contact
	ContactBorderWidth = 4.0

	// WinnerBorderWidth is the ring width of a selected winner
	WinnerBorderWidth = 8.0
)

// Confetti
const (
	ConfettiCount = 300

	ConfettiMinWidth   = 5.0
	ConfettiWidthRange = 10.0

	ConfettiMinHeight   = 10.0
	ConfettiHeightRange = 20.0

	// Fall speed in surface pixels per second, spin shares the same value in degrees per second
	ConfettiMinSpeed   = 120.0
	ConfettiSpeedRange = 180.0
)
