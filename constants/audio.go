package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer size
	AudioBufferDuration = 100 * time.Millisecond
)

// Press Sound Timing
const (
	PressSoundDuration = 60 * time.Millisecond
	PressSoundAttack   = 5 * time.Millisecond
	PressSoundRelease  = 40 * time.Millisecond
)

// Bell Sound Timing
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Tick Sound Timing
const (
	TickSoundDuration = 80 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 60 * time.Millisecond
)

// Fanfare Sound Timing
const (
	FanfareNoteDuration = 140 * time.Millisecond
	FanfareLastDuration = 500 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareRelease      = 100 * time.Millisecond
)
