package audio

import "github.com/lixenwraith/lucky-draw/constants"

// SoundType identifies one sound effect
type SoundType int

const (
	SoundPress SoundType = iota
	SoundBell
	SoundTick
	SoundFanfare
	soundCount
)

// String returns the effect name used in config and logs
func (s SoundType) String() string {
	switch s {
	case SoundPress:
		return "press"
	case SoundBell:
		return "bell"
	case SoundTick:
		return "tick"
	case SoundFanfare:
		return "fanfare"
	default:
		return "unknown"
	}
}

// AudioConfig holds mixer levels
type AudioConfig struct {
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundCount]float64
}

// DefaultAudioConfig returns balanced levels for all effects
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: 0.5,
		EffectVolumes: [soundCount]float64{
			SoundPress:   0.4,
			SoundBell:    0.6,
			SoundTick:    0.5,
			SoundFanfare: 0.8,
		},
	}
}
