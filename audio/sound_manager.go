package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/lucky-draw/constants"
)

// SoundManager plays the draw's sound effects through one mixer
// All Play methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		cache: newSoundCache(beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		}),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether sounds reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Press plays the new contact blip
func (sm *SoundManager) Press() {
	sm.play(func() beep.Streamer {
		return sm.cache.get(SoundPress, func() beep.Streamer { return CreatePressSound(sm.cfg) })
	})
}

// Qualified plays the bell for a registered participant
func (sm *SoundManager) Qualified() {
	sm.play(func() beep.Streamer {
		return sm.cache.get(SoundBell, func() beep.Streamer { return CreateBellSound(sm.cfg) })
	})
}

// Tick plays one countdown click, pitched by remaining and never cached
func (sm *SoundManager) Tick(remaining int) {
	sm.play(func() beep.Streamer { return CreateTickSound(sm.cfg, remaining) })
}

// Fanfare plays the winner announcement
func (sm *SoundManager) Fanfare() {
	sm.play(func() beep.Streamer {
		return sm.cache.get(SoundFanfare, func() beep.Streamer { return CreateFanfareSound(sm.cfg) })
	})
}
