package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/lucky-draw/constants"
)

// Wave is an oscillator shape evaluated over one period
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// at returns the wave value for phase in [0, 1)
func (w Wave) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Tone streams a fixed pitch for d, the same value on both channels
func Tone(freq float64, d time.Duration, w Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	step := freq / float64(rate)
	pos, phase := 0, 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := range n {
			v := w.at(phase)
			samples[i] = [2]float64{v, v}
			phase += step
			phase -= math.Floor(phase)
		}
		pos += n
		return n, true
	})
}

// envelopeGain is the linear attack/release amplitude at sample pos of total
func envelopeGain(pos, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		g = min(g, float64(total-pos)/float64(release))
	}
	return max(g, 0)
}

// Shape cuts s to d and applies a linear attack and release
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, att, rel := rate.N(d), rate.N(attack), rate.N(release)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		if len(samples) > total-pos {
			samples = samples[:total-pos]
		}
		n, ok := s.Stream(samples)
		for i := range n {
			g := envelopeGain(pos+i, total, att, rel)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		pos += n
		return n, ok
	})
}

// scaled multiplies s by a linear volume, zero or below is silent
func scaled(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: max(vol, 0) - 1}
}

func note(freq float64, d, attack, release time.Duration, w Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(freq, d, w, rate), d, attack, release, rate)
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreatePressSound generates a short blip for a new contact
func CreatePressSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	blip := note(660, constants.PressSoundDuration, constants.PressSoundAttack, constants.PressSoundRelease, WaveSine, rate)
	return scaled(blip, effectVolume(cfg, SoundPress))
}

// CreateBellSound generates a ding for a contact that qualified
func CreateBellSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.BellSoundDuration

	// A5 with a shorter octave partial
	body := note(880, d, constants.BellSoundAttack, constants.BellSoundFundamentalRelease, WaveSine, rate)
	shine := note(1760, d, constants.BellSoundAttack, constants.BellSoundOvertoneRelease, WaveSine, rate)

	return scaled(beep.Mix(scaled(body, 0.7), scaled(shine, 0.3)), effectVolume(cfg, SoundBell))
}

// CreateTickSound generates a countdown click, pitched up as remaining drops
func CreateTickSound(cfg *AudioConfig, remaining int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := 440 + float64(constants.CountdownFrom-remaining)*110
	click := note(freq, constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease, WaveSquare, rate)
	return scaled(click, effectVolume(cfg, SoundTick))
}

// fanfareNotes is a rising C major arpeggio ending on the octave
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// CreateFanfareSound generates the winner announcement
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, len(fanfareNotes))
	for i, freq := range fanfareNotes {
		d := constants.FanfareNoteDuration
		if i == len(fanfareNotes)-1 {
			d = constants.FanfareLastDuration
		}
		notes[i] = note(freq, d, constants.FanfareAttack, constants.FanfareRelease, WaveTriangle, rate)
	}
	return scaled(beep.Seq(notes...), effectVolume(cfg, SoundFanfare))
}
