package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/lucky-draw/constants"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		p = max(p, math.Abs(s[0]), math.Abs(s[1]))
	}
	return p
}

func TestToneLengthAndRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveTriangle} {
		samples := drain(Tone(440, 10*time.Millisecond, w, testRate))
		if len(samples) != testRate.N(10*time.Millisecond) {
			t.Errorf("wave %d: got %d samples, want %d", w, len(samples), testRate.N(10*time.Millisecond))
		}
		if p := peak(samples); p > 1 {
			t.Errorf("wave %d: peak %f out of range", w, p)
		}
		for i, s := range samples {
			if s[0] != s[1] {
				t.Fatalf("wave %d: sample %d differs between channels", w, i)
			}
		}
	}
}

func TestToneSquareIsBipolar(t *testing.T) {
	for _, s := range drain(Tone(220, 5*time.Millisecond, WaveSquare, testRate)) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %f, want ±1", s[0])
		}
	}
}

func TestToneDrainedStaysDrained(t *testing.T) {
	s := Tone(440, time.Millisecond, WaveSine, testRate)
	drain(s)
	if n, ok := s.Stream(make([][2]float64, 8)); n != 0 || ok {
		t.Errorf("Stream after end = (%d, %t), want (0, false)", n, ok)
	}
}

func TestEnvelopeGain(t *testing.T) {
	tests := []struct {
		name                        string
		pos, total, attack, release int
		want                       float64
	}{
		{"attack start", 0, 100, 10, 10, 0},
		{"attack mid", 5, 100, 10, 10, 0.5},
		{"sustain", 50, 100, 10, 10, 1},
		{"release mid", 95, 100, 10, 10, 0.5},
		{"no shaping", 0, 100, 0, 0, 1},
		{"overlap takes lower", 4, 10, 8, 8, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := envelopeGain(tt.pos, tt.total, tt.attack, tt.release); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("envelopeGain = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestShapeCutsAndRamps(t *testing.T) {
	long := Tone(100, 100*time.Millisecond, WaveSquare, testRate)
	samples := drain(Shape(long, 50*time.Millisecond, 20*time.Millisecond, 10*time.Millisecond, testRate))

	if len(samples) != testRate.N(50*time.Millisecond) {
		t.Fatalf("got %d samples, want %d", len(samples), testRate.N(50*time.Millisecond))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample %f, want silence at attack start", samples[0][0])
	}
	mid := samples[testRate.N(30*time.Millisecond)][0]
	if math.Abs(mid) != 1 {
		t.Errorf("sustain sample %f, want full amplitude", mid)
	}
}

func TestScaledZeroIsSilent(t *testing.T) {
	samples := drain(scaled(Tone(440, 5*time.Millisecond, WaveSquare, testRate), 0))
	if len(samples) == 0 {
		t.Fatal("expected samples")
	}
	if p := peak(samples); p != 0 {
		t.Errorf("peak %f, want 0", p)
	}
}

func TestSoundEffectsStream(t *testing.T) {
	cfg := DefaultAudioConfig()
	sounds := map[string]beep.Streamer{
		"press":   CreatePressSound(cfg),
		"bell":    CreateBellSound(cfg),
		"tick":    CreateTickSound(cfg, 3),
		"fanfare": CreateFanfareSound(cfg),
	}

	for name, s := range sounds {
		t.Run(name, func(t *testing.T) {
			samples := drain(s)
			if len(samples) == 0 {
				t.Fatal("expected samples")
			}
			if p := peak(samples); p == 0 || p > 1 {
				t.Errorf("peak %f, want within (0, 1]", p)
			}
		})
	}
}

func TestFanfareLength(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	got := len(drain(CreateFanfareSound(cfg)))

	want := 3*rate.N(constants.FanfareNoteDuration) + rate.N(constants.FanfareLastDuration)
	if got != want {
		t.Errorf("got %d samples, want %d", got, want)
	}
}

func TestMasterVolumeZeroSilences(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	if p := peak(drain(CreatePressSound(cfg))); p != 0 {
		t.Errorf("peak %f, want 0", p)
	}
}
