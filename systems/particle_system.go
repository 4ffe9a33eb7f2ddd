package systems

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/lucky-draw/components"
	"github.com/lixenwraith/lucky-draw/constants"
	"github.com/lixenwraith/lucky-draw/render"
)

// ParticleSystem owns the confetti pool drawn on the celebration layer
type ParticleSystem struct {
	layer     *render.Layer
	policy    components.ParticlePolicy
	particles []components.ParticleComponent
}

// NewParticleSystem creates an empty pool painting onto layer
func NewParticleSystem(layer *render.Layer) *ParticleSystem {
	return &ParticleSystem{
		layer:     layer,
		particles: make([]components.ParticleComponent, 0, constants.ConfettiCount),
	}
}

// SetPolicy fixes the end-of-life policy, applied from the next Advance on
func (s *ParticleSystem) SetPolicy(p components.ParticlePolicy) {
	s.policy = p
}

// Policy returns the active end-of-life policy
func (s *ParticleSystem) Policy() components.ParticlePolicy {
	return s.policy
}

// Spawn replaces the pool with count particles seeded above the surface
// Each particle draws one colour uniformly from colors
func (s *ParticleSystem) Spawn(count int, colors []components.ColorTag) {
	w, h := s.layer.SurfaceSize()
	s.particles = s.particles[:0]
	if len(colors) == 0 {
		return
	}

	for i := 0; i < count; i++ {
		s.particles = append(s.particles, components.ParticleComponent{
			X:      rand.Float64() * w,
			Y:      rand.Float64()*h - h,
			Width:  rand.Float64()*constants.ConfettiWidthRange + constants.ConfettiMinWidth,
			Height: rand.Float64()*constants.ConfettiHeightRange + constants.ConfettiMinHeight,
			Speed:  rand.Float64()*constants.ConfettiSpeedRange + constants.ConfettiMinSpeed,
			Angle:  rand.Float64() * 360,
			Color:  colors[rand.IntN(len(colors))],
		})
	}
}

// Advance moves every particle by its speed for dt, spin uses the same speed
// Returns the number of live particles
func (s *ParticleSystem) Advance(dt time.Duration) int {
	_, h := s.layer.SurfaceSize()
	step := dt.Seconds()

	alive := 0
	for i := range s.particles {
		p := &s.particles[i]
		p.Y += p.Speed * step
		p.Angle += p.Speed * step

		if p.Y > h {
			if s.policy == components.PolicyRemove {
				continue
			}
			p.Y -= h + p.Height
		}

		s.particles[alive] = *p
		alive++
	}
	s.particles = s.particles[:alive]
	return alive
}

// Render clears the celebration layer and paints every live particle
func (s *ParticleSystem) Render() {
	s.layer.Clear()
	for i := range s.particles {
		p := &s.particles[i]
		s.layer.FillRotatedRect(p.X, p.Y, p.Width, p.Height, p.Angle, render.PaletteColor(p.Color))
	}
}

// Count returns the live particle count
func (s *ParticleSystem) Count() int {
	return len(s.particles)
}

// Particles returns a copy of the pool
func (s *ParticleSystem) Particles() []components.ParticleComponent {
	out := make([]components.ParticleComponent, len(s.particles))
	copy(out, s.particles)
	return out
}

// Clear tears the batch down and clears the celebration layer
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
	s.layer.Clear()
}
