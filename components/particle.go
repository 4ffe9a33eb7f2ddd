package components

// ParticleComponent is one confetti rectangle
// Speed drives both the fall (pixels/s) and the spin (degrees/s)
type ParticleComponent struct {
	X, Y   float64
	Width  float64
	Height float64
	Speed  float64
	Angle  float64
	Color  ColorTag
}

// ParticlePolicy selects what happens to a particle leaving the surface
type ParticlePolicy uint8

const (
	// PolicyRemove drops particles below the surface, the batch ends when the pool empties
	PolicyRemove ParticlePolicy = iota
	// PolicyWrap moves particles back above the surface, a timer ends the batch
	PolicyWrap
)

// String returns the config name of the policy
func (p ParticlePolicy) String() string {
	if p == PolicyWrap {
		return "wrap"
	}
	return "remove"
}

// ParsePolicy maps a config name to a policy
func ParsePolicy(name string) (ParticlePolicy, bool) {
	switch name {
	case "remove", "":
		return PolicyRemove, true
	case "wrap":
		return PolicyWrap, true
	default:
		return PolicyRemove, false
	}
}
