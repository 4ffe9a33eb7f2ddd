package components

// CountdownComponent is the gating countdown before winner selection
// Zero value is inactive
type CountdownComponent struct {
	Active    bool
	Remaining int
}

// IsCounting reports whether the countdown is running
func (c CountdownComponent) IsCounting() bool {
	return c.Active
}
