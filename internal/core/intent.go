package core

// Intent is the normalized movement intent for a single simulation tick.
// The platform layer reduces raw keyboard and mouse events into this form;
// the simulation never sees key codes or terminal coordinates.
type Intent struct {
	// Horizontal is the held horizontal direction: -1 (left), 0, or 1 (right).
	Horizontal int

	// Vertical is the held vertical direction: -1 (up), 0, or 1 (down).
	Vertical int

	// Pointer is the optional pointer-follow target in field units.
	Pointer Pointer
}

// Pointer describes an engaged pointer target.
type Pointer struct {
	Active bool // Whether the pointer is currently engaged (button held)
	X, Y   float64
}

// IsZero reports whether the intent requests no movement at all.
func (in Intent) IsZero() bool {
	return in.Horizontal == 0 && in.Vertical == 0 && !in.Pointer.Active
}

// clampAxis restricts an axis value to {-1, 0, 1}.
func clampAxis(v int) int {
	return Clamp(v, -1, 1)
}

// Normalized returns the intent with both axes clamped to {-1, 0, 1}.
func (in Intent) Normalized() Intent {
	in.Horizontal = clampAxis(in.Horizontal)
	in.Vertical = clampAxis(in.Vertical)
	return in
}
