package rng

// Scripted replays fixed values, for tests that need an exact sequence of
// random decisions. Ints are clamped into the requested range; once a script
// runs out it keeps returning the low end of the range (or 0 for floats).
type Scripted struct {
	ints   []int
	floats []float64

	IntCalls   int
	FloatCalls int
}

// NewScripted creates a scripted source that answers IntRange with ints in order.
func NewScripted(ints ...int) *Scripted {
	return &Scripted{ints: ints}
}

// WithFloats sets the values returned by Float64.
func (s *Scripted) WithFloats(floats ...float64) *Scripted {
	s.floats = floats
	return s
}

func (s *Scripted) IntRange(low, high int) int {
	defer func() { s.IntCalls++ }()
	if s.IntCalls >= len(s.ints) {
		return low
	}
	v := s.ints[s.IntCalls]
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func (s *Scripted) Float64() float64 {
	defer func() { s.FloatCalls++ }()
	if s.FloatCalls >= len(s.floats) {
		return 0
	}
	return s.floats[s.FloatCalls]
}
