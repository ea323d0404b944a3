package random

// Draw records one call made against a Script.
type Draw struct {
	Lo, Hi, Value int
}

// Script is a Provider that replays a fixed sequence of values.
//
// Values outside the requested range are clamped into it. Once the sequence
// is exhausted every call returns the low bound. Calls are recorded in Draws
// so tests can assert the order in which ranges were requested.
type Script struct {
	Values []int
	Draws  []Draw
	next   int
}

// NewScript returns a Script replaying values in order.
func NewScript(values ...int) *Script {
	return &Script{Values: values}
}

// IntRange implements Provider.
func (s *Script) IntRange(lo, hi int) int {
	v := lo
	if s.next < len(s.Values) {
		v = s.Values[s.next]
		s.next++
	}
	if hi < lo {
		hi = lo
	}
	v = max(lo, min(v, hi))
	s.Draws = append(s.Draws, Draw{Lo: lo, Hi: hi, Value: v})
	return v
}

// Remaining reports how many scripted values have not been consumed.
func (s *Script) Remaining() int {
	return len(s.Values) - s.next
}

var _ Provider = (*Script)(nil)
