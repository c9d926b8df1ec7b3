package format

import "math"

// Direction is the trend indicator paired with a change value.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Arrow returns the glyph drawn next to a delta.
func (d Direction) Arrow() string {
	if d == Down {
		return "↘"
	}
	return "↗"
}

// Delta is a formatted change: an explicit sign, the absolute magnitude as a
// one-decimal percentage, and the matching direction.
type Delta struct {
	Sign      string
	Magnitude string
	Direction Direction
}

// String returns the signed form, e.g. "+8.4%".
func (d Delta) String() string {
	return d.Sign + d.Magnitude
}

// Positive reports whether the delta is rendered as non-negative.
func (d Delta) Positive() bool {
	return d.Direction == Up
}

// Change formats a signed percentage delta. Sign and direction come from the
// same comparison; zero counts as non-negative.
func (f *Formatter) Change(change float64) Delta {
	negative := change < 0

	d := Delta{
		Sign:      "+",
		Magnitude: f.Percentage(math.Abs(change)),
		Direction: Up,
	}
	if negative {
		d.Sign = "-"
		d.Direction = Down
	}
	return d
}
