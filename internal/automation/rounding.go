package automation

import (
	"fmt"
	"math"
)

// RoundingMode selects how a scaled position is rounded to a whole sample.
type RoundingMode int

const (
	// RoundHalfEven rounds ties to the nearest even sample.
	RoundHalfEven RoundingMode = iota
	// RoundHalfAway rounds ties away from zero.
	RoundHalfAway
)

// ParseRoundingMode accepts "half-even" and "half-away". An empty string
// selects RoundHalfEven.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch s {
	case "", "half-even":
		return RoundHalfEven, nil
	case "half-away":
		return RoundHalfAway, nil
	}
	return 0, fmt.Errorf("unknown rounding mode %q (want half-even or half-away)", s)
}

func (m RoundingMode) String() string {
	if m == RoundHalfAway {
		return "half-away"
	}
	return "half-even"
}

func (m RoundingMode) round(x float64) float64 {
	if m == RoundHalfAway {
		return math.Round(x)
	}
	return math.RoundToEven(x)
}
