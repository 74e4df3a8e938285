package automation

import (
	"fmt"
	"math"

	"github.com/ardour-tools/ardourfix/internal/xmltree"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// RescaleOptions tunes Rescale.
type RescaleOptions struct {
	Rounding RoundingMode
}

// RescaleStats counts what Rescale touched.
type RescaleStats struct {
	Multiplier float64
	Routes     int
	Lists      int
	Events     int
}

// ValidateBPM fails with ardourfix.ErrInvalidBPM unless bpm is finite and positive.
func ValidateBPM(bpm float64) error {
	if math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm <= 0 {
		return fmt.Errorf("%w: %v must be a positive number", ardourfix.ErrInvalidBPM, bpm)
	}
	return nil
}

// MIDIRoutes returns every Route below root whose default-type is midi.
func MIDIRoutes(root *xmltree.Element) []*xmltree.Element {
	var out []*xmltree.Element
	for _, r := range root.Descendants(ardourfix.TagRoute) {
		if v, ok := r.Get(ardourfix.AttrDefaultType); ok && v == ardourfix.RouteTypeMIDI {
			out = append(out, r)
		}
	}
	return out
}

// AutomationLists returns every AutomationList below route.
func AutomationLists(route *xmltree.Element) []*xmltree.Element {
	return route.Descendants(ardourfix.TagAutomationList)
}

// Rescale multiplies the position of every automation event on MIDI routes
// by oldBPM/newBPM. Audio routes and lists without event text are untouched.
// The tree is only modified for lists that decode successfully; a malformed
// list aborts the pass, and the caller is expected to discard the tree.
func Rescale(root *xmltree.Element, oldBPM, newBPM float64, opts RescaleOptions) (RescaleStats, error) {
	if err := ValidateBPM(oldBPM); err != nil {
		return RescaleStats{}, err
	}
	if err := ValidateBPM(newBPM); err != nil {
		return RescaleStats{}, err
	}

	stats := RescaleStats{Multiplier: oldBPM / newBPM}
	for _, route := range MIDIRoutes(root) {
		stats.Routes++
		for _, list := range AutomationLists(route) {
			n, err := shiftEvents(list, stats.Multiplier, opts.Rounding)
			if err != nil {
				return stats, fmt.Errorf("route %q: %w", route.Attr(ardourfix.AttrID), err)
			}
			if n >= 0 {
				stats.Lists++
				stats.Events += n
			}
		}
	}
	return stats, nil
}

// shiftEvents rescales one list and returns the number of events, or -1 when
// the list has nothing to rescale.
func shiftEvents(list *xmltree.Element, multiplier float64, mode RoundingMode) (int, error) {
	eventsElem := list.Find(ardourfix.TagEvents)
	if eventsElem == nil || eventsElem.Text == "" {
		return -1, nil
	}

	events, err := Decode(eventsElem.Text)
	if err != nil {
		return 0, err
	}

	for i, e := range events {
		scaled := mode.round(float64(e.Position) * multiplier)
		if scaled >= math.MaxInt64 || scaled < math.MinInt64 {
			return 0, &ardourfix.MalformedEventError{
				Line: fmt.Sprintf("%d %s", e.Position, e.Value),
				Err:  fmt.Errorf("position out of range after scaling by %v", multiplier),
			}
		}
		events[i].Position = int64(scaled)
	}

	eventsElem.Text = Encode(events)
	return len(events), nil
}
