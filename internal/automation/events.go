package automation

import (
	"strconv"
	"strings"

	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// Event is a single automation breakpoint.
type Event struct {
	Position int64
	Value    string
}

// Decode parses an event list. Empty lines are skipped; every other line must
// hold exactly two whitespace-separated tokens, the first an integer.
func Decode(text string) ([]Event, error) {
	var events []Event
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ardourfix.MalformedEventError{Line: line}
		}
		pos, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, &ardourfix.MalformedEventError{Line: line, Err: err}
		}
		events = append(events, Event{Position: pos, Value: fields[1]})
	}
	return events, nil
}

// Encode renders events one per line, each terminated by a newline.
func Encode(events []Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(strconv.FormatInt(e.Position, 10))
		b.WriteByte(' ')
		b.WriteString(e.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
