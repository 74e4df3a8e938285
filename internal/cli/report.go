package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ardour-tools/ardourfix/internal/tui"
)

// reportError prints err to w. The terse form is a single "Error: <message>"
// line; debug mode prints every wrapped cause with its type instead.
func reportError(w io.Writer, err error, debug, color bool) {
	label := "Error:"
	if color {
		label = tui.ErrorStyle.Render(label)
	}
	if !debug {
		fmt.Fprintf(w, "%s %v\n", label, err)
		return
	}

	fmt.Fprintln(w, label)
	for depth, e := 0, err; e != nil; depth++ {
		fmt.Fprintf(w, "  [%d] %T: %v\n", depth, e, e)
		e = errors.Unwrap(e)
	}
}
