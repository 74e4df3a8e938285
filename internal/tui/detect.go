package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how output should be rendered.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts and redirected output.
	ModePlain Mode = iota
	// ModeColor is used when a human is watching the terminal.
	ModeColor
)

// DetectMode determines whether messages written to f may be styled.
//
// Returns ModePlain if:
//   - ARDOURFIX_NO_COLOR=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - f is not a terminal
//
// Returns ModeColor otherwise.
func DetectMode(f *os.File) Mode {
	if os.Getenv("ARDOURFIX_NO_COLOR") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}
	return ModeColor
}

// ColorEnabled reports whether stderr output should be styled.
func ColorEnabled() bool {
	return DetectMode(os.Stderr) == ModeColor
}
