package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// RequireProjectFile validates that exactly one <project-file> argument is provided.
func RequireProjectFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <project-file>

Usage: %s

Example:
  %s MySong/MySong.ardour`, ardourfix.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", ardourfix.ErrUsage, len(args))
	}
	return nil
}

// RequireTempoArgs validates the <project-file> <old-bpm> <new-bpm> triple.
func RequireTempoArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf(`%w: expected <project-file> <old-bpm> <new-bpm>, received %d arg(s)

Usage: %s

Example:
  %s MySong/MySong.ardour 120 96`, ardourfix.ErrUsage, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 3 {
		return fmt.Errorf("%w: accepts 3 arg(s), received %d", ardourfix.ErrUsage, len(args))
	}
	return nil
}

// ParseBPM parses a tempo argument. It must be a finite number greater than zero.
func ParseBPM(s string) (float64, error) {
	bpm, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ardourfix.ErrInvalidBPM, s)
	}
	if bpm <= 0 || math.IsNaN(bpm) || math.IsInf(bpm, 0) {
		return 0, fmt.Errorf("%w: '%s' (BPM must be a positive number)", ardourfix.ErrInvalidBPM, s)
	}
	return bpm, nil
}
