package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ardour-tools/ardourfix/internal/automation"
)

// roundingModes contains valid --rounding values for shell completion.
var roundingModes = []string{automation.RoundHalfEven.String(), automation.RoundHalfAway.String()}

// completeSessionFiles offers .ardour files for the first positional argument.
func completeSessionFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"ardour"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeRoundingModes provides shell completion for the --rounding flag.
func completeRoundingModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, mode := range roundingModes {
		if strings.HasPrefix(mode, toComplete) {
			matches = append(matches, mode)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
