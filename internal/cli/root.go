package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ardourfix",
	Short: "Retime and clean up Ardour session files",
	Long: `ardourfix rewrites an Ardour 6 session file in place.

  change-tempo          rescale MIDI automation after a tempo change
  fix-unused-playlists  remove playlists no track uses any more

The session is parsed, checked and transformed entirely in memory; the file is
only replaced once the whole pass succeeded.

Configuration:
  .ardourfix.yaml next to the session file (or --config) may set
  version_prefix, rounding, strict_xml and backup. ARDOURFIX_* environment
  variables (also read from ./.env) override the file; flags override both.

Exit Codes:
  0  - Success
  1  - The session could not be processed
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

type globalFlagValues struct {
	verbose    bool
	debug      bool
	noColor    bool
	configPath string
}

var globalFlags globalFlagValues

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	_ = godotenv.Load()

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}

	err := rootCmd.Execute()
	if err != nil {
		reportError(os.Stderr, err, debugEnabled(), colorEnabled())
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.debug, "debug", false,
		"Print the full error chain on failure\n"+
			"Alternative: ARDOURFIX_DEBUG=1")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&globalFlags.configPath, "config", "",
		"Path to a YAML config file\n"+
			"(default: "+".ardourfix.yaml next to the session file)")
}
