package cli

import (
	"github.com/spf13/cobra"

	"github.com/ardour-tools/ardourfix/internal/automation"
)

var tempoCmd = &cobra.Command{
	Use:   "change-tempo <project-file> <old-bpm> <new-bpm>",
	Short: "Rescale MIDI automation after a tempo change",
	Long: `Change-tempo moves every automation breakpoint on MIDI tracks so that it
stays on the same beat after the session tempo changed from <old-bpm> to
<new-bpm>. Each sample position is multiplied by old-bpm/new-bpm and rounded
to the nearest sample.

Audio tracks are not touched.

Arguments:
  project-file    The .ardour session file, rewritten in place
  old-bpm         Tempo the automation was recorded at
  new-bpm         Tempo the session now uses

Examples:
  # Session slowed down from 120 to 96 BPM
  ardourfix change-tempo MySong/MySong.ardour 120 96

  # Preview without writing, keeping a backup otherwise
  ardourfix change-tempo MySong/MySong.ardour 120 96 --dry-run -v`,
	Args:              RequireTempoArgs,
	ValidArgsFunction: completeSessionFiles,
	RunE:              runChangeTempo,
}

type tempoFlagValues struct {
	writeFlagValues
	rounding string
}

var tempoFlags tempoFlagValues

func init() {
	rootCmd.AddCommand(tempoCmd)

	tempoCmd.Flags().BoolVar(&tempoFlags.dryRun, "dry-run", false, "Process the session but do not write it")
	tempoCmd.Flags().BoolVar(&tempoFlags.backup, "backup", false, "Keep the original as <project-file>.bak")
	tempoCmd.Flags().StringVar(&tempoFlags.rounding, "rounding", "",
		"Rounding of scaled positions: half-even|half-away\n"+
			"(default: half-even, or rounding from config)")
	_ = tempoCmd.RegisterFlagCompletionFunc("rounding", completeRoundingModes)
}

func runChangeTempo(cmd *cobra.Command, args []string) error {
	path := args[0]
	oldBPM, err := ParseBPM(args[1])
	if err != nil {
		return err
	}
	newBPM, err := ParseBPM(args[2])
	if err != nil {
		return err
	}

	env, err := newEnvironment(path, tempoFlags.writeFlagValues)
	if err != nil {
		return err
	}
	if tempoFlags.rounding != "" {
		env.cfg.Rounding = tempoFlags.rounding
	}

	doc, err := env.load()
	if err != nil {
		return err
	}

	rounding := env.cfg.RoundingMode()
	env.logger.Verbose("Multiplier %g (%s rounding)", oldBPM/newBPM, rounding)

	stats, err := automation.Rescale(doc.Root, oldBPM, newBPM, automation.RescaleOptions{Rounding: rounding})
	if err != nil {
		return err
	}
	if stats.Routes == 0 {
		env.logger.Warn("No MIDI routes in %s; nothing to rescale", path)
	}
	env.logger.Info("Rescaled %s in %s on %s",
		plural(stats.Events, "event"), plural(stats.Lists, "automation list"), plural(stats.Routes, "MIDI route"))

	return env.save(doc)
}
