package cli

import (
	"github.com/spf13/cobra"

	"github.com/ardour-tools/ardourfix/internal/playlist"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

var playlistsCmd = &cobra.Command{
	Use:   "fix-unused-playlists <project-file>",
	Short: "Remove playlists no track uses any more",
	Long: `Fix-unused-playlists deletes every playlist that is neither the active
playlist of a track nor belongs to a track that still exists, together with
the mixer strip objects left behind by its original track.

Playlists without an id are always kept.

Arguments:
  project-file    The .ardour session file, rewritten in place

Examples:
  ardourfix fix-unused-playlists MySong/MySong.ardour

  # See what would be removed
  ardourfix fix-unused-playlists MySong/MySong.ardour --dry-run -v`,
	Args:              RequireProjectFile,
	ValidArgsFunction: completeSessionFiles,
	RunE:              runFixUnusedPlaylists,
}

var playlistsFlags writeFlagValues

func init() {
	rootCmd.AddCommand(playlistsCmd)

	playlistsCmd.Flags().BoolVar(&playlistsFlags.dryRun, "dry-run", false, "Process the session but do not write it")
	playlistsCmd.Flags().BoolVar(&playlistsFlags.backup, "backup", false, "Keep the original as <project-file>.bak")
}

func runFixUnusedPlaylists(cmd *cobra.Command, args []string) error {
	env, err := newEnvironment(args[0], playlistsFlags)
	if err != nil {
		return err
	}

	doc, err := env.load()
	if err != nil {
		return err
	}

	for _, p := range playlist.All(doc.Root) {
		u := playlist.Classify(p, doc.Root)
		if u.Reason == playlist.ReasonNoID {
			env.logger.Warn("Keeping playlist %q: it has no id", p.Attr("name"))
			continue
		}
		env.logger.Verbose("Playlist %q (%s): used=%t, %s",
			p.Attr(ardourfix.AttrID), p.Attr("name"), u.Used, u.Reason)
	}

	res, err := playlist.Prune(doc.Root)
	if err != nil {
		return err
	}

	strips := 0
	for _, r := range res.Removals {
		strips += r.StripsRemoved
		if r.OrigTrackID != "" {
			env.logger.Verbose("Removed playlist %q and %s of track %q",
				r.PlaylistID, plural(r.StripsRemoved, "strip object"), r.OrigTrackID)
		} else {
			env.logger.Verbose("Removed playlist %q", r.PlaylistID)
		}
	}
	env.logger.Info("Removed %s of %d (%s)",
		plural(len(res.Removals), "unused playlist"), res.Scanned, plural(strips, "strip object"))

	return env.save(doc)
}
