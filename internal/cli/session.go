package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ardour-tools/ardourfix/internal/checksum"
	"github.com/ardour-tools/ardourfix/internal/config"
	"github.com/ardour-tools/ardourfix/internal/logging"
	"github.com/ardour-tools/ardourfix/internal/session"
	"github.com/ardour-tools/ardourfix/internal/tui"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// writeFlagValues are shared by every command that rewrites a session.
type writeFlagValues struct {
	dryRun bool
	backup bool
}

// environment bundles what a command needs to process one session file.
type environment struct {
	path   string
	cfg    *config.Config
	logger ardourfix.Logger
	color  bool
	write  writeFlagValues
}

// newEnvironment resolves configuration for the session at path.
// Precedence: flags > environment > config file > defaults.
func newEnvironment(path string, write writeFlagValues) (*environment, error) {
	color := colorEnabled()
	logger := logging.NewConsoleLogger(globalFlags.verbose, color)

	cfg, used, err := config.Resolve(globalFlags.configPath, path)
	if err != nil {
		return nil, err
	}
	if used != "" {
		logger.Verbose("Using config %s", used)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if write.backup {
		cfg.Backup = true
	}
	if write.dryRun && cfg.Backup {
		logger.Warn("Backup is skipped on a dry run")
	}

	return &environment{path: path, cfg: cfg, logger: logger, color: color, write: write}, nil
}

// load reads the session and enforces the supported program version.
func (e *environment) load() (*session.Document, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	e.logger.Verbose("Loading %s (strict XML: %t)", e.path, e.cfg.StrictXML)
	doc, err := session.Load(e.path, session.LoadOptions{StrictXML: e.cfg.StrictXML})
	if err != nil {
		return nil, err
	}

	v, err := session.ProgramVersion(doc.Root)
	if err == nil {
		e.logger.Verbose("Session written by %q", v)
	}
	if err := session.EnforceVersion(doc.Root, e.cfg.VersionPrefix); err != nil {
		return nil, err
	}
	return doc, nil
}

// save writes the document back unless this is a dry run.
func (e *environment) save(doc *session.Document) error {
	res, err := doc.Save(session.SaveOptions{
		Backup: e.cfg.Backup,
		DryRun: e.write.dryRun,
	})
	if err != nil {
		return err
	}

	e.logger.Verbose("Digest %s -> %s", checksum.Short(res.OldDigest), checksum.Short(res.NewDigest))
	if res.BackupPath != "" {
		e.logger.Info("Backup written to %s", res.BackupPath)
	}
	switch {
	case !res.Written:
		e.logger.Info("Dry run: %s not modified (%s)", e.path, changedLabel(res.Changed))
	case res.Changed:
		e.logger.Info("%s", e.success("Wrote "+e.path))
	default:
		e.logger.Info("%s", e.success("Wrote "+e.path+" (content unchanged)"))
	}
	return nil
}

func (e *environment) success(msg string) string {
	if e.color {
		return tui.SuccessStyle.Render(msg)
	}
	return msg
}

func changedLabel(changed bool) string {
	if changed {
		return "would change"
	}
	return "no changes"
}

func colorEnabled() bool {
	return !globalFlags.noColor && tui.ColorEnabled()
}

func debugEnabled() bool {
	if globalFlags.debug {
		return true
	}
	b, _ := strconv.ParseBool(os.Getenv("ARDOURFIX_DEBUG"))
	return b
}

// plural formats a count with a noun.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
