package ardourfix

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for every failure the tools report.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := automation.Rescale(root, 120, 60, opts)
//	if errors.Is(err, ardourfix.ErrMalformedEvent) {
//	    // Handle a corrupt automation list
//	}
var (
	// ErrNotFound indicates the project file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrParse indicates the project file is not well-formed XML.
	ErrParse = errors.New("invalid XML")

	// ErrMissingVersion indicates the session carries no usable provenance string.
	ErrMissingVersion = errors.New("could not get version from project file")

	// ErrUnsupportedVersion indicates the session was produced by an unsupported release.
	ErrUnsupportedVersion = errors.New("unsupported project file version")

	// ErrInvalidBPM indicates a tempo value that is not a finite positive number.
	ErrInvalidBPM = errors.New("invalid BPM")

	// ErrMalformedEvent indicates an automation event line that cannot be parsed.
	ErrMalformedEvent = errors.New("malformed automation event")

	// ErrMissingID indicates a playlist without an id was asked to be removed.
	ErrMissingID = errors.New("cannot remove playlist without an id")

	// ErrOrphanNode indicates the parent of a node to detach could not be located.
	ErrOrphanNode = errors.New("parent element not found")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")

	// ErrInvalidConfig indicates the configuration file or environment is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFileChanged indicates the project file was modified by someone else
	// between loading and saving.
	ErrFileChanged = errors.New("project file changed on disk")
)

// MalformedEventError carries the automation line that failed to parse.
type MalformedEventError struct {
	Line string
	Err  error
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("could not parse automation event line: %s", e.Line)
}

func (e *MalformedEventError) Unwrap() error { return e.Err }

func (e *MalformedEventError) Is(target error) bool { return target == ErrMalformedEvent }

// UnsupportedVersionError reports the provenance string that failed the version guard.
type UnsupportedVersionError struct {
	Version string
	Prefix  string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("only %s project files are supported", ProductLabel(e.Prefix))
}

func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }

// ProductLabel turns a version prefix such as "Ardour 6." into "Ardour 6".
func ProductLabel(prefix string) string {
	return strings.TrimRight(strings.TrimSpace(prefix), ".")
}

// usagePatterns are the message shapes cobra produces for command line misuse.
var usagePatterns = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"flag needs an argument",
	"invalid argument",
	"required flag",
	"accepts ",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, ExitUsageError (2) for command line
// misuse and ExitGeneralError (1) for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrUsage) {
		return ExitUsageError
	}

	errStr := err.Error()
	for _, p := range usagePatterns {
		if strings.HasPrefix(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
