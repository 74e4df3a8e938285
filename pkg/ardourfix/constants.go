package ardourfix

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3: Internal panic
const (
	ExitSuccess      = 0 // Transformation completed and the project file was written
	ExitGeneralError = 1 // Any reported failure (missing file, bad XML, version, events, playlists)
	ExitUsageError   = 2 // CLI usage error (wrong argument count, unknown flag)
	ExitPanic        = 3 // Internal panic (unexpected crash)
)

const (
	// DefaultVersionPrefix is the literal prefix a session's provenance string
	// (modified-with or created-with) must start with.
	DefaultVersionPrefix = "Ardour 6."

	// StripObjectIDPrefix prefixes the track id in the id attribute of the
	// per-track strip objects that are removed together with an unused playlist.
	StripObjectIDPrefix = "strip "

	// ConfigFileName is looked up next to the project file when --config is not given.
	ConfigFileName = ".ardourfix.yaml"

	// BackupSuffix is appended to the project file path when a backup is requested.
	BackupSuffix = ".bak"
)

// Element and attribute names of the session dialect.
const (
	TagProgramVersion = "ProgramVersion"
	TagRoute          = "Route"
	TagAutomationList = "AutomationList"
	TagEvents         = "events"
	TagPlaylist       = "Playlist"

	AttrModifiedWith  = "modified-with"
	AttrCreatedWith   = "created-with"
	AttrDefaultType   = "default-type"
	AttrMIDIPlaylist  = "midi-playlist"
	AttrAudioPlaylist = "audio-playlist"
	AttrID            = "id"
	AttrOrigTrackID   = "orig-track-id"

	RouteTypeMIDI = "midi"
)
