package decomment

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Walk completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (invalid args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitReadError    = 20 // A candidate file could not be read
	ExitDecodeError  = 21 // A candidate file is not valid UTF-8
	ExitWriteError   = 22 // A modified file could not be rewritten
)

const (
	// ConfigFileName is the optional per-root configuration file.
	ConfigFileName = ".decomment.yaml"

	// EnvExtensions overrides the extension list (comma separated).
	EnvExtensions = "DECOMMENT_EXTENSIONS"

	// EnvExclude overrides the excluded path substrings (comma separated).
	EnvExclude = "DECOMMENT_EXCLUDE"
)

// DefaultExtensions lists the file name suffixes processed when nothing else is configured.
func DefaultExtensions() []string {
	return []string{".go", ".ts", ".tsx"}
}

// DefaultExclude lists the path substrings whose subtrees are never walked:
// dependency installs, version-control metadata and build output.
func DefaultExclude() []string {
	return []string{"node_modules", ".git", "dist"}
}
