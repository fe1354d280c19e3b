package decomment

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := walker.Walk(root)
//	if errors.Is(err, decomment.ErrDecodeFailed) {
//	    // a file under root is not UTF-8 text
//	}
var (
	// ErrInvalidConfig indicates the resolved configuration is unusable.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrReadFailed indicates a candidate file could not be read.
	ErrReadFailed = errors.New("read failed")

	// ErrDecodeFailed indicates a candidate file is not valid UTF-8 text.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrWriteFailed indicates a modified file could not be written back.
	ErrWriteFailed = errors.New("write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrReadFailed):
		return ExitReadError
	case errors.Is(err, ErrDecodeFailed):
		return ExitDecodeError
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteError
	}

	if isUsageError(err) {
		return ExitUsageError
	}

	return ExitGeneralError
}

// usagePatterns are fragments of the errors cobra and pflag return for bad
// command lines; they carry no sentinel to match with errors.Is.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"flag needs an argument",
	"invalid argument",
	"accepts at most",
	"accepts between",
	"accepts 1 arg(s)",
}

func isUsageError(err error) bool {
	msg := err.Error()
	for _, p := range usagePatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
