package cli

import (
	"errors"

	"github.com/vvka-141/fswrap/internal/config"
	"github.com/vvka-141/fswrap/pkg/fsio"
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Command completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration
	ExitNotFound      = 11 // Path does not exist
	ExitAccessDenied  = 12 // Permission denied
	ExitAlreadyExists = 13 // Target already exists
	ExitNotEmpty      = 14 // Directory not empty
	ExitWrongType     = 15 // File used as directory or the reverse
	ExitPathTooLong   = 16 // Path or name too long
)

// ErrUsage marks command-line misuse.
var ErrUsage = errors.New("usage error")

// ExitCodeForError returns the exit code for an error returned by Execute.
// Filesystem errors map through fsio.Classify.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	}

	switch fsio.Classify(err) {
	case fsio.KindNotFound:
		return ExitNotFound
	case fsio.KindAccessDenied:
		return ExitAccessDenied
	case fsio.KindAlreadyExists:
		return ExitAlreadyExists
	case fsio.KindDirectoryNotEmpty:
		return ExitNotEmpty
	case fsio.KindWrongType:
		return ExitWrongType
	case fsio.KindPathTooLong:
		return ExitPathTooLong
	}
	return ExitGeneralError
}
