// Package errmap maps utctime and CLI errors to stable codes and process
// exit statuses. Every sentinel error has an explicit mapping.
package errmap

import (
	"errors"
	"time"

	"github.com/aelexs/utctime/internal/cli"
	"github.com/aelexs/utctime/internal/config"
	"github.com/aelexs/utctime/pkg/utctime"
)

// Exit statuses, following the BSD sysexits convention.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 64
	ExitDataErr = 65
	ExitConfig  = 78
)

// CLIError is the user-facing view of an error.
type CLIError struct {
	ExitCode int
	Code     string
	Message  string
}

func (e CLIError) Error() string {
	return e.Message
}

// exitMappings maps sentinel errors to exit statuses and codes.
// Order matters: first match wins (via errors.Is).
var exitMappings = []struct {
	err      error
	exitCode int
	code     string
}{
	{cli.ErrUsage, ExitUsage, "INVALID_USAGE"},
	{config.ErrConfigRequired, ExitConfig, "CONFIG_REQUIRED"},
	{utctime.ErrNonUTCTimestamp, ExitDataErr, "NON_UTC_TIMESTAMP"},
	{utctime.ErrMalformedNumber, ExitDataErr, "MALFORMED_NUMBER"},
	{utctime.ErrOutOfRange, ExitDataErr, "OUT_OF_RANGE"},
}

// ToCLIError converts an error returned by cli.Run to a CLIError.
func ToCLIError(err error) CLIError {
	if err == nil {
		return CLIError{ExitCode: ExitOK}
	}
	for _, m := range exitMappings {
		if errors.Is(err, m.err) {
			return CLIError{ExitCode: m.exitCode, Code: m.code, Message: err.Error()}
		}
	}

	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return CLIError{ExitCode: ExitDataErr, Code: "MALFORMED_TIMESTAMP", Message: err.Error()}
	}

	return CLIError{ExitCode: ExitFailure, Code: "INTERNAL", Message: err.Error()}
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	return ToCLIError(err).ExitCode
}
