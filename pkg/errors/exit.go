package errors

import (
	"context"
	"errors"
)

// Process exit statuses returned by [ExitCode].
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2   // invalid flags, ranges, templates or formats
	ExitNotFound  = 3   // unknown member or missing file
	ExitInterrupt = 130 // shell convention for SIGINT
)

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidRange, ErrCodeInvalidTemplate, ErrCodeInvalidFormat, ErrCodeInvalidGraph, ErrCodeDuplicateMember:
		return ExitUsage
	case ErrCodeUnknownMember, ErrCodeFileNotFound:
		return ExitNotFound
	}
	return ExitFailure
}
