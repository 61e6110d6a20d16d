package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain", errors.New("boom"), ExitFailure},
		{"internal", New(ErrCodeInternal, "bug"), ExitFailure},
		{"invalid range", New(ErrCodeInvalidRange, "min > max"), ExitUsage},
		{"wrapped template", fmt.Errorf("load: %w", New(ErrCodeInvalidTemplate, "no layers")), ExitUsage},
		{"duplicate member", New(ErrCodeDuplicateMember, "7"), ExitUsage},
		{"unknown member", codedErr{}, ExitNotFound},
		{"missing file", Wrap(ErrCodeFileNotFound, errors.New("enoent"), "graph.json"), ExitNotFound},
		{"cancelled", fmt.Errorf("limited: %w", context.Canceled), ExitInterrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
