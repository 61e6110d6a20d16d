package main

import (
	"context"
	"path/filepath"
	"testing"

	apperrors "github.com/matzehuels/infection/pkg/errors"
)

func TestRun(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	graph := filepath.Join(t.TempDir(), "graph.json")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"generate", []string{"generate", "-n", "50", "-o", graph}, apperrors.ExitOK},
		{"verbose total", []string{"-v", "total", graph, "--seed", "1"}, apperrors.ExitOK},
		{"bad range", []string{"limited", graph, "--min", "9", "--max", "1"}, apperrors.ExitUsage},
		{"unknown seed", []string{"total", graph, "--seed", "500"}, apperrors.ExitNotFound},
		{"missing graph", []string{"total", filepath.Join(t.TempDir(), "nope.json")}, apperrors.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperrors.ExitCode(run(context.Background(), tt.args)); got != tt.want {
				t.Errorf("exit code = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, []string{"generate", "-n", "50", "-o", filepath.Join(t.TempDir(), "g.json")})
	if got := apperrors.ExitCode(err); got != apperrors.ExitInterrupt {
		t.Errorf("exit code = %d (%v), want %d", got, err, apperrors.ExitInterrupt)
	}
}
