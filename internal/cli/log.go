// Package cli implements the infection command-line interface.
//
// This package provides commands for generating coaching graphs, running
// total and limited infections over them, rendering the result, and
// browsing infected members interactively. The CLI is built using cobra and
// logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - generate: Build a random layered coaching graph
//   - total: Infect the seed's whole connected component
//   - limited: Infect a bounded group around the seed
//   - render: Draw an infection as DOT, SVG or PNG
//   - run: Generate a graph and run both infections end to end
//   - explore: Browse infected members in a terminal UI
//   - template: Show or validate generator templates
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; pipeline and render events reach the
// debug log through the observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Infected 350 members (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks writes pipeline and render events to the debug log of the
// logger carried by the event's context.
type logHooks struct{}

func (logHooks) OnGraphStart(ctx context.Context, source string, size int) {
	loggerFromContext(ctx).Debug("graph start", "source", source, "size", size)
}

func (logHooks) OnGraphComplete(ctx context.Context, source string, members, edges int, d time.Duration, err error) {
	logEvent(ctx, "graph complete", err, "source", source, "members", members, "edges", edges, "duration", d)
}

func (logHooks) OnInfectStart(ctx context.Context, mode string, seed int) {
	loggerFromContext(ctx).Debug("infect start", "mode", mode, "seed", seed)
}

func (logHooks) OnInfectComplete(ctx context.Context, mode string, seed, infected int, d time.Duration, err error) {
	logEvent(ctx, "infect complete", err, "mode", mode, "seed", seed, "infected", infected, "duration", d)
}

func (logHooks) OnRollout(ctx context.Context, version, members int, err error) {
	logEvent(ctx, "rollout", err, "version", version, "members", members)
}

func (logHooks) OnRenderStart(ctx context.Context, formats []string) {
	loggerFromContext(ctx).Debug("render start", "formats", formats)
}

func (logHooks) OnRenderComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	logEvent(ctx, "render complete", err, "formats", formats, "duration", d)
}

func logEvent(ctx context.Context, msg string, err error, keyvals ...any) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug(msg, append(keyvals, "err", err)...)
		return
	}
	l.Debug(msg, keyvals...)
}
