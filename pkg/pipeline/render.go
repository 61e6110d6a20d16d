package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/infection/pkg/member"
	"github.com/matzehuels/infection/pkg/observability"
	"github.com/matzehuels/infection/pkg/render"
)

// Render draws g with infected highlighted in every format of opts.
func (r *Runner) Render(ctx context.Context, g *member.Graph, infected member.Set, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)

	start := time.Now()
	artifacts, err := renderFormats(ctx, g, infected, opts)
	elapsed := time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", elapsed)
	return artifacts, nil
}

func renderFormats(ctx context.Context, g *member.Graph, infected member.Set, opts Options) (map[string][]byte, error) {
	dot := render.ToDOT(g, infected, render.Options{
		Seed:     opts.Seed,
		Scope:    opts.Scope,
		Detailed: opts.Detailed,
	})

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := render.Render(ctx, dot, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
