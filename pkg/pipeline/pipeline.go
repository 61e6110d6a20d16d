// Package pipeline runs the complete infection workflow.
//
// This package implements the graph → total → limited → rollout → render
// pipeline used by the CLI. Centralizing it keeps the individual commands
// and the end-to-end run consistent.
//
// # Architecture
//
// The pipeline consists of five stages:
//
//  1. Graph: Import a JSON graph or generate one from a template
//  2. Total: Infect the seed's whole connected component
//  3. Limited: Select a bounded, low-boundary infection around the seed
//  4. Rollout: Assign a product version to the selected members (optional)
//  5. Render: Draw the graph with the selection highlighted (optional)
//
// Each stage is also available on its own as a [Runner] method.
//
// # Caching
//
// Generated graphs are stored in the runner's [cache.Cache] under a key
// derived from the template, size and random seed. Imported graphs are
// never cached. Set [Options.Refresh] to regenerate and overwrite.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    Size:    10000,
//	    Seed:    42,
//	    Limited: &pipeline.Range{Min: 300, Max: 500},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.LimitedSize)
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/infection/pkg/errors"
	"github.com/matzehuels/infection/pkg/generate"
	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/member"
	"github.com/matzehuels/infection/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSize is the number of members in a generated graph.
	DefaultSize = 10000

	// DefaultSeed is the member infected first.
	DefaultSeed = member.ID(42)

	// DefaultRandSeed seeds graph generation.
	DefaultRandSeed = generate.DefaultSeed

	// DefaultVersion is the version assigned by a rollout.
	DefaultVersion = 1
)

// DefaultRange is the limited infection size range of the reference run.
var DefaultRange = Range{Min: 300, Max: 500}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Range bounds the size of a limited infection.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Validate checks that the range is usable.
func (r Range) Validate() error {
	return errors.ValidateRange(r.Min, r.Max)
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Graph options. Input imports a JSON graph; otherwise a graph of Size
	// members is generated from Template (or the template at TemplatePath,
	// or the default template).
	Input        string             `json:"input,omitempty"`
	TemplatePath string             `json:"template_path,omitempty"`
	Template     *generate.Template `json:"template,omitempty"`
	Size         int                `json:"size,omitempty"`
	RandSeed     uint64             `json:"rand_seed,omitempty"`
	Refresh      bool               `json:"refresh,omitempty"` // skip cache lookups

	// Infection options
	Seed    member.ID `json:"seed"`
	Limited *Range    `json:"limited,omitempty"` // nil skips the limited stage

	// Rollout options
	Rollout bool `json:"rollout,omitempty"`
	Version int  `json:"version,omitempty"`

	// Render options. No formats skips rendering.
	Formats    []string       `json:"formats,omitempty"`
	RenderMode infection.Mode `json:"render_mode,omitempty"`
	Scope      render.Scope   `json:"scope,omitempty"`
	Detailed   bool           `json:"detailed,omitempty"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and reports.
	RunID uuid.UUID

	Graph *member.Graph
	Total member.Set

	// Limited is nil when the limited stage was skipped.
	Limited *infection.Selection

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// CacheInfo tracks which stages hit the cache.
type CacheInfo struct {
	GraphHit bool
}

// Selected returns the set the run acted on: the limited infection when it
// ran, otherwise the total infection.
func (r *Result) Selected() member.Set {
	if r.Limited != nil {
		return r.Limited.Infected
	}
	return r.Total
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Members    int
	Edges      int
	Components int

	TotalSize     int
	LimitedSize   int
	TrimmedSize   int
	BoundaryEdges int // boundary of the selected set

	GraphTime   time.Duration
	TotalTime   time.Duration
	LimitedTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGraph(); err != nil {
		return err
	}
	if o.Limited != nil {
		if err := o.Limited.Validate(); err != nil {
			return err
		}
	}
	if o.Rollout && o.Version == 0 {
		o.Version = DefaultVersion
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGraph checks the graph source and applies its defaults.
func (o *Options) ValidateForGraph() error {
	if o.Input != "" {
		if o.Template != nil || o.TemplatePath != "" {
			return errors.New(errors.ErrCodeInvalidInput, "input graph and template are mutually exclusive")
		}
		return nil
	}

	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if err := errors.ValidateSize(o.Size); err != nil {
		return err
	}
	if o.RandSeed == 0 {
		o.RandSeed = DefaultRandSeed
	}
	if o.Template == nil {
		t := generate.DefaultTemplate()
		if o.TemplatePath != "" {
			loaded, err := generate.LoadTemplate(o.TemplatePath)
			if err != nil {
				return err
			}
			t = loaded
		}
		o.Template = &t
	}
	return o.Template.Validate()
}

// ValidateForRender checks the render options and applies their defaults.
func (o *Options) ValidateForRender() error {
	if err := errors.ValidateFormats(o.Formats, render.Formats...); err != nil {
		return err
	}
	if o.RenderMode == "" {
		o.RenderMode = infection.ModeTotal
		if o.Limited != nil {
			o.RenderMode = infection.ModeLimited
		}
	}
	if _, err := infection.ParseMode(string(o.RenderMode)); err != nil {
		return err
	}
	if o.RenderMode == infection.ModeLimited && o.Limited == nil {
		return errors.New(errors.ErrCodeInvalidInput, "limited render mode needs a limited range")
	}
	return nil
}

// Generated reports whether the graph is generated rather than imported.
func (o *Options) Generated() bool {
	return o.Input == ""
}
