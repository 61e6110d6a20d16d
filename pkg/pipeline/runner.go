package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/infection/pkg/cache"
	"github.com/matzehuels/infection/pkg/generate"
	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/io"
	"github.com/matzehuels/infection/pkg/member"
	"github.com/matzehuels/infection/pkg/observability"
)

// Runner executes pipeline stages and reports them through its logger and
// the registered observability hooks.
//
// The Runner keeps no state between runs. Multiple goroutines can use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Run executes every stage requested by opts.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.New()}
	logger := r.Logger.With("run", result.RunID.String()[:8])
	stage := &Runner{Cache: r.Cache, Keyer: r.Keyer, Logger: logger}

	// Stage 1: Graph
	start := time.Now()
	g, hit, err := stage.LoadGraphWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	result.Graph = g
	result.CacheInfo.GraphHit = hit
	result.Stats.GraphTime = time.Since(start)
	result.Stats.Members = g.Len()
	result.Stats.Edges = g.EdgeCount()
	result.Stats.Components = len(infection.Components(g))

	// Stage 2: Total
	start = time.Now()
	total, err := stage.Total(ctx, g, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("total: %w", err)
	}
	result.Total = total
	result.Stats.TotalTime = time.Since(start)
	result.Stats.TotalSize = total.Len()

	// Stage 3: Limited
	if opts.Limited != nil {
		start = time.Now()
		sel, err := stage.Limited(ctx, g, opts.Seed, *opts.Limited)
		if err != nil {
			return nil, fmt.Errorf("limited: %w", err)
		}
		result.Limited = sel
		result.Stats.LimitedTime = time.Since(start)
		result.Stats.LimitedSize = sel.Infected.Len()
		result.Stats.TrimmedSize = sel.Trimmed.Len()
	}
	result.Stats.BoundaryEdges = infection.BoundaryEdges(g, result.Selected())

	// Stage 4: Rollout
	if opts.Rollout {
		if err := stage.Rollout(ctx, g, result.Selected(), opts.Version); err != nil {
			return nil, fmt.Errorf("rollout: %w", err)
		}
	}

	// Stage 5: Render
	if len(opts.Formats) > 0 {
		infected := result.Total
		if opts.RenderMode == infection.ModeLimited {
			infected = result.Limited.Infected
		}
		start = time.Now()
		artifacts, err := stage.Render(ctx, g, infected, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(start)
	}

	return result, nil
}

// LoadGraph imports or generates the graph described by opts.
func (r *Runner) LoadGraph(ctx context.Context, opts Options) (*member.Graph, error) {
	g, _, err := r.LoadGraphWithCacheInfo(ctx, opts)
	return g, err
}

// LoadGraphWithCacheInfo is LoadGraph that also reports whether a generated
// graph came from the cache.
func (r *Runner) LoadGraphWithCacheInfo(ctx context.Context, opts Options) (*member.Graph, bool, error) {
	if err := opts.ValidateForGraph(); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	source, size := opts.Input, 0
	if opts.Generated() {
		source, size = opts.Template.Name, opts.Size
	}
	hooks := observability.Pipeline()
	hooks.OnGraphStart(ctx, source, size)

	start := time.Now()
	var g *member.Graph
	var hit bool
	var err error
	if opts.Generated() {
		g, hit, err = r.generate(ctx, opts)
	} else {
		g, err = io.ImportJSON(opts.Input)
	}
	elapsed := time.Since(start)

	if err != nil {
		hooks.OnGraphComplete(ctx, source, 0, 0, elapsed, err)
		return nil, false, err
	}
	hooks.OnGraphComplete(ctx, source, g.Len(), g.EdgeCount(), elapsed, nil)

	if opts.Generated() {
		r.Logger.Info("generated graph",
			"template", source,
			"members", g.Len(),
			"edges", g.EdgeCount(),
			"cached", hit,
			"duration", elapsed)
	} else {
		r.Logger.Info("loaded graph",
			"path", source,
			"members", g.Len(),
			"edges", g.EdgeCount(),
			"duration", elapsed)
	}
	return g, hit, nil
}

// generate returns the cached graph for opts or generates and caches it.
// Cache failures are logged and otherwise ignored.
func (r *Runner) generate(ctx context.Context, opts Options) (*member.Graph, bool, error) {
	tpl, err := generate.EncodeTemplate(*opts.Template)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.GraphKey(cache.GraphKeyOpts{
		Template: cache.Hash(tpl),
		Size:     opts.Size,
		RandSeed: opts.RandSeed,
	})

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("graph cache read failed", "err", err)
		}
		if hit {
			if g, err := io.ReadJSON(bytes.NewReader(data)); err == nil {
				return g, true, nil
			}
			r.Logger.Debug("discarding unreadable cache entry", "key", key)
		}
	}

	g, err := generate.Generate(*opts.Template, opts.Size, generate.WithSeed(opts.RandSeed))
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := io.WriteJSON(g, &buf); err == nil {
		if err := r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLGraph); err != nil {
			r.Logger.Warn("graph cache write failed", "err", err)
		}
	}
	return g, false, nil
}

// Total infects the whole connected component of seed.
func (r *Runner) Total(ctx context.Context, g *member.Graph, seed member.ID) (member.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnInfectStart(ctx, string(infection.ModeTotal), int(seed))

	start := time.Now()
	infected, err := infection.Total(g, seed)
	elapsed := time.Since(start)
	hooks.OnInfectComplete(ctx, string(infection.ModeTotal), int(seed), infected.Len(), elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("total infection",
		"seed", seed,
		"infected", infected.Len(),
		"duration", elapsed)
	return infected, nil
}

// Limited selects a limited infection around seed sized within rng.
func (r *Runner) Limited(ctx context.Context, g *member.Graph, seed member.ID, rng Range) (*infection.Selection, error) {
	hooks := observability.Pipeline()
	hooks.OnInfectStart(ctx, string(infection.ModeLimited), int(seed))

	start := time.Now()
	sel, err := infection.LimitedTrace(ctx, g, seed, rng.Min, rng.Max)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnInfectComplete(ctx, string(infection.ModeLimited), int(seed), 0, elapsed, err)
		return nil, err
	}
	hooks.OnInfectComplete(ctx, string(infection.ModeLimited), int(seed), sel.Infected.Len(), elapsed, nil)

	r.Logger.Info("limited infection",
		"seed", seed,
		"min", rng.Min,
		"max", rng.Max,
		"infected", sel.Infected.Len(),
		"duration", elapsed)
	r.Logger.Debug("limited selection detail",
		"picks", len(sel.Steps),
		"trimmed", sel.Trimmed.Len(),
		"exhausted", sel.Exhausted,
		"boundary", infection.BoundaryEdges(g, sel.Infected))
	if sel.Infected.Len() < rng.Min {
		r.Logger.Warn("component smaller than requested minimum",
			"seed", seed,
			"component", sel.Infected.Len(),
			"min", rng.Min)
	}
	return sel, nil
}

// Rollout assigns version to every member of infected.
func (r *Runner) Rollout(ctx context.Context, g *member.Graph, infected member.Set, version int) error {
	err := g.SetVersion(infected, version)
	observability.Pipeline().OnRollout(ctx, version, infected.Len(), err)
	if err != nil {
		return err
	}
	r.Logger.Info("rolled out version",
		"version", version,
		"members", infected.Len())
	return nil
}
