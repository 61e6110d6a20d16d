package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/infection/pkg/member"
	"github.com/matzehuels/infection/pkg/pipeline"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	size     int
	randSeed uint64
	template string
	seed     int
	rng      pipeline.Range
	rollout  bool
	version  int
	formats  string
	output   string
	noCache  bool
	refresh  bool
}

// runCommand creates the run command: the end-to-end reference scenario.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{
		size:     pipeline.DefaultSize,
		randSeed: pipeline.DefaultRandSeed,
		version:  pipeline.DefaultVersion,
		output:   "infection",
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a graph and run total and limited infection",
		Long: `Generate a graph, infect the seed's component, select a limited
infection within [--min, --max] and report both. With the defaults this is
the reference scenario: 10,000 members, seed 42, range [300, 500].`,
		Example: `  infection run
  infection run -n 2000 --min 50 --max 80 --rollout -f svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", opts.size, "number of members")
	cmd.Flags().Uint64Var(&opts.randSeed, "rand-seed", opts.randSeed, "random seed for generation")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "generator template (TOML)")
	_ = cmd.RegisterFlagCompletionFunc("template", templateArg)
	seedFlag(cmd, &opts.seed)
	rangeFlags(cmd, &opts.rng)
	cmd.Flags().BoolVar(&opts.rollout, "rollout", false, "assign --rollout-version to the limited infection")
	cmd.Flags().IntVar(&opts.version, "rollout-version", opts.version, "version assigned by --rollout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "also render: svg, dot, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path for rendered files")
	cacheFlags(cmd, &opts.noCache, &opts.refresh)

	return cmd
}

func (c *CLI) runRun(ctx context.Context, opts runOpts) error {
	popts := pipeline.Options{
		Size:         opts.size,
		RandSeed:     opts.randSeed,
		TemplatePath: opts.template,
		Seed:         member.ID(opts.seed),
		Limited:      &opts.rng,
		Rollout:      opts.rollout,
		Version:      opts.version,
		Refresh:      opts.refresh,
	}
	if opts.formats != "" {
		popts.Formats = parseFormats(opts.formats)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	prog := newProgress(c.Logger)
	res, err := runner.Run(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("Pipeline complete")

	printRunSummary(res, opts.rng)
	if opts.rollout {
		printSuccess("Rolled out version %d to %d members", opts.version, res.Stats.LimitedSize)
	}
	if len(res.Artifacts) > 0 {
		return writeArtifacts(opts.output, popts.Formats, res.Artifacts)
	}
	return nil
}

// printRunSummary prints the per-stage table of a pipeline run.
func printRunSummary(res *pipeline.Result, rng pipeline.Range) {
	s := res.Stats
	fmt.Fprintln(out, StyleTitle.Render("Run "+res.RunID.String()))
	printStats(s.Members, s.Edges)
	printDetail("%d connected components", s.Components)
	if res.CacheInfo.GraphHit {
		printDetail("graph loaded from cache")
	}

	rows := [][]string{
		{"graph", itoa(s.Members), "", ms(s.GraphTime)},
		{"total", itoa(s.TotalSize), "0", ms(s.TotalTime)},
	}
	if res.Limited != nil {
		rows = append(rows, []string{
			fmt.Sprintf("limited [%d, %d]", rng.Min, rng.Max),
			itoa(s.LimitedSize),
			itoa(s.BoundaryEdges),
			ms(s.LimitedTime),
		})
	}
	printTable([]string{"Stage", "Members", "Boundary", "Time"}, rows)

	if res.Limited != nil && s.TrimmedSize > 0 {
		printDetail("limited infection dropped %d trailing picks", s.TrimmedSize)
	}
}

func ms(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
