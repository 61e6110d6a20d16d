package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/io"
	"github.com/matzehuels/infection/pkg/member"
	"github.com/matzehuels/infection/pkg/pipeline"
)

// previewSize is how many member IDs are listed inline.
const previewSize = 12

// infectOpts holds the flags shared by total and limited.
type infectOpts struct {
	seed   int
	rng    pipeline.Range
	trace  bool
	output string // result JSON; empty skips writing
}

// totalCommand creates the total command.
func (c *CLI) totalCommand() *cobra.Command {
	var opts infectOpts

	cmd := &cobra.Command{
		Use:   "total <graph.json>",
		Short: "Infect the seed's whole connected component",
		Long: `Infect every member reachable from the seed through coaching links,
in either direction. The result leaves no coaching pair split across
versions.`,
		Example:           `  infection total graph.json --seed 42 -o total.json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: graphArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTotal(cmd.Context(), args[0], opts)
		},
	}

	seedFlag(cmd, &opts.seed)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result as JSON")

	return cmd
}

// limitedCommand creates the limited command.
func (c *CLI) limitedCommand() *cobra.Command {
	var opts infectOpts

	cmd := &cobra.Command{
		Use:   "limited <graph.json>",
		Short: "Infect a bounded, tightly connected group around the seed",
		Long: `Grow a connected group from the seed, always adding the candidate with
the fewest links leaving the group, until --max members are infected or
the component runs out. A trailing run of picks past --min that did not
pay for itself is dropped again.

The result is smaller than --min only when the seed's component is.`,
		Example: `  infection limited graph.json --seed 42 --min 300 --max 500
  infection limited graph.json --seed 7 --min 5 --max 20 --trace`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: graphArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLimited(cmd.Context(), args[0], opts)
		},
	}

	seedFlag(cmd, &opts.seed)
	rangeFlags(cmd, &opts.rng)
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print every pick with its badness")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result as JSON")

	return cmd
}

func (c *CLI) runTotal(ctx context.Context, path string, opts infectOpts) error {
	runner, err := c.newRunner(true) // imported graphs are not cached
	if err != nil {
		return err
	}
	g, err := runner.LoadGraph(ctx, pipeline.Options{Input: path})
	if err != nil {
		return err
	}

	seed := member.ID(opts.seed)
	infected, err := runner.Total(ctx, g, seed)
	if err != nil {
		return err
	}

	printSuccess("Infected %s of %d members", StyleNumber.Render(itoa(infected.Len())), g.Len())
	printKeyValue("seed", seed.String())
	printKeyValue("members", preview(infected.Sorted(), previewSize))

	if opts.output != "" {
		if err := io.ExportResult(io.TotalResult(seed, infected), opts.output); err != nil {
			return err
		}
		printFile(opts.output)
	}
	return nil
}

func (c *CLI) runLimited(ctx context.Context, path string, opts infectOpts) error {
	if err := opts.rng.Validate(); err != nil {
		return err
	}
	runner, err := c.newRunner(true) // imported graphs are not cached
	if err != nil {
		return err
	}
	g, err := runner.LoadGraph(ctx, pipeline.Options{Input: path})
	if err != nil {
		return err
	}

	seed := member.ID(opts.seed)
	sel, err := runner.Limited(ctx, g, seed, opts.rng)
	if err != nil {
		return err
	}

	if opts.trace {
		printTrace(sel)
	}

	printSuccess("Infected %s of %d members", StyleNumber.Render(itoa(sel.Infected.Len())), g.Len())
	printKeyValue("seed", seed.String())
	printKeyValue("range", fmt.Sprintf("[%d, %d]", opts.rng.Min, opts.rng.Max))
	printKeyValue("boundary", itoa(infection.BoundaryEdges(g, sel.Infected)))
	printKeyValue("internal", itoa(infection.InternalEdges(g, sel.Infected)))
	printKeyValue("members", preview(sel.Infected.Sorted(), previewSize))
	if sel.Trimmed.Len() > 0 {
		printDetail("dropped %d trailing picks: %s", sel.Trimmed.Len(), preview(sel.Trimmed.Sorted(), previewSize))
	}
	if sel.Infected.Len() < opts.rng.Min {
		printWarning("component of %d holds only %d members", opts.seed, sel.Infected.Len())
	}

	if opts.output != "" {
		res := io.LimitedResult(seed, opts.rng.Min, opts.rng.Max, sel.Infected)
		if err := io.ExportResult(res, opts.output); err != nil {
			return err
		}
		printFile(opts.output)
	}
	return nil
}

// printTrace prints the pick order of a limited selection.
func printTrace(sel *infection.Selection) {
	rows := make([][]string, 0, len(sel.Steps))
	for i, s := range sel.Steps {
		status := ""
		if s.Trimmed {
			status = StyleWarning.Render("dropped")
		}
		rows = append(rows, []string{itoa(i + 1), s.ID.String(), itoa(s.Badness), itoa(s.Size), status})
	}
	printTable([]string{"#", "Member", "Badness", "Size", ""}, rows)
	if sel.Exhausted {
		printDetail("component exhausted")
	}
}

// infect runs the infection named by mode and returns the infected set.
func infect(ctx context.Context, r *pipeline.Runner, g *member.Graph, mode infection.Mode, seed member.ID, rng pipeline.Range) (member.Set, error) {
	if mode == infection.ModeTotal {
		return r.Total(ctx, g, seed)
	}
	sel, err := r.Limited(ctx, g, seed, rng)
	if err != nil {
		return nil, err
	}
	return sel.Infected, nil
}
