package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/member"
	"github.com/matzehuels/infection/pkg/pipeline"
	"github.com/matzehuels/infection/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	seed     int
	mode     string
	rng      pipeline.Range
	formats  []string
	output   string // base path; the format is appended as extension
	all      bool   // draw every member instead of the infected neighbourhood
	detailed bool   // add version and badness to labels
}

// renderCommand creates the render command for drawing an infection.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		mode:   string(infection.ModeLimited),
		output: "infection",
	}

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Draw an infection as DOT, SVG or PNG",
		Long: `Run an infection and draw the result. Infected members are filled, the
seed has a bold outline and links leaving the infected set are dashed.

By default only the infected members and their direct neighbours are drawn;
use --all for small graphs.`,
		Example: `  infection render graph.json --seed 42 --mode limited --min 5 --max 20 -f svg,dot
  infection render graph.json --mode total --all -f png -o out/total`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: graphArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	seedFlag(cmd, &opts.seed)
	rangeFlags(cmd, &opts.rng)
	cmd.Flags().StringVar(&opts.mode, "mode", opts.mode, "infection mode: limited (default), total")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output base path")
	cmd.Flags().BoolVar(&opts.all, "all", false, "draw every member")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show version and badness in labels")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	mode, err := infection.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	popts := pipeline.Options{
		Input:      path,
		Seed:       member.ID(opts.seed),
		Formats:    opts.formats,
		RenderMode: mode,
		Detailed:   opts.detailed,
	}
	if mode == infection.ModeLimited {
		popts.Limited = &opts.rng
	}
	if opts.all {
		popts.Scope = render.ScopeAll
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(true) // imported graphs are not cached
	if err != nil {
		return err
	}
	g, err := runner.LoadGraph(ctx, popts)
	if err != nil {
		return err
	}
	infected, err := infect(ctx, runner, g, mode, popts.Seed, opts.rng)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Rendering...")
	spinner.Start()
	artifacts, err := runner.Render(ctx, g, infected, popts)
	spinner.Stop()
	if err != nil {
		return err
	}

	printSuccess("Rendered %s infection of %s members", mode, StyleNumber.Render(itoa(infected.Len())))
	return writeArtifacts(opts.output, opts.formats, artifacts)
}

// writeArtifacts writes each artifact to base.<format> in format order.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) error {
	for _, format := range formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
