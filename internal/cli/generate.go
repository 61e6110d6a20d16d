package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/infection/pkg/io"
	"github.com/matzehuels/infection/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	size     int
	seed     uint64
	template string // TOML template path; empty uses the default template
	output   string
	noCache  bool
	refresh  bool
}

// generateCommand creates the generate command for building random graphs.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		size:   pipeline.DefaultSize,
		seed:   pipeline.DefaultRandSeed,
		output: "graph.json",
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random layered coaching graph",
		Long: `Generate a random coaching graph and write it as JSON.

Members are split into layers by the template; each member of a layer with
a distribution draws its coaches from the layer above. Use "template show"
to see the default template.`,
		Example: `  infection generate -n 10000 --seed 42 -o graph.json
  infection generate -n 500 --template examples/templates/school.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", opts.size, "number of members")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "generator template (TOML)")
	_ = cmd.RegisterFlagCompletionFunc("template", templateArg)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cacheFlags(cmd, &opts.noCache, &opts.refresh)

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, "Generating graph...")
	spinner.Start()
	g, hit, err := runner.LoadGraphWithCacheInfo(ctx, pipeline.Options{
		Size:         opts.size,
		RandSeed:     opts.seed,
		TemplatePath: opts.template,
		Refresh:      opts.refresh,
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	if err := io.ExportJSON(g, opts.output); err != nil {
		return err
	}
	prog.done("Generated graph")

	printSuccess("Generated %s members", StyleNumber.Render(itoa(g.Len())))
	printStats(g.Len(), g.EdgeCount())
	if hit {
		printDetail("loaded from cache")
	}
	printFile(opts.output)
	return nil
}
