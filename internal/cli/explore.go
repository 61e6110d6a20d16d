package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/infection/pkg/infection"
	"github.com/matzehuels/infection/pkg/member"
	"github.com/matzehuels/infection/pkg/pipeline"
)

// exploreOpts holds the command-line flags for the explore command.
type exploreOpts struct {
	seed int
	mode string
	rng  pipeline.Range
}

// exploreCommand creates the explore command, an interactive member browser.
func (c *CLI) exploreCommand() *cobra.Command {
	opts := exploreOpts{mode: string(infection.ModeLimited)}

	cmd := &cobra.Command{
		Use:               "explore <graph.json>",
		Short:             "Browse infected members interactively",
		Example:           `  infection explore graph.json --seed 42 --min 20 --max 40`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: graphArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), args[0], opts)
		},
	}

	seedFlag(cmd, &opts.seed)
	rangeFlags(cmd, &opts.rng)
	cmd.Flags().StringVar(&opts.mode, "mode", opts.mode, "infection mode: limited (default), total")

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, path string, opts exploreOpts) error {
	mode, err := infection.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	if mode == infection.ModeLimited {
		if err := opts.rng.Validate(); err != nil {
			return err
		}
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
	infected, err := infect(ctx, runner, g, mode, seed, opts.rng)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewMemberListModel(g, infected, seed), tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
