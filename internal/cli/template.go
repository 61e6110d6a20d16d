package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/infection/pkg/generate"
	"github.com/matzehuels/infection/pkg/pipeline"
)

// templateCommand creates the template command group.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Show or validate generator templates",
	}
	cmd.AddCommand(c.templateShowCommand())
	cmd.AddCommand(c.templateValidateCommand())
	return cmd
}

func (c *CLI) templateShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the default template as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := generate.EncodeTemplate(generate.DefaultTemplate())
			if err != nil {
				return err
			}
			if output == "" {
				_, err := out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (c *CLI) templateValidateCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:               "validate <template.toml>",
		Short:             "Check a template and show how it splits a graph",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := generate.LoadTemplate(args[0])
			if err != nil {
				return err
			}
			printSuccess("Template %q is valid", t.Name)
			printLayers(t, size)
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", pipeline.DefaultSize, "graph size used for the layer breakdown")
	return cmd
}

// printLayers prints the member ranges and parent counts of each layer.
func printLayers(t generate.Template, size int) {
	ranges := generate.LayerRanges(t, size)
	rows := make([][]string, 0, len(t.Layers))
	for i, l := range t.Layers {
		r := ranges[i]
		coaches := "none"
		if l.HasDist() {
			coaches = fmt.Sprintf("%d-%d", l.Dist.Min, l.Dist.Min+len(l.Dist.CDF)-1)
		}
		ids := "none"
		if r.Len() > 0 {
			ids = fmt.Sprintf("%d-%d", r.Start, r.End-1)
		}
		rows = append(rows, []string{
			itoa(i + 1),
			fmt.Sprintf("%.1f%%", l.Pct*100),
			ids,
			itoa(r.Len()),
			coaches,
		})
	}
	printTable([]string{"Layer", "Share", "IDs", "Members", "Coaches"}, rows)
}
