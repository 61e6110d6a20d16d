package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/infection/pkg/buildinfo"
	"github.com/matzehuels/infection/pkg/cache"
	"github.com/matzehuels/infection/pkg/observability"
	"github.com/matzehuels/infection/pkg/pipeline"
	"github.com/matzehuels/infection/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the binary name used in help text and completions.
const appName = "infection"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Infection simulates staged feature rollouts over a coaching graph",
		Long: `Infection models users connected by coaching relationships and picks who
gets a new product version: the whole connected component of a seed user
(total infection), or a bounded, tightly connected group around it
(limited infection).`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.totalCommand())
	root.AddCommand(c.limitedCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Pipeline and render
// events are forwarded to the debug log.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	hooks := logHooks{}
	observability.SetPipelineHooks(hooks)
	observability.SetRenderHooks(hooks)

	gc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(gc, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/infection/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// seedFlag binds the --seed flag shared by the infection commands.
func seedFlag(cmd *cobra.Command, seed *int) {
	cmd.Flags().IntVarP(seed, "seed", "s", int(pipeline.DefaultSeed), "member to infect first")
}

// rangeFlags binds --min and --max.
func rangeFlags(cmd *cobra.Command, rng *pipeline.Range) {
	cmd.Flags().IntVar(&rng.Min, "min", pipeline.DefaultRange.Min, "minimum number of members to infect")
	cmd.Flags().IntVar(&rng.Max, "max", pipeline.DefaultRange.Max, "maximum number of members to infect")
}

// cacheFlags binds --no-cache and --refresh.
func cacheFlags(cmd *cobra.Command, noCache, refresh *bool) {
	cmd.Flags().BoolVar(noCache, "no-cache", false, "disable the graph cache")
	cmd.Flags().BoolVar(refresh, "refresh", false, "regenerate even if the graph is cached")
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	return strings.Split(s, ",")
}
