package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permgen/pkg/buildinfo"
	"github.com/matzehuels/permgen/pkg/cache"
	"github.com/matzehuels/permgen/pkg/config"
	"github.com/matzehuels/permgen/pkg/observability"
	"github.com/matzehuels/permgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "permgen"
)

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

	// Stdout receives permutations (without -o), summaries and help.
	Stdout io.Writer
	// Stderr receives logs, warnings and the spinner.
	Stderr io.Writer

	// Config holds the values loaded from the config file, if any.
	Config config.Config

	verbose    bool
	configPath string
	args       []string

	// interactive enables the spinner; it is true when Stderr is a terminal.
	interactive bool
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:      newLogger(w, level),
		Stdout:      os.Stdout,
		Stderr:      w,
		interactive: isTerminal(w),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Execute builds the command tree and runs it with args (without the
// program name). The raw args are kept so the generator can warn about
// options it does not recognize.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	c.args = args
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself is the permutation generator.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.generateCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config `file` (default $XDG_CONFIG_HOME/permgen/config.toml)")
	root.PersistentPreRunE = c.setup

	// Register all subcommands
	root.AddCommand(c.countCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.stepCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies the log level and registers the
// logging hooks. It runs before every command.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg

	verbose := c.verbose
	if !cmd.Flags().Changed("verbose") {
		verbose = verbose || cfg.Verbose
	}
	level := LogInfo
	if verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	c.Logger.Debug("starting", "version", buildinfo.Short())
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	observability.SetEnumerationHooks(logHooks{})
	observability.SetInputHooks(logHooks{})

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(logger *log.Logger) *pipeline.Runner {
	if logger == nil {
		logger = c.Logger
	}
	return pipeline.NewRunner(logger)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/permgen/).
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

// graphCache opens the rendered graph cache, or a null cache when disabled
// or when the cache directory cannot be created.
func (c *CLI) graphCache(disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("graph cache disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("graph cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// configDir returns the config directory using XDG standard (~/.config/permgen/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads --config when given, or the default config file when it
// exists.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	dir, err := configDir()
	if err != nil {
		return config.Config{}, nil
	}
	return config.LoadOptional(filepath.Join(dir, config.FileName))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
