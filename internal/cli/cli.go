package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barfly/pkg/buildinfo"
	"github.com/matzehuels/barfly/pkg/cache"
	"github.com/matzehuels/barfly/pkg/config"
	"github.com/matzehuels/barfly/pkg/observability"
)

// appName is the application name used for directories and display.
const appName = "barfly"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose      bool
	settingsPath string
	noCache      bool
	redisAddr    string

	// settings and settingsHash are loaded once per invocation.
	settings     config.Settings
	settingsHash string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		settings: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Barfly draws animated bar charts from data documents",
		Long: `Barfly lays out bar charts from TOML, HCL or XLSX documents, animates
transitions between datasets, and renders the result as SVG, JSON, PNG or PDF
or live in the terminal.`,
		Version:           buildinfo.Get().Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.settingsPath, "settings", "", "TOML file with process-wide chart defaults")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable the artifact cache")
	pf.StringVar(&c.redisAddr, "redis", "", "cache artifacts in Redis at this address instead of on disk")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads settings, attaches the logger to the command context and,
// at debug level, routes lifecycle events into the log.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	if c.settingsPath != "" {
		s, err := config.Load(c.settingsPath)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		data, err := os.ReadFile(c.settingsPath)
		if err != nil {
			return fmt.Errorf("read settings: %w", err)
		}
		c.settings, c.settingsHash = s, cache.Hash(data)
		c.Logger.Debug("settings loaded", "path", c.settingsPath)
	}

	if c.Logger.GetLevel() <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetChartHooks(hooks)
		observability.SetRenderHooks(hooks)
		observability.SetCacheHooks(hooks)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// openCache returns the artifact cache selected by the flags, reporting to
// the cache hooks.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	switch {
	case c.noCache:
		return cache.NewNullCache(), nil
	case c.redisAddr != "":
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: c.redisAddr})
		if err != nil {
			return nil, err
		}
		return cache.Observe(rc), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.Observe(fc), nil
}

// keyer scopes artifact keys by build version.
func keyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Get().Version+":")
}

// cacheDir returns the cache directory using XDG standard (~/.cache/barfly/).
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
