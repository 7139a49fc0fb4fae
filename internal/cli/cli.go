// Package cli implements the genum command-line interface.
//
// The commands cover the whole module: enumerating groups of small orders
// into a report file, inspecting a single group, checking two tables for
// isomorphism, describing finite fields, drawing Cayley graphs, browsing the
// catalog interactively, serving the HTTP API and managing the catalog cache.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and handed down to the generator and the
// catalog.
//
// # Configuration
//
// Settings come from a TOML file (--config, default genum.toml in the
// working directory); a missing file means built-in defaults.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/catalog"
	"github.com/fedimser/GroupEnumerator/internal/config"
)

const (
	// appName is the application name used for directories and display.
	appName = "genum"

	// defaultConfigFile is looked up in the working directory.
	defaultConfigFile = "genum.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is reported by --version.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	errw       io.Writer
	cfg        config.Config
	configPath string
	noCache    bool
	verbose    bool
}

// New creates a CLI writing command output to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		errw:   logw,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "genum enumerates finite groups up to isomorphism",
		Long:          `genum builds every group of a given order by completing Cayley tables, keeps one representative per isomorphism class and caches the results.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return nil
		},
	}

	root.SetOut(c.out)
	root.SetErr(c.errw)
	root.PersistentFlags().StringVar(&c.configPath, "config", defaultConfigFile, "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "compute without reading or writing the catalog cache")

	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.isoCommand())
	root.AddCommand(c.fieldCommand())
	root.AddCommand(c.cayleyCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// Execute runs the root command with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// =============================================================================
// Catalog Factory
// =============================================================================

// newCatalog opens the configured store and wraps it in a catalog.
func (c *CLI) newCatalog(ctx context.Context) (*catalog.Catalog, error) {
	store, err := c.newStore(ctx)
	if err != nil {
		return nil, err
	}
	ttl, err := c.cfg.CacheTTL()
	if err != nil {
		store.Close()
		return nil, err
	}

	return catalog.New(store, catalog.WithTTL(ttl), catalog.WithLogger(c.Logger)), nil
}

// newStore builds the store named by cache.backend; --no-cache wins.
func (c *CLI) newStore(ctx context.Context) (catalog.Store, error) {
	if c.noCache {
		return catalog.NewNullStore(), nil
	}

	cc := c.cfg.Cache
	switch cc.Backend {
	case config.BackendNone:
		return catalog.NewNullStore(), nil
	case config.BackendFile:
		dir, err := c.storeDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "err", err)
			return catalog.NewNullStore(), nil
		}
		return catalog.NewFileStore(dir)
	case config.BackendRedis:
		c.Logger.Debug("using redis catalog", "addr", cc.Redis.Addr)
		return catalog.NewRedisStore(&redis.Options{
			Addr:     cc.Redis.Addr,
			Password: cc.Redis.Password,
			DB:       cc.Redis.DB,
		}), nil
	case config.BackendMongo:
		c.Logger.Debug("using mongo catalog", "uri", cc.Mongo.URI)
		return catalog.NewMongoStore(ctx, cc.Mongo.URI, cc.Mongo.Database, cc.Mongo.Collection)
	default:
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownBackend, cc.Backend)
	}
}

// storeDir is cache.dir when set, otherwise the user cache directory.
func (c *CLI) storeDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}

	return cacheDir()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/genum/).
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
