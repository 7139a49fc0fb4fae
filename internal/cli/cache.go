package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/catalog"
	"github.com/fedimser/GroupEnumerator/internal/config"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the catalog cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand empties a file cache outright. Key/value backends have
// no listing, so for those it invalidates the orders up to --max-order.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var maxOrder int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached enumeration results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if fs, ok := store.(*catalog.FileStore); ok {
				count, err := fs.Clear()
				if err != nil {
					return err
				}
				printSuccess(c.out, "Cleared %d cached entries", count)
				printDetail(c.out, "Directory: %s", fs.Dir())
				return nil
			}
			if _, ok := store.(*catalog.NullStore); ok {
				printInfo(c.out, "Cache is disabled")
				return nil
			}

			if maxOrder < 1 {
				maxOrder = max(c.cfg.Server.MaxOrder, c.cfg.Enumerate.To)
			}
			cat := catalog.New(store, catalog.WithLogger(c.Logger))
			for order := 1; order <= maxOrder; order++ {
				if err := cat.Invalidate(ctx, order); err != nil {
					return fmt.Errorf("invalidate order %d: %w", order, err)
				}
			}
			printSuccess(c.out, "Invalidated orders 1..%d", maxOrder)
			printDetail(c.out, "Backend: %s", c.cfg.Cache.Backend)

			return nil
		},
	}

	cmd.Flags().IntVar(&maxOrder, "max-order", 0, "largest order to invalidate on key/value backends")

	return cmd
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Cache.Backend != config.BackendFile {
				printWarning(c.out, "cache backend is %s, not file", c.cfg.Cache.Backend)
			}
			dir, err := c.storeDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(c.out, dir)

			return nil
		},
	}
}
