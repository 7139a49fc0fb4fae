package cli

import (
	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		maxOrder int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and the isomorphism checker over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			if maxOrder < 1 {
				maxOrder = c.cfg.Server.MaxOrder
			}

			ctx := cmd.Context()
			cat, err := c.newCatalog(ctx)
			if err != nil {
				return err
			}
			defer cat.Close()

			srv := server.New(cat, server.WithMaxOrder(maxOrder), server.WithLogger(c.Logger))
			printInfo(c.out, "Listening on %s", StyleValue.Render(addr))
			printDetail(c.out, "max order %d", maxOrder)

			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	cmd.Flags().IntVar(&maxOrder, "max-order", 0, "largest order a request may enumerate (default server.max_order)")

	return cmd
}
