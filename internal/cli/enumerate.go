package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/catalog"
)

const reportSeparator = "------------------------"

func (c *CLI) enumerateCommand() *cobra.Command {
	var (
		from, to int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Write all groups of a range of orders to a report file",
		Long: `Enumerate every group of each order in [from, to] up to isomorphism and
write a report: for each order a header, the number of groups, every Cayley
table and the time the order took. Use --output - for stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = c.cfg.Enumerate.From
			}
			if !cmd.Flags().Changed("to") {
				to = c.cfg.Enumerate.To
			}
			if output == "" {
				output = c.cfg.Enumerate.Output
			}
			if from < 1 || to < from {
				return fmt.Errorf("invalid range [%d, %d]", from, to)
			}

			return c.runEnumerate(cmd.Context(), from, to, output)
		},
	}

	cmd.Flags().IntVar(&from, "from", 1, "smallest order, overrides enumerate.from")
	cmd.Flags().IntVar(&to, "to", 9, "largest order, overrides enumerate.to")
	cmd.Flags().StringVarP(&output, "output", "o", "", "report file, - for stdout; overrides enumerate.output")

	return cmd
}

func (c *CLI) runEnumerate(ctx context.Context, from, to int, output string) error {
	cat, err := c.newCatalog(ctx)
	if err != nil {
		return err
	}
	defer cat.Close()

	w := c.out
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	logger := loggerFromContext(ctx)
	for order := from; order <= to; order++ {
		var spin *Spinner
		if !c.verbose && output != "-" {
			spin = newSpinner(ctx, c.errw, fmt.Sprintf("Enumerating order %d...", order))
			spin.Start()
		}
		prog := newProgress(logger)
		l, err := writeOrder(ctx, bw, cat, order)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Enumerated order %d", order))
		if output != "-" {
			printSuccess(c.out, "Order %s", StyleNumber.Render(fmt.Sprint(order)))
			printOrderStats(c.out, len(l.Groups), l.Stats.Nodes, l.Hit)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if output != "-" {
		printFile(c.out, output)
	}

	return nil
}

// writeOrder appends the report section of one order to w.
func writeOrder(ctx context.Context, w io.Writer, cat *catalog.Catalog, order int) (*catalog.Lookup, error) {
	start := time.Now()
	fmt.Fprintf(w, "All finite groups of order %d:\n", order)
	l, err := cat.Fetch(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", order, err)
	}
	fmt.Fprintf(w, "Count: %d\n", len(l.Groups))
	for _, g := range l.Groups {
		if err := g.WriteTable(w); err != nil {
			return nil, err
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Time elapsed: %dms.\n", time.Since(start).Milliseconds())
	fmt.Fprintf(w, "%s\n\n\n", reportSeparator)

	return l, nil
}
