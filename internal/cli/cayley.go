package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/cayley"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

type cayleyOpts struct {
	format   string
	output   string
	gens     []int
	collapse bool
}

func (c *CLI) cayleyCommand() *cobra.Command {
	opts := cayleyOpts{}

	cmd := &cobra.Command{
		Use:   "cayley ORDER INDEX",
		Short: "Draw the Cayley graph of a group",
		Long: `Draw the Cayley graph of group INDEX of the given order, with one edge
color per generator. Without --gens a small generating set is chosen.`,
		Example: `  genum cayley 8 4 --format svg -o q8.svg
  genum cayley 6 1 --gens 1,3 --collapse`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parsePositive("order", args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[1], err)
			}
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("unknown format %q (valid: %s, %s)", opts.format, formatDOT, formatSVG)
			}

			return c.runCayley(cmd.Context(), order, index, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntSliceVar(&opts.gens, "gens", nil, "generators to draw, comma separated")
	cmd.Flags().BoolVar(&opts.collapse, "collapse", false, "draw involutions as undirected edges")

	return cmd
}

func (c *CLI) runCayley(ctx context.Context, order, index int, opts cayleyOpts) error {
	groups, err := c.groupsOf(ctx, order)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(groups) {
		return fmt.Errorf("order %d has %d groups, no index %d", order, len(groups), index)
	}
	g := groups[index]

	gens := opts.gens
	if len(gens) == 0 {
		gens = cayley.GeneratingSet(g)
	}
	for _, s := range gens {
		if s < 0 || s >= order {
			return fmt.Errorf("generator %d out of range [0, %d)", s, order)
		}
	}
	if !cayley.Generates(g, gens) {
		loggerFromContext(ctx).Warn("generators do not span the group, graph is disconnected", "gens", gens)
	}

	dot := cayley.ToDOT(g, gens, cayley.Options{
		Name:                fmt.Sprintf("G%d_%d", order, index),
		CollapseInvolutions: opts.collapse,
	})
	data := []byte(dot)
	if opts.format == formatSVG {
		if data, err = cayley.RenderSVG(ctx, dot); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err = c.out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess(c.out, "Cayley graph of group %d of order %d", index, order)
	printFile(c.out, opts.output)

	return nil
}
