package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/cayley"
	"github.com/fedimser/GroupEnumerator/fingroup"
)

func (c *CLI) showCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show ORDER [INDEX]",
		Short: "Show the groups of an order, or one of them",
		Example: `  genum show 8
  genum show 8 4 --plain`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parsePositive("order", args[0])
			if err != nil {
				return err
			}
			index := -1
			if len(args) == 2 {
				if index, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("index %q: %w", args[1], err)
				}
				if index < 0 {
					return fmt.Errorf("index must be non-negative, got %d", index)
				}
			}

			return c.runShow(cmd.Context(), order, index, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print tab-separated tables without styling")

	return cmd
}

func (c *CLI) runShow(ctx context.Context, order, index int, plain bool) error {
	groups, err := c.groupsOf(ctx, order)
	if err != nil {
		return err
	}

	selected := groups
	first := 0
	if index >= 0 {
		if index >= len(groups) {
			return fmt.Errorf("order %d has %d groups, no index %d", order, len(groups), index)
		}
		selected, first = groups[index:index+1], index
	}

	if !plain {
		printInfo(c.out, "%s groups of order %s",
			StyleNumber.Render(strconv.Itoa(len(groups))), StyleNumber.Render(strconv.Itoa(order)))
	}
	for i, g := range selected {
		if plain {
			if err := g.WriteTable(c.out); err != nil {
				return err
			}
			fmt.Fprintln(c.out)
			continue
		}
		describeGroup(c.out, first+i, g)
	}

	return nil
}

// describeGroup prints a summary of g and its table.
func describeGroup(w io.Writer, index int, g *fingroup.Group) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Group %d", index)))
	printKeyValue(w, "abelian", strconv.FormatBool(g.IsAbelian()))
	printKeyValue(w, "orders", elementOrders(g))
	gens := cayley.GeneratingSet(g)
	printKeyValue(w, "generators", fmt.Sprint(gens))
	if res, err := cayley.Walk(g, gens); err == nil {
		printKeyValue(w, "diameter", strconv.Itoa(res.Diameter()))
	}
	fmt.Fprintln(w, renderTable(g))
}

// elementOrders lists element orders with multiplicity, e.g. "1 2×5 4×2".
func elementOrders(g *fingroup.Group) string {
	counts := make([]int, g.Order()+1)
	for x := 0; x < g.Order(); x++ {
		counts[g.ElementOrder(x)]++
	}
	var parts []string
	for k, n := range counts {
		switch {
		case n == 1:
			parts = append(parts, strconv.Itoa(k))
		case n > 1:
			parts = append(parts, fmt.Sprintf("%d×%d", k, n))
		}
	}

	return strings.Join(parts, " ")
}

// groupsOf fetches the groups of an order through a short-lived catalog.
func (c *CLI) groupsOf(ctx context.Context, order int) ([]*fingroup.Group, error) {
	cat, err := c.newCatalog(ctx)
	if err != nil {
		return nil, err
	}
	defer cat.Close()

	return cat.Groups(ctx, order)
}

func parsePositive(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, n)
	}

	return n, nil
}
