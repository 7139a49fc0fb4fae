package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/isocheck"
)

func (c *CLI) isoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "iso FILE1 FILE2",
		Short: "Check whether two Cayley tables define isomorphic groups",
		Long: `Read two Cayley tables (one row per line, whitespace separated, element 0
the identity) and decide whether the groups are isomorphic. On success the
witness bijection is printed as x→σ(x).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, err := readGroup(args[0])
			if err != nil {
				return err
			}
			g2, err := readGroup(args[1])
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("checking isomorphism", "order1", g1.Order(), "order2", g2.Order())
			p, ok := isocheck.Isomorphism(g1, g2)
			if !ok {
				printWarning(c.out, "not isomorphic")
				return nil
			}
			printSuccess(c.out, "isomorphic")
			for x, y := range p.Slice() {
				printDetail(c.out, "%d %s %d", x, iconArrow, y)
			}

			return nil
		},
	}
}

func readGroup(path string) (*fingroup.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := fingroup.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
