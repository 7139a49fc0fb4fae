package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fedimser/GroupEnumerator/families"
	"github.com/fedimser/GroupEnumerator/finfield"
	"github.com/fedimser/GroupEnumerator/isocheck"
)

func (c *CLI) fieldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Finite field utilities",
	}

	cmd.AddCommand(c.fieldDescribeCommand())
	cmd.AddCommand(c.fieldRootsCommand())

	return cmd
}

func (c *CLI) fieldDescribeCommand() *cobra.Command {
	var tables bool

	cmd := &cobra.Command{
		Use:     "describe Q",
		Short:   "Print the presentation of F_q and optionally its operation tables",
		Example: "  genum field describe 27 --tables",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newField(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(c.out, f.Describe(tables))
			if !tables {
				printDetail(c.out, "multiplicative group cyclic: %t", multiplicativeCyclic(f))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&tables, "tables", false, "also print addition, multiplication and division tables")

	return cmd
}

func (c *CLI) fieldRootsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roots Q C0 [C1 ...]",
		Short: "Find the roots in F_q of an integer polynomial C0 + C1·x + ...",
		Example: `  # roots of x^3 in F_4
  genum field roots 4 0 0 0 1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newField(args[0])
			if err != nil {
				return err
			}
			coefs := make([]int, len(args)-1)
			for i, s := range args[1:] {
				if coefs[i], err = strconv.Atoi(s); err != nil {
					return fmt.Errorf("coefficient %q: %w", s, err)
				}
			}
			poly, err := finfield.FromCoefficients(coefs, f.Characteristic())
			if err != nil {
				return err
			}

			fmt.Fprint(c.out, f.Describe(false))
			printInfo(c.out, "Polynomial is %s", poly)
			roots := f.Roots(coefs)
			if len(roots) == 0 {
				printWarning(c.out, "No roots.")
				return nil
			}
			printSuccess(c.out, "Found %d roots:", len(roots))
			for _, r := range roots {
				printDetail(c.out, "%s", f.ElementString(r))
			}

			return nil
		},
	}
}

func newField(arg string) (*finfield.Field, error) {
	q, err := parsePositive("q", arg)
	if err != nil {
		return nil, err
	}

	return finfield.New(q)
}

// multiplicativeCyclic reports whether F_q* is isomorphic to Z_{q-1}.
func multiplicativeCyclic(f *finfield.Field) bool {
	mg, err := f.MultiplicativeGroup()
	if err != nil {
		return false
	}
	z, err := families.Cyclic(f.Cardinality() - 1)
	if err != nil {
		return false
	}

	return isocheck.AreIsomorphic(mg, z)
}
