package cayley

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/fedimser/GroupEnumerator/fingroup"
)

// palette holds edge colours, one per generator, reused cyclically.
var palette = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231",
	"#911eb4", "#42d4f4", "#f032e6", "#9a6324",
}

// Options configures DOT generation.
type Options struct {
	// Name is the graph name; defaults to "G".
	Name string

	// Labels, if long enough, replaces element indices as node labels.
	Labels []string

	// CollapseInvolutions draws a generator of order 2 as one undirected
	// edge per pair instead of two opposite arrows.
	CollapseInvolutions bool
}

// GeneratingSet returns a generating set of g in ascending order. The
// trivial group yields an empty set.
func GeneratingSet(g *fingroup.Group) []int {
	var (
		n    = g.Order()
		gens []int
		in   = make([]bool, n)
	)
	in[0] = true
	for x := 1; x < n; x++ {
		if in[x] {
			continue
		}
		gens = append(gens, x)
		in = span(g, gens)
	}

	return gens
}

// span marks the subgroup generated by gens: the elements reached by a walk
// from the identity, which is a subgroup in a finite group. gens must be
// elements of g.
func span(g *fingroup.Group, gens []int) []bool {
	in := make([]bool, g.Order())
	res, err := Walk(g, gens)
	if err != nil {
		panic(err)
	}
	for _, x := range res.Order {
		in[x] = true
	}

	return in
}

// Generates reports whether gens generate the whole of g. Generators
// outside g make it false.
func Generates(g *fingroup.Group, gens []int) bool {
	res, err := Walk(g, gens)
	if err != nil {
		return false
	}

	return len(res.Order) == g.Order()
}

// ToDOT renders the Cayley graph of g with respect to gens.
func ToDOT(g *fingroup.Group, gens []int, opts Options) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for x := 0; x < g.Order(); x++ {
		label := strconv.Itoa(x)
		if x < len(opts.Labels) {
			label = opts.Labels[x]
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", strconv.Itoa(x), label)
	}

	buf.WriteString("\n")
	for i, s := range gens {
		color := palette[i%len(palette)]
		involution := opts.CollapseInvolutions && g.Op(s, s) == 0
		for x := 0; x < g.Order(); x++ {
			y := g.Op(x, s)
			if involution {
				if y < x {
					continue
				}
				fmt.Fprintf(&buf, "  %q -> %q [color=%q, dir=none];\n", strconv.Itoa(x), strconv.Itoa(y), color)
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [color=%q];\n", strconv.Itoa(x), strconv.Itoa(y), color)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
