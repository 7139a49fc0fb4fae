// Package cayley draws Cayley graphs of finite groups as Graphviz DOT.
//
// A Cayley graph has one node per element and, for every generator s, an
// edge x → x·s. GeneratingSet picks generators greedily: scanning elements
// in ascending order, an element is added when it lies outside the subgroup
// generated so far. The result generates the group but is not necessarily
// minimal.
//
// Walk explores the graph breadth-first from the identity, giving the word
// metric: the shortest product of generators for every element and the
// diameter of the graph.
//
// Usage:
//
//	gens := cayley.GeneratingSet(g)
//	res, err := cayley.Walk(g, gens, cayley.WithContext(ctx))
//	dot := cayley.ToDOT(g, gens, cayley.Options{CollapseInvolutions: true})
//	svg, err := cayley.RenderSVG(ctx, dot)
//
// Rendering runs Graphviz in-process through github.com/goccy/go-graphviz.
package cayley
