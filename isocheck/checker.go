package isocheck

import (
	"context"
	"fmt"

	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/perm"
)

const methodIsomorphism = "Isomorphism"

// cancelCheckEvery is the number of search nodes between two context checks.
const cancelCheckEvery = 64

// Checker compares one fixed source group against candidates.
// Reusing a Checker avoids copying the source table for every comparison.
// A Checker holds no search state between calls.
type Checker struct {
	n      int
	src    [][]int
	orders []int // orders[k] = number of source elements of order k
}

// NewChecker prepares a Checker with g as the source group.
func NewChecker(g *fingroup.Group) *Checker {
	return &Checker{n: g.Order(), src: g.Table(), orders: orderCounts(g)}
}

// IsIsomorphic reports whether the source group is isomorphic to g.
func (c *Checker) IsIsomorphic(g *fingroup.Group) bool {
	_, ok := c.Isomorphism(g)

	return ok
}

// Isomorphism returns a witness bijection p with p(a·b) = p(a)·p(b), mapping
// source elements to elements of g, or (nil, false). Groups of different
// order are never isomorphic.
func (c *Checker) Isomorphism(g *fingroup.Group) (*perm.Permutation, bool) {
	p, ok, _ := c.IsomorphismContext(context.Background(), g)

	return p, ok
}

// IsomorphismContext is Isomorphism with cancellation. The context is polled
// every few search nodes; on cancellation it returns (nil, false) and the
// context error.
func (c *Checker) IsomorphismContext(ctx context.Context, g *fingroup.Group) (*perm.Permutation, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("%s: %w", methodIsomorphism, err)
	}
	if g.Order() != c.n || !sameCounts(c.orders, orderCounts(g)) {
		return nil, false, nil
	}
	e := isoEngine{n: c.n, g1: c.src, g2: g.Table(), ctx: ctx}
	p := perm.New(c.n)
	p.Set(0, 0)
	if !e.search(p) {
		if e.err != nil {
			return nil, false, fmt.Errorf("%s: %w", methodIsomorphism, e.err)
		}
		return nil, false, nil
	}

	return e.found, true, nil
}

// orderCounts histograms element orders; isomorphic groups agree on it.
func orderCounts(g *fingroup.Group) []int {
	counts := make([]int, g.Order()+1)
	for x := 0; x < g.Order(); x++ {
		counts[g.ElementOrder(x)]++
	}

	return counts
}

func sameCounts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}

// isoEngine carries the fixed inputs of one search plus its result.
type isoEngine struct {
	n      int
	g1, g2 [][]int
	found  *perm.Permutation

	ctx   context.Context
	nodes int
	err   error
}

// propagate extends p with every forced assignment. It returns false as soon
// as p cannot be extended to an isomorphism.
func (e *isoEngine) propagate(p *perm.Permutation) bool {
	var (
		i, j, i1, j1 int
		src, want    int
		cur          int
		changed      = true
	)
	for changed {
		changed = false
		for i = 0; i < e.n; i++ {
			if i1 = p.Get(i); i1 == perm.Unset {
				continue
			}
			for j = 0; j < e.n; j++ {
				if j1 = p.Get(j); j1 == perm.Unset {
					continue
				}
				src = e.g1[i][j]
				want = e.g2[i1][j1]
				cur = p.Get(src)
				if cur == perm.Unset {
					if p.InverseOf(want) != perm.Unset {
						return false
					}
					p.Set(src, want)
					changed = true
				} else if cur != want {
					return false
				}
			}
		}
	}

	return true
}

// search owns p: callers must not touch p after passing it in. A cancelled
// context sets e.err and unwinds with false.
func (e *isoEngine) search(p *perm.Permutation) bool {
	e.nodes++
	if e.nodes%cancelCheckEvery == 0 {
		if err := e.ctx.Err(); err != nil {
			e.err = err
			return false
		}
	}
	if !e.propagate(p) {
		return false
	}
	pos := p.EmptyPos()
	if pos == perm.Unset {
		e.found = p
		return true
	}
	for _, v := range p.PossibleValues() {
		next := p.Clone()
		next.Set(pos, v)
		if e.search(next) {
			return true
		}
		if e.err != nil {
			return false
		}
	}

	return false
}
