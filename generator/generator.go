package generator

import (
	"fmt"

	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/isocheck"
)

const methodGenerate = "Generate"

// cancelCheckEvery is the number of nodes between two context checks.
const cancelCheckEvery = 256

// Generate enumerates the groups of the given order, one per isomorphism
// class, in depth-first discovery order. The first group found in a class
// is the one kept.
//
// Errors: ErrInvalidOrder for order < 1, ErrInconsistentLeaf on an internal
// propagation failure, or the context error when cancelled. No partial
// result is returned with an error.
func Generate(order int, opts ...Option) (Result, error) {
	if order < 1 {
		return Result{}, fmt.Errorf("%s: order=%d: %w", methodGenerate, order, ErrInvalidOrder)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.Ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	e := &genEngine{n: order, opts: o}
	if err := e.complete(newGrid(order)); err != nil {
		return Result{}, err
	}
	o.Logger.Debug("enumeration done",
		"order", order,
		"groups", len(e.groups),
		"nodes", e.stats.Nodes,
		"pruned", e.stats.Pruned,
		"leaves", e.stats.Leaves,
		"duplicates", e.stats.Duplicates,
	)

	return Result{Groups: e.groups, Stats: e.stats}, nil
}

// AllGroups is Generate without the statistics.
func AllGroups(order int, opts ...Option) ([]*fingroup.Group, error) {
	res, err := Generate(order, opts...)
	if err != nil {
		return nil, err
	}

	return res.Groups, nil
}

// genEngine holds the state of one enumeration. Grids are copied on every
// branch, so the engine itself only accumulates results.
type genEngine struct {
	n      int
	opts   Options
	groups []*fingroup.Group
	stats  Stats
}

// complete owns g: it may mutate it and callers must not reuse it.
func (e *genEngine) complete(g *grid) error {
	cell := g.firstUndetermined()
	if cell < 0 {
		return e.leaf(g)
	}

	var (
		v    int
		next *grid
	)
	for v = 0; v < e.n; v++ {
		e.stats.Nodes++
		if e.stats.Nodes%cancelCheckEvery == 0 {
			select {
			case <-e.opts.Ctx.Done():
				return fmt.Errorf("%s: %w", methodGenerate, e.opts.Ctx.Err())
			default:
			}
		}

		next = g.clone()
		next.cells[cell] = v
		if !next.propagate() {
			e.stats.Pruned++
			continue
		}
		if err := e.complete(next); err != nil {
			return err
		}
	}

	return nil
}

// leaf validates a complete grid and keeps it if it opens a new class.
func (e *genEngine) leaf(g *grid) error {
	e.stats.Leaves++
	candidate, err := fingroup.New(g.rows())
	if err != nil {
		return fmt.Errorf("%s: %w: %w", methodGenerate, ErrInconsistentLeaf, err)
	}

	c := isocheck.NewChecker(candidate)
	duplicate := false
	for _, kept := range e.groups {
		if c.IsIsomorphic(kept) {
			duplicate = true
			break
		}
	}
	if e.opts.OnLeaf != nil {
		e.opts.OnLeaf(candidate, duplicate)
	}
	if duplicate {
		e.stats.Duplicates++
		return nil
	}

	e.groups = append(e.groups, candidate)
	e.opts.Logger.Debug("new class",
		"order", e.n,
		"index", len(e.groups)-1,
		"abelian", candidate.IsAbelian(),
		"leaves", e.stats.Leaves,
	)

	return nil
}
