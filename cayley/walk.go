package cayley

import (
	"context"
	"errors"
	"fmt"

	"github.com/fedimser/GroupEnumerator/fingroup"
)

// Sentinel errors for Walk.
var (
	// ErrBadGenerator is returned when a generator is not an element of g.
	ErrBadGenerator = errors.New("cayley: generator out of range")

	// ErrOptionViolation is returned when an invalid WalkOption is supplied.
	ErrOptionViolation = errors.New("cayley: invalid option supplied")
)

// Unreached marks Depth, Parent and Via entries of elements the walk did
// not reach.
const Unreached = -1

// WalkOption configures Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters and callbacks of a walk.
type WalkOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called for every reached element in visit order. A
	// returned error stops the walk.
	OnVisit func(x, depth int) error

	// MaxDepth, if > 0, stops exploring beyond words of this length.
	MaxDepth int

	err error
}

// DefaultWalkOptions returns a background context, no depth limit and a
// no-op hook.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets the context; nil is ignored.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visit hook; nil is ignored.
func WithOnVisit(fn func(x, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits word length. 0 means no limit; negative values are
// reported as ErrOptionViolation.
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WalkResult is the breadth-first tree of the Cayley graph rooted at the
// identity. Indices are group elements.
type WalkResult struct {
	Order  []int // elements in visit order, starting with 0
	Depth  []int // word length, or Unreached
	Parent []int // predecessor on a shortest word, or Unreached (and for 0)
	Via    []int // generator on the edge Parent[x] → x, or Unreached
}

// Reached reports whether x lies in the walked subgroup.
func (r *WalkResult) Reached(x int) bool { return r.Depth[x] != Unreached }

// Diameter returns the largest word length among reached elements.
func (r *WalkResult) Diameter() int {
	last := r.Order[len(r.Order)-1]

	return r.Depth[last]
}

// Word returns a shortest product of generators equal to x, leftmost
// factor first; nil for the identity or an unreached element.
func (r *WalkResult) Word(x int) []int {
	if !r.Reached(x) || x == 0 {
		return nil
	}
	word := make([]int, r.Depth[x])
	for i := len(word) - 1; x != 0; i-- {
		word[i] = r.Via[x]
		x = r.Parent[x]
	}

	return word
}

type queueItem struct {
	x     int
	depth int
}

type walker struct {
	g     *fingroup.Group
	gens  []int
	opts  WalkOptions
	queue []queueItem
	res   *WalkResult
}

// Walk runs breadth-first search over the Cayley graph of g with respect to
// gens, starting at the identity and following edges x → x·s. The reached
// elements form the subgroup generated by gens, and Depth is the word
// metric.
//
// Errors: ErrBadGenerator, ErrOptionViolation, the context error, or an
// OnVisit error wrapped with the element. No partial result is returned
// with an error.
//
// Complexity: O(n·|gens|) time, O(n) memory.
func Walk(g *fingroup.Group, gens []int, opts ...WalkOption) (*WalkResult, error) {
	o := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Order()
	for _, s := range gens {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("Walk: generator %d not in [0, %d): %w", s, n, ErrBadGenerator)
		}
	}

	w := &walker{
		g:     g,
		gens:  gens,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &WalkResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, Unreached),
			Parent: filled(n, Unreached),
			Via:    filled(n, Unreached),
		},
	}
	w.enqueue(0, 0, Unreached, Unreached)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

func (w *walker) enqueue(x, depth, parent, via int) {
	w.res.Depth[x] = depth
	w.res.Parent[x] = parent
	w.res.Via[x] = via
	w.queue = append(w.queue, queueItem{x: x, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.x)
		if err := w.opts.OnVisit(item.x, item.depth); err != nil {
			return fmt.Errorf("cayley: OnVisit error at %d: %w", item.x, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, s := range w.gens {
			if y := w.g.Op(item.x, s); w.res.Depth[y] == Unreached {
				w.enqueue(y, next, item.x, s)
			}
		}
	}

	return nil
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
