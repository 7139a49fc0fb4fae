package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// Permutation is a partial bijection from {0,…,n−1} onto itself.
// The zero value is an empty permutation of size 0.
type Permutation struct {
	forward []int // forward[pos] = value, or Unset
	inverse []int // inverse[value] = pos, or Unset
}

// New returns a permutation of size n with every position unset.
// A negative n is treated as 0.
func New(n int) *Permutation {
	if n < 0 {
		n = 0
	}
	p := &Permutation{
		forward: make([]int, n),
		inverse: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.forward[i] = Unset
		p.inverse[i] = Unset
	}

	return p
}

// Identity returns the total permutation i ↦ i of size n.
func Identity(n int) *Permutation {
	p := New(n)
	for i := range p.forward {
		p.forward[i] = i
		p.inverse[i] = i
	}

	return p
}

// FromSlice builds a total permutation from values, where values[pos] is the
// image of pos. The slice is copied.
//
// Errors:
//   - ErrOutOfRange if some value is outside [0,len(values)).
//   - ErrNotBijection if some value repeats.
func FromSlice(values []int) (*Permutation, error) {
	var (
		n = len(values)
		p = New(n)
	)
	for pos, v := range values {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("perm: FromSlice: values[%d]=%d: %w", pos, v, ErrOutOfRange)
		}
		if p.inverse[v] != Unset {
			return nil, fmt.Errorf("perm: FromSlice: value %d repeated: %w", v, ErrNotBijection)
		}
		p.forward[pos] = v
		p.inverse[v] = pos
	}

	return p, nil
}

// Len returns n, the size of the underlying set.
func (p *Permutation) Len() int { return len(p.forward) }

// Set assigns value to pos.
//
// Set panics if pos or value is out of range, if pos already holds a value,
// or if value is already claimed by another position. Search code must clone
// before extending, never overwrite.
func (p *Permutation) Set(pos, value int) {
	n := len(p.forward)
	if pos < 0 || pos >= n || value < 0 || value >= n {
		panic(fmt.Errorf("perm: Set(%d, %d) with n=%d: %w", pos, value, n, ErrOutOfRange))
	}
	if p.forward[pos] != Unset {
		panic(fmt.Errorf("perm: Set(%d, %d): holds %d: %w", pos, value, p.forward[pos], ErrPositionAssigned))
	}
	if p.inverse[value] != Unset {
		panic(fmt.Errorf("perm: Set(%d, %d): claimed by %d: %w", pos, value, p.inverse[value], ErrValueAssigned))
	}
	p.forward[pos] = value
	p.inverse[value] = pos
}

// Get returns the value assigned to pos, or Unset.
func (p *Permutation) Get(pos int) int { return p.forward[pos] }

// InverseOf returns the position holding value, or Unset.
func (p *Permutation) InverseOf(value int) int { return p.inverse[value] }

// EmptyPos returns the smallest unassigned position, or Unset if the
// permutation is total.
func (p *Permutation) EmptyPos() int {
	for pos, v := range p.forward {
		if v == Unset {
			return pos
		}
	}

	return Unset
}

// PossibleValues returns the values not yet claimed, in ascending order.
func (p *Permutation) PossibleValues() []int {
	out := make([]int, 0, len(p.inverse))
	for v, pos := range p.inverse {
		if pos == Unset {
			out = append(out, v)
		}
	}

	return out
}

// IsTotal reports whether every position is assigned.
func (p *Permutation) IsTotal() bool { return p.EmptyPos() == Unset }

// Clone returns an independent deep copy.
func (p *Permutation) Clone() *Permutation {
	c := &Permutation{
		forward: make([]int, len(p.forward)),
		inverse: make([]int, len(p.inverse)),
	}
	copy(c.forward, p.forward)
	copy(c.inverse, p.inverse)

	return c
}

// Slice returns a copy of the forward mapping; unset positions hold Unset.
func (p *Permutation) Slice() []int {
	out := make([]int, len(p.forward))
	copy(out, p.forward)

	return out
}

// Equal reports whether p and q have the same size and the same assignments.
func (p *Permutation) Equal(q *Permutation) bool {
	if len(p.forward) != len(q.forward) {
		return false
	}
	for i := range p.forward {
		if p.forward[i] != q.forward[i] {
			return false
		}
	}

	return true
}

// String formats the forward mapping as "[2 0 1]"; unset positions print as "_".
func (p *Permutation) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p.forward {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if v == Unset {
			sb.WriteByte('_')
		} else {
			sb.WriteString(strconv.Itoa(v))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
