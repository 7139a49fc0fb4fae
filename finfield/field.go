package finfield

import (
	"fmt"
	"strings"

	"github.com/fedimser/GroupEnumerator/fingroup"
)

// MaxCardinality bounds New: the field keeps two q×q tables.
const MaxCardinality = 1 << 12

// Field is F_q = Z_p[x]/(m) with precomputed operation tables. Elements are
// compact forms in [0, q). A Field is immutable and safe for concurrent use.
type Field struct {
	p, k, q  int
	modulus  Polynomial
	elements []Polynomial
	add, mul []int // flat q×q
	inv      []int // inv[0] is unused
}

// CanCreate reports whether a field of q elements exists, i.e. q = p^k with
// p prime and k ≥ 1.
func CanCreate(q int) bool {
	if q < 2 {
		return false
	}

	return IntLog(q, SmallestPrimeDivisor(q)) > 0
}

// New builds F_q.
//
// Errors: ErrNoSuchField if q is not a prime power, ErrTooLarge above
// MaxCardinality.
func New(q int) (*Field, error) {
	if !CanCreate(q) {
		return nil, fmt.Errorf("New: q=%d: %w", q, ErrNoSuchField)
	}
	if q > MaxCardinality {
		return nil, fmt.Errorf("New: q=%d > %d: %w", q, MaxCardinality, ErrTooLarge)
	}
	p := SmallestPrimeDivisor(q)
	k := IntLog(q, p)
	m, err := Irreducible(p, k)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	f := &Field{p: p, k: k, q: q, modulus: m}
	if err = f.buildTables(); err != nil {
		return nil, fmt.Errorf("New: q=%d: %w", q, err)
	}

	return f, nil
}

func (f *Field) buildTables() error {
	q := f.q
	f.elements = make([]Polynomial, q)
	for i := range f.elements {
		f.elements[i] = fromCompact(i, f.p)
	}
	f.add = make([]int, q*q)
	f.mul = make([]int, q*q)
	f.inv = make([]int, q)

	var a, b int
	for a = 0; a < q; a++ {
		for b = 0; b < q; b++ {
			f.add[a*q+b] = add(f.elements[a], f.elements[b]).Compact()
			prod := residual(multiply(f.elements[a], f.elements[b]), f.modulus).Compact()
			f.mul[a*q+b] = prod
			if prod == 1 {
				f.inv[a] = b
			}
			if prod == 0 && a != 0 && b != 0 {
				return fmt.Errorf("%s·%s: %w", f.elements[a], f.elements[b], ErrZeroDivisor)
			}
		}
	}

	return nil
}

// Cardinality returns q.
func (f *Field) Cardinality() int { return f.q }

// Characteristic returns p.
func (f *Field) Characteristic() int { return f.p }

// Degree returns k with q = p^k.
func (f *Field) Degree() int { return f.k }

// Modulus returns the irreducible polynomial defining the field.
func (f *Field) Modulus() Polynomial { return f.modulus }

// Element returns the polynomial representative of element a.
func (f *Field) Element(a int) Polynomial { return f.elements[a] }

// Add returns a+b.
func (f *Field) Add(a, b int) int { return f.add[a*f.q+b] }

// Mul returns a·b.
func (f *Field) Mul(a, b int) int { return f.mul[a*f.q+b] }

// Neg returns −a.
func (f *Field) Neg(a int) int { return f.Times(a, f.p-1) }

// Sub returns a−b.
func (f *Field) Sub(a, b int) int { return f.Add(a, f.Neg(b)) }

// Inv returns a⁻¹, or ErrDivisionByZero for a = 0.
func (f *Field) Inv(a int) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("Inv: %w", ErrDivisionByZero)
	}

	return f.inv[a], nil
}

// Div returns a/b, or ErrDivisionByZero for b = 0.
func (f *Field) Div(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("Div: %s/0: %w", f.ElementString(a), ErrDivisionByZero)
	}

	return f.Mul(a, f.inv[b]), nil
}

// Times returns a added to itself m times; m is taken mod p.
func (f *Field) Times(a, m int) int {
	ans := 0
	for m = mod(m, f.p); m > 0; m /= 2 {
		if m%2 == 1 {
			ans = f.Add(ans, a)
		}
		a = f.Add(a, a)
	}

	return ans
}

// Power returns a^e. Negative e is reduced mod q−1, which requires a ≠ 0;
// Power panics with ErrDivisionByZero for a = 0 and e < 0.
func (f *Field) Power(a, e int) int {
	if e < 0 {
		if a == 0 {
			panic(fmt.Errorf("Power: 0^%d: %w", e, ErrDivisionByZero))
		}
		e = mod(e, f.q-1)
	}
	ans := 1
	for ; e > 0; e /= 2 {
		if e%2 == 1 {
			ans = f.Mul(ans, a)
		}
		a = f.Mul(a, a)
	}

	return ans
}

// Eval evaluates Σ coefs[i]·x^i, the coefficients being integers acting by
// repeated addition.
func (f *Field) Eval(coefs []int, x int) int {
	ans := 0
	for i, c := range coefs {
		ans = f.Add(ans, f.Times(f.Power(x, i), c))
	}

	return ans
}

// Roots returns, in ascending order, every element where the integer
// polynomial coefs (lowest degree first) vanishes.
func (f *Field) Roots(coefs []int) []int {
	var out []int
	for x := 0; x < f.q; x++ {
		if f.Eval(coefs, x) == 0 {
			out = append(out, x)
		}
	}

	return out
}

// AdditiveGroup returns (F_q, +). Element labels are unchanged.
func (f *Field) AdditiveGroup() (*fingroup.Group, error) {
	return fingroup.New(f.table(0))
}

// MultiplicativeGroup returns (F_q \ {0}, ·) with element a relabelled a−1,
// so the unit becomes the identity 0.
func (f *Field) MultiplicativeGroup() (*fingroup.Group, error) {
	return fingroup.New(f.table(1))
}

// table returns the addition (skip 0) or multiplication (skip 1) table
// restricted to elements ≥ skip, relabelled by −skip.
func (f *Field) table(skip int) [][]int {
	src := f.add
	if skip == 1 {
		src = f.mul
	}
	n := f.q - skip
	t := make([][]int, n)
	for i := range t {
		t[i] = make([]int, n)
		for j := range t[i] {
			t[i][j] = src[(i+skip)*f.q+j+skip] - skip
		}
	}

	return t
}

// ElementString formats element a as a polynomial in the generator "a".
func (f *Field) ElementString(a int) string { return f.elements[a].Format("a") }

// String returns the field name, e.g. "F_9".
func (f *Field) String() string { return fmt.Sprintf("F_%d", f.q) }

// Describe returns the presentation of the field and, if withTables is set,
// its addition, multiplication and division tables, one "x op y = z" line
// per pair. Division by zero is shown as N/A.
func (f *Field) Describe(withTables bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s is F_%d[x]/(%s).\n", f, f.p, f.modulus)
	if !withTables {
		return sb.String()
	}

	ops := []struct {
		name, symbol string
		apply        func(a, b int) string
	}{
		{"Addition", "+", func(a, b int) string { return f.ElementString(f.Add(a, b)) }},
		{"Multiplication", "*", func(a, b int) string { return f.ElementString(f.Mul(a, b)) }},
		{"Division", "/", func(a, b int) string {
			c, err := f.Div(a, b)
			if err != nil {
				return "N/A"
			}

			return f.ElementString(c)
		}},
	}
	for _, op := range ops {
		fmt.Fprintf(&sb, "%s table for %s:\n", op.name, f)
		for a := 0; a < f.q; a++ {
			for b := 0; b < f.q; b++ {
				fmt.Fprintf(&sb, "%s %s %s = %s\n", f.ElementString(a), op.symbol, f.ElementString(b), op.apply(a, b))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
