package finfield

import (
	"fmt"
	"strconv"
	"strings"
)

// Polynomial is an immutable polynomial over Z_p. Coefficients are stored
// lowest degree first, reduced into [0, p), without trailing zeros; the
// zero polynomial is the single coefficient 0.
type Polynomial struct {
	p     int
	coefs []int
}

// FromCoefficients builds a polynomial from coefficients given lowest degree
// first. Coefficients are reduced mod p; trailing zeros are dropped.
func FromCoefficients(coefs []int, p int) (Polynomial, error) {
	if p < 2 {
		return Polynomial{}, fmt.Errorf("FromCoefficients: p=%d: %w", p, ErrBadModulus)
	}
	c := make([]int, len(coefs))
	for i, v := range coefs {
		c[i] = mod(v, p)
	}

	return newPolynomial(c, p), nil
}

// FromCompact decodes the base-p compact form (see Compact).
func FromCompact(compact, p int) (Polynomial, error) {
	if p < 2 {
		return Polynomial{}, fmt.Errorf("FromCompact: p=%d: %w", p, ErrBadModulus)
	}

	return fromCompact(compact, p), nil
}

func fromCompact(compact, p int) Polynomial {
	var c []int
	for ; compact != 0; compact /= p {
		c = append(c, compact%p)
	}

	return newPolynomial(c, p)
}

// newPolynomial takes ownership of already reduced coefficients.
func newPolynomial(c []int, p int) Polynomial {
	last := len(c)
	for last > 1 && c[last-1] == 0 {
		last--
	}
	if last == 0 {
		c, last = []int{0}, 1
	}

	return Polynomial{p: p, coefs: c[:last]}
}

// Modulus returns p.
func (a Polynomial) Modulus() int { return a.p }

// Degree returns the degree; the zero polynomial has degree 0.
func (a Polynomial) Degree() int { return len(a.coefs) - 1 }

// Coefficient returns the coefficient of x^i, 0 beyond the degree.
func (a Polynomial) Coefficient(i int) int {
	if i < 0 || i >= len(a.coefs) {
		return 0
	}

	return a.coefs[i]
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (a Polynomial) Coefficients() []int {
	out := make([]int, len(a.coefs))
	copy(out, a.coefs)

	return out
}

// IsZero reports whether a is the zero polynomial.
func (a Polynomial) IsZero() bool { return len(a.coefs) == 1 && a.coefs[0] == 0 }

// IsMonic reports whether the leading coefficient is 1.
func (a Polynomial) IsMonic() bool { return a.coefs[len(a.coefs)-1] == 1 }

// Compact returns Σ c_i·p^i, a bijection between polynomials and
// non-negative integers.
func (a Polynomial) Compact() int {
	ans, pw := 0, 1
	for _, c := range a.coefs {
		ans += c * pw
		pw *= a.p
	}

	return ans
}

// ValueAt evaluates a at x in Z_p.
func (a Polynomial) ValueAt(x int) int {
	ans, pw := 0, 1
	x = mod(x, a.p)
	for _, c := range a.coefs {
		ans = (ans + pw*c) % a.p
		pw = pw * x % a.p
	}

	return ans
}

// Scale returns k·a.
func (a Polynomial) Scale(k int) Polynomial {
	c := make([]int, len(a.coefs))
	for i, v := range a.coefs {
		c[i] = mod(k*v, a.p)
	}

	return newPolynomial(c, a.p)
}

// Shift returns x^k·a for k ≥ 0.
func (a Polynomial) Shift(k int) Polynomial {
	if a.IsZero() {
		return a
	}
	c := make([]int, len(a.coefs)+k)
	copy(c[k:], a.coefs)

	return newPolynomial(c, a.p)
}

// Add returns a+b.
func Add(a, b Polynomial) (Polynomial, error) {
	if a.p != b.p {
		return Polynomial{}, fmt.Errorf("Add: %d vs %d: %w", a.p, b.p, ErrModulusMismatch)
	}

	return add(a, b), nil
}

func add(a, b Polynomial) Polynomial {
	c := make([]int, max(len(a.coefs), len(b.coefs)))
	copy(c, a.coefs)
	for i, v := range b.coefs {
		c[i] = (c[i] + v) % a.p
	}

	return newPolynomial(c, a.p)
}

// Multiply returns a·b.
func Multiply(a, b Polynomial) (Polynomial, error) {
	if a.p != b.p {
		return Polynomial{}, fmt.Errorf("Multiply: %d vs %d: %w", a.p, b.p, ErrModulusMismatch)
	}

	return multiply(a, b), nil
}

func multiply(a, b Polynomial) Polynomial {
	c := make([]int, len(a.coefs)+len(b.coefs)-1)
	for i, x := range a.coefs {
		for j, y := range b.coefs {
			c[i+j] = (c[i+j] + x*y) % a.p
		}
	}

	return newPolynomial(c, a.p)
}

// Residual returns r with a = q·m + r and deg r < deg m (r = 0 when m is
// constant). The leading coefficient of m must be invertible mod p, which
// always holds for prime p.
func Residual(a, m Polynomial) (Polynomial, error) {
	if a.p != m.p {
		return Polynomial{}, fmt.Errorf("Residual: %d vs %d: %w", a.p, m.p, ErrModulusMismatch)
	}
	if m.IsZero() {
		return Polynomial{}, fmt.Errorf("Residual: %w", ErrDivisionByZero)
	}

	return residual(a, m), nil
}

func residual(a, m Polynomial) Polynomial {
	lead := m.coefs[m.Degree()]
	for !a.IsZero() && a.Degree() >= m.Degree() {
		k := DivMod(a.coefs[a.Degree()], lead, a.p)
		a = add(a, m.Scale(-k).Shift(a.Degree()-m.Degree()))
	}

	return a
}

// Irreducible returns the monic irreducible polynomial of the given degree
// over Z_p with the smallest compact form. p must be prime.
//
// Degree 1 yields x. Otherwise every monic of degree k is listed, products
// of monic pairs of degrees (d, k−d) are struck out, and the first survivor
// wins. Cost O(p^k · p^k) in the worst case; fine for p^k up to a few
// thousand.
func Irreducible(p, degree int) (Polynomial, error) {
	if !IsPrime(p) {
		return Polynomial{}, fmt.Errorf("Irreducible: p=%d: %w", p, ErrBadModulus)
	}
	if degree < 1 {
		return Polynomial{}, fmt.Errorf("Irreducible: degree=%d: %w", degree, ErrBadDegree)
	}
	if degree == 1 {
		return fromCompact(p, p), nil
	}

	var (
		top      = Pow(p, degree)
		byDegree = make([][]Polynomial, degree+1)
	)
	for c := 0; c < top; c++ {
		if poly := fromCompact(c, p); poly.IsMonic() {
			byDegree[poly.Degree()] = append(byDegree[poly.Degree()], poly)
		}
	}

	reducible := make([]bool, top)
	for d1 := 1; d1 <= degree-d1; d1++ {
		for _, f := range byDegree[d1] {
			for _, g := range byDegree[degree-d1] {
				reducible[multiply(f, g).Compact()-top] = true
			}
		}
	}
	for i, r := range reducible {
		if !r {
			return fromCompact(top+i, p), nil
		}
	}

	// Unreachable: an irreducible of every degree exists over a prime field.
	return Polynomial{}, fmt.Errorf("Irreducible: p=%d degree=%d: none found", p, degree)
}

// Format renders a with the given variable name, highest degree first,
// e.g. "2*a^2+a+1". The zero polynomial is "0".
func (a Polynomial) Format(variable string) string {
	if a.Degree() == 0 {
		return strconv.Itoa(a.coefs[0])
	}
	var sb strings.Builder
	for i := a.Degree(); i >= 0; i-- {
		c := a.coefs[i]
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('+')
		}
		if c != 1 || i == 0 {
			sb.WriteString(strconv.Itoa(c))
		}
		if c != 1 && i > 0 {
			sb.WriteByte('*')
		}
		if i > 0 {
			sb.WriteString(variable)
		}
		if i > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}

// String formats a in the variable x.
func (a Polynomial) String() string { return a.Format("x") }

// Equal reports whether a and b are the same polynomial over the same ring.
func (a Polynomial) Equal(b Polynomial) bool {
	if a.p != b.p || len(a.coefs) != len(b.coefs) {
		return false
	}
	for i := range a.coefs {
		if a.coefs[i] != b.coefs[i] {
			return false
		}
	}

	return true
}
