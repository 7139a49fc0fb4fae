package finfield

// Pow returns x^y for y ≥ 0 by binary exponentiation.
func Pow(x, y int) int {
	ans, m := 1, x
	for ; y > 0; y /= 2 {
		if y%2 == 1 {
			ans *= m
		}
		m *= m
	}

	return ans
}

// PowMod returns x^y mod p for y ≥ 0.
func PowMod(x, y, p int) int {
	ans, m := 1%p, mod(x, p)
	for ; y > 0; y /= 2 {
		if y%2 == 1 {
			ans = ans * m % p
		}
		m = m * m % p
	}

	return ans
}

// DivMod returns x/y mod p using Fermat's little theorem. p must be prime;
// y ≡ 0 yields 0.
func DivMod(x, y, p int) int {
	return mod(x, p) * PowMod(y, p-2, p) % p
}

// SmallestPrimeDivisor returns the least prime dividing x, or x itself when
// x < 4 or x is prime.
func SmallestPrimeDivisor(x int) int {
	for i := 2; i*i <= x; i++ {
		if x%i == 0 {
			return i
		}
	}

	return x
}

// IsPrime reports whether x is prime.
func IsPrime(x int) bool {
	return x >= 2 && SmallestPrimeDivisor(x) == x
}

// IntLog returns n with p^n = x, or -1 if there is none.
func IntLog(x, p int) int {
	if p < 2 || x < 1 {
		return -1
	}
	n := 0
	for cur := 1; cur <= x; cur *= p {
		if cur == x {
			return n
		}
		n++
	}

	return -1
}

func mod(x, p int) int {
	return ((x % p) + p) % p
}
