// Package numtheory implements the number-theoretic routines behind RSA:
// modular exponentiation, Miller-Rabin primality testing, the extended
// Euclidean algorithm, and random prime generation.
//
// All functions operate on arbitrary-precision integers. Functions that
// consume randomness take an io.Reader so callers can substitute a seeded
// source in tests; passing nil selects crypto/rand.
package numtheory

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrNonPositiveModulus is returned when a modulus is zero or negative.
	ErrNonPositiveModulus = errors.New("modulus must be positive")

	// ErrNegativeExponent is returned when an exponent is negative.
	ErrNegativeExponent = errors.New("exponent must be non-negative")

	// ErrNoInverse is returned when a modular inverse does not exist
	// because the operands are not coprime.
	ErrNoInverse = errors.New("modular inverse does not exist")

	// ErrPrimeSearchFailed is returned when a configured attempt cap is
	// exceeded before a prime is found.
	ErrPrimeSearchFailed = errors.New("prime search exceeded attempt limit")
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ModPow computes base^exp mod mod by binary square-and-multiply,
// reducing after every multiplication so intermediates stay below mod^2.
// The result is in [0, mod). A modulus of 1 yields 0.
func ModPow(base, exp, mod *big.Int) (*big.Int, error) {
	if mod.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}

	result := big.NewInt(1)
	result.Mod(result, mod) // 0 when mod == 1

	b := new(big.Int).Mod(base, mod)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, mod)
		}
		b.Mul(b, b)
		b.Mod(b, mod)
	}
	return result, nil
}

// IsProbablyPrime runs the Miller-Rabin test with the given number of
// independent random witnesses. A false return is definitive; a true
// return is wrong with probability at most 4^-rounds.
//
// Values below 2 and even values above 2 are classified without sampling.
func IsProbablyPrime(n *big.Int, rounds int, rng io.Reader) (bool, error) {
	if rng == nil {
		rng = rand.Reader
	}
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// Write n-1 = 2^s * d with d odd.
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	witnessSpan := new(big.Int).Sub(n, three) // witnesses in [2, n-2]
	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		a, err := rand.Int(rng, witnessSpan)
		if err != nil {
			return false, err
		}
		a.Add(a, two)

		xp, err := ModPow(a, d, n)
		if err != nil {
			return false, err
		}
		x.Set(xp)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		composite := true
		for j := 0; j < s-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}
	return true, nil
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
// Inputs must be non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)

		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}
	return oldR, oldS, oldT
}

// ModInverse returns x in [0, m) with a*x = 1 (mod m), or ErrNoInverse
// when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrNonPositiveModulus
	}
	g, x, _ := ExtendedGCD(new(big.Int).Mod(a, m), m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd = %s", ErrNoInverse, g)
	}
	return x.Mod(x, m), nil
}

// GeneratePrime samples random odd candidates of exactly the given bit
// length, top bit set, until one passes IsProbablyPrime with the given
// number of rounds.
//
// The search is open-ended: each candidate is prime with probability
// roughly 1/(bits*ln 2), so termination is probabilistic, not guaranteed.
// maxAttempts == 0 keeps that default contract; a positive cap turns an
// unlucky streak into ErrPrimeSearchFailed instead.
func GeneratePrime(bits, rounds int, rng io.Reader, maxAttempts int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("prime bit length must be at least 2, got %d", bits)
	}
	if rng == nil {
		rng = rand.Reader
	}

	half := new(big.Int).Lsh(one, uint(bits-1))
	for attempt := 0; maxAttempts == 0 || attempt < maxAttempts; attempt++ {
		offset, err := rand.Int(rng, half)
		if err != nil {
			return nil, err
		}
		p := new(big.Int).Add(half, offset)
		p.SetBit(p, 0, 1)

		ok, err := IsProbablyPrime(p, rounds, rng)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %d attempts at %d bits", ErrPrimeSearchFailed, maxAttempts, bits)
}
