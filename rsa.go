package cryptoprimer

import (
	"fmt"
	"math/big"

	"github.com/cryptoprimer/cryptoprimer-go/internal/numtheory"
)

var one = big.NewInt(1)

// PublicKey is the public half of an RSA key pair.
type PublicKey struct {
	// N is the modulus p*q.
	N *big.Int
	// E is the public exponent.
	E *big.Int
}

// PrivateKey is the private half of an RSA key pair.
type PrivateKey struct {
	// N is the modulus p*q.
	N *big.Int
	// D is the private exponent, the inverse of e modulo lambda(n).
	D *big.Int
}

// KeyPair bundles both halves of an RSA key pair with the bit length of
// its modulus. Fields are set once at construction and must not be
// mutated afterwards.
type KeyPair struct {
	N    *big.Int
	E    *big.Int
	D    *big.Int
	Bits int
}

// Public returns the public half of the pair.
func (kp *KeyPair) Public() *PublicKey {
	return &PublicKey{N: kp.N, E: kp.E}
}

// Private returns the private half of the pair.
func (kp *KeyPair) Private() *PrivateKey {
	return &PrivateKey{N: kp.N, D: kp.D}
}

// GenerateKeyPair generates an RSA key pair with a modulus of roughly the
// requested bit length: two independent primes of bits/2 bits each,
// n = p*q, and d = e^-1 mod lambda(n) where lambda(n) = lcm(p-1, q-1).
//
// The prime search retries until success. With a healthy random source it
// terminates quickly in practice, but there is no intrinsic bound; use
// WithMaxAttempts to install an operational cap. If e happens not to be
// coprime to lambda(n), fresh primes are drawn rather than failing.
func GenerateKeyPair(bits int, opts ...KeyGenOption) (*KeyPair, error) {
	if bits < MinKeyBits {
		return nil, fmt.Errorf("%w: got %d bits, want at least %d", ErrKeySizeTooSmall, bits, MinKeyBits)
	}

	cfg := defaultKeyGenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	for {
		p, err := numtheory.GeneratePrime(bits/2, cfg.millerRabinRounds, cfg.rand, cfg.maxAttempts)
		if err != nil {
			return nil, err
		}
		q, err := numtheory.GeneratePrime(bits/2, cfg.millerRabinRounds, cfg.rand, cfg.maxAttempts)
		if err != nil {
			return nil, err
		}
		for q.Cmp(p) == 0 {
			q, err = numtheory.GeneratePrime(bits/2, cfg.millerRabinRounds, cfg.rand, cfg.maxAttempts)
			if err != nil {
				return nil, err
			}
		}

		kp, err := KeyPairFromPrimes(p, q, cfg.publicExponent)
		if err != nil {
			// gcd(e, lambda) != 1 for this prime pair; draw fresh primes.
			continue
		}
		return kp, nil
	}
}

// KeyPairFromPrimes builds a key pair from two known primes and a public
// exponent. It exists for deterministic construction: textbook vectors,
// imported keys, tests. The primality of p and q is the caller's problem.
//
// Returns ErrInvalidExponent when gcd(e, lambda(n)) != 1, and
// ErrInvalidPrimes when p and q are equal or below 2.
func KeyPairFromPrimes(p, q, e *big.Int) (*KeyPair, error) {
	two := big.NewInt(2)
	if p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return nil, fmt.Errorf("%w: primes must be at least 2", ErrInvalidPrimes)
	}
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: p and q must be distinct", ErrInvalidPrimes)
	}

	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)

	// lambda(n) = lcm(p-1, q-1) = (p-1)(q-1)/gcd(p-1, q-1)
	g, _, _ := numtheory.ExtendedGCD(pMinusOne, qMinusOne)
	lambda := new(big.Int).Mul(pMinusOne, qMinusOne)
	lambda.Div(lambda, g)

	d, err := numtheory.ModInverse(e, lambda)
	if err != nil {
		return nil, fmt.Errorf("%w: e = %s", ErrInvalidExponent, e)
	}

	n := new(big.Int).Mul(p, q)
	return &KeyPair{
		N:    n,
		E:    new(big.Int).Set(e),
		D:    d,
		Bits: n.BitLen(),
	}, nil
}

// Encrypt computes m^e mod n. The message must satisfy 0 <= m < n;
// callers must pre-chunk anything larger, since no padding scheme is
// applied. Textbook RSA: deterministic and malleable.
func Encrypt(m *big.Int, pub *PublicKey) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, fmt.Errorf("%w: message must be in [0, n)", ErrMessageTooLarge)
	}
	return numtheory.ModPow(m, pub.E, pub.N)
}

// Decrypt computes c^d mod n. The ciphertext must satisfy 0 <= c < n.
func Decrypt(c *big.Int, priv *PrivateKey) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return nil, fmt.Errorf("%w: ciphertext must be in [0, n)", ErrMessageTooLarge)
	}
	return numtheory.ModPow(c, priv.D, priv.N)
}

// EncryptBytes interprets msg as a big-endian integer, encrypts it, and
// returns the ciphertext left-padded to the byte width of the modulus.
func EncryptBytes(msg []byte, pub *PublicKey) ([]byte, error) {
	c, err := Encrypt(new(big.Int).SetBytes(msg), pub)
	if err != nil {
		return nil, err
	}
	width := (pub.N.BitLen() + 7) / 8
	return c.FillBytes(make([]byte, width)), nil
}

// DecryptBytes decrypts a big-endian ciphertext and returns the plaintext
// bytes with leading zeros stripped, mirroring EncryptBytes.
func DecryptBytes(ct []byte, priv *PrivateKey) ([]byte, error) {
	m, err := Decrypt(new(big.Int).SetBytes(ct), priv)
	if err != nil {
		return nil, err
	}
	return m.Bytes(), nil
}
