package cryptoprimer

import (
	"io"
	"math/big"
)

const (
	// MinKeyBits is the smallest accepted RSA key size. Anything this
	// small is trivially factorable; the floor only keeps the prime
	// search well-defined.
	MinKeyBits = 64

	// DefaultPublicExponent is the conventional RSA public exponent.
	DefaultPublicExponent = 65537

	// DefaultMillerRabinRounds is the number of Miller-Rabin witnesses
	// tested per prime candidate, for a false-positive probability of at
	// most 4^-40.
	DefaultMillerRabinRounds = 40
)

// keyGenConfig holds configuration for RSA key generation.
type keyGenConfig struct {
	rand              io.Reader // nil selects crypto/rand
	millerRabinRounds int
	maxAttempts       int
	publicExponent    *big.Int
}

// KeyGenOption configures RSA key generation.
type KeyGenOption func(*keyGenConfig)

func defaultKeyGenConfig() keyGenConfig {
	return keyGenConfig{
		millerRabinRounds: DefaultMillerRabinRounds,
		publicExponent:    big.NewInt(DefaultPublicExponent),
	}
}

// WithRand sets the random source used for prime sampling and
// Miller-Rabin witnesses. The default is crypto/rand. A seeded reader
// makes key generation deterministic, which is useful in tests and never
// appropriate for real keys.
func WithRand(r io.Reader) KeyGenOption {
	return func(c *keyGenConfig) {
		c.rand = r
	}
}

// WithMillerRabinRounds sets the number of primality-test witnesses per
// candidate. Fewer rounds generate keys faster at a higher risk of
// accepting a composite.
func WithMillerRabinRounds(rounds int) KeyGenOption {
	return func(c *keyGenConfig) {
		c.millerRabinRounds = rounds
	}
}

// WithMaxAttempts caps the number of candidates tried per prime. The
// default of zero retries indefinitely, which is the intrinsic contract
// of random prime search; a positive cap turns an unlucky streak into
// ErrPrimeSearchFailed as an operational safeguard.
func WithMaxAttempts(n int) KeyGenOption {
	return func(c *keyGenConfig) {
		c.maxAttempts = n
	}
}

// WithPublicExponent overrides the public exponent e. It must be odd and
// greater than 1 to have any chance of being coprime to lambda(n).
func WithPublicExponent(e int64) KeyGenOption {
	return func(c *keyGenConfig) {
		c.publicExponent = big.NewInt(e)
	}
}
