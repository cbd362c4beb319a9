package cryptoprimer

import (
	"errors"

	"github.com/cryptoprimer/cryptoprimer-go/internal/digest"
	"github.com/cryptoprimer/cryptoprimer-go/internal/numtheory"
	"github.com/cryptoprimer/cryptoprimer-go/internal/rijndael"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMessageTooLarge is returned when an RSA plaintext or ciphertext
	// integer is negative or not strictly below the key modulus.
	ErrMessageTooLarge = errors.New("message out of range for key modulus")

	// ErrInvalidExponent is returned by KeyPairFromPrimes when the public
	// exponent is not coprime to lambda(n) for the supplied primes.
	ErrInvalidExponent = errors.New("public exponent not coprime to lambda(n)")

	// ErrKeySizeTooSmall is returned when the requested RSA key size is
	// below MinKeyBits.
	ErrKeySizeTooSmall = errors.New("key size too small")

	// ErrInvalidPrimes is returned when a supplied prime pair is unusable
	// (equal primes, or values below 2).
	ErrInvalidPrimes = errors.New("invalid prime pair")

	// ErrNoInverse is returned when a modular inverse does not exist.
	ErrNoInverse = numtheory.ErrNoInverse

	// ErrPrimeSearchFailed is returned when a WithMaxAttempts cap is
	// exceeded before a prime is found.
	ErrPrimeSearchFailed = numtheory.ErrPrimeSearchFailed

	// ErrInvalidKeySize is returned for cipher keys that are not 16, 24,
	// or 32 bytes.
	ErrInvalidKeySize = rijndael.ErrInvalidKeySize

	// ErrInvalidBlockSize is returned for cipher blocks that are not
	// exactly 16 bytes.
	ErrInvalidBlockSize = rijndael.ErrInvalidBlockSize

	// ErrMessageTooLong is returned when a hash input's bit length cannot
	// be represented in the padding's 64-bit length field.
	ErrMessageTooLong = digest.ErrMessageTooLong
)
