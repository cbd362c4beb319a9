package cryptoprimer

import (
	"bytes"
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"
)

// TestKeyPairFromPrimes_Textbook reproduces the classic worked example:
// p=61, q=53, e=17 gives n=3233, lambda=780, d=413, and 65 encrypts to
// 2790.
func TestKeyPairFromPrimes_Textbook(t *testing.T) {
	kp, err := KeyPairFromPrimes(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("KeyPairFromPrimes() error = %v", err)
	}

	if kp.N.Int64() != 3233 {
		t.Errorf("n = %s, want 3233", kp.N)
	}
	if kp.D.Int64() != 413 {
		t.Errorf("d = %s, want 413 (inverse of 17 mod lcm(60, 52) = 780)", kp.D)
	}

	c, err := Encrypt(big.NewInt(65), kp.Public())
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if c.Int64() != 2790 {
		t.Errorf("Encrypt(65) = %s, want 2790", c)
	}

	m, err := Decrypt(c, kp.Private())
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if m.Int64() != 65 {
		t.Errorf("Decrypt(2790) = %s, want 65", m)
	}
}

func TestKeyPairFromPrimes_Errors(t *testing.T) {
	p61, p53 := big.NewInt(61), big.NewInt(53)

	// gcd(13, lcm(60, 52)) = 13
	if _, err := KeyPairFromPrimes(p61, p53, big.NewInt(13)); !errors.Is(err, ErrInvalidExponent) {
		t.Errorf("non-coprime exponent: error = %v, want ErrInvalidExponent", err)
	}
	if _, err := KeyPairFromPrimes(p61, p61, big.NewInt(17)); !errors.Is(err, ErrInvalidPrimes) {
		t.Errorf("equal primes: error = %v, want ErrInvalidPrimes", err)
	}
	if _, err := KeyPairFromPrimes(big.NewInt(1), p53, big.NewInt(17)); !errors.Is(err, ErrInvalidPrimes) {
		t.Errorf("prime below 2: error = %v, want ErrInvalidPrimes", err)
	}
}

func TestGenerateKeyPair_RoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair(512,
		WithRand(mrand.New(mrand.NewSource(53))),
		WithMillerRabinRounds(20),
	)
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	if kp.Bits < 511 || kp.Bits > 512 {
		t.Errorf("modulus bit length = %d, want 511 or 512", kp.Bits)
	}

	// e*d-based round trip across the message domain edges and a few
	// interior points.
	messages := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(65),
		new(big.Int).Rsh(kp.N, 1),
		new(big.Int).Sub(kp.N, big.NewInt(1)),
	}
	for _, m := range messages {
		c, err := Encrypt(m, kp.Public())
		if err != nil {
			t.Fatalf("Encrypt(%s) error = %v", m, err)
		}
		got, err := Decrypt(c, kp.Private())
		if err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if got.Cmp(m) != 0 {
			t.Errorf("round trip of %s = %s", m, got)
		}
	}
}

func TestGenerateKeyPair_Deterministic(t *testing.T) {
	kp1, err := GenerateKeyPair(256, WithRand(mrand.New(mrand.NewSource(59))), WithMillerRabinRounds(20))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	kp2, err := GenerateKeyPair(256, WithRand(mrand.New(mrand.NewSource(59))), WithMillerRabinRounds(20))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if kp1.N.Cmp(kp2.N) != 0 || kp1.D.Cmp(kp2.D) != 0 {
		t.Error("same seed produced different key pairs")
	}
}

func TestGenerateKeyPair_Uniqueness(t *testing.T) {
	kp1, err := GenerateKeyPair(128, WithMillerRabinRounds(10))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	kp2, err := GenerateKeyPair(128, WithMillerRabinRounds(10))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	if kp1.N.Cmp(kp2.N) == 0 {
		t.Error("two generated key pairs share a modulus")
	}
}

func TestGenerateKeyPair_KeySizeTooSmall(t *testing.T) {
	if _, err := GenerateKeyPair(32); !errors.Is(err, ErrKeySizeTooSmall) {
		t.Errorf("GenerateKeyPair(32) error = %v, want ErrKeySizeTooSmall", err)
	}
}

func TestGenerateKeyPair_AttemptCap(t *testing.T) {
	// An all-zeros source pins every prime candidate to 2^31+1 = 3*715827883,
	// so a capped search must exhaust.
	zeros := bytes.NewReader(make([]byte, 1<<20))
	_, err := GenerateKeyPair(64, WithRand(zeros), WithMaxAttempts(3), WithMillerRabinRounds(5))
	if !errors.Is(err, ErrPrimeSearchFailed) {
		t.Errorf("capped generation: error = %v, want ErrPrimeSearchFailed", err)
	}
}

func TestEncrypt_DomainChecks(t *testing.T) {
	kp, err := KeyPairFromPrimes(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("KeyPairFromPrimes() error = %v", err)
	}

	if _, err := Encrypt(big.NewInt(3233), kp.Public()); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("Encrypt(n) error = %v, want ErrMessageTooLarge", err)
	}
	if _, err := Encrypt(big.NewInt(-1), kp.Public()); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("Encrypt(-1) error = %v, want ErrMessageTooLarge", err)
	}
	if _, err := Decrypt(big.NewInt(99999), kp.Private()); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("Decrypt(out of range) error = %v, want ErrMessageTooLarge", err)
	}
}

func TestEncryptBytes_RoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair(512, WithRand(mrand.New(mrand.NewSource(61))), WithMillerRabinRounds(20))
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	msg := []byte("This is a secret message for RSA.")
	ct, err := EncryptBytes(msg, kp.Public())
	if err != nil {
		t.Fatalf("EncryptBytes() error = %v", err)
	}

	if want := (kp.N.BitLen() + 7) / 8; len(ct) != want {
		t.Errorf("ciphertext length = %d, want modulus width %d", len(ct), want)
	}

	pt, err := DecryptBytes(ct, kp.Private())
	if err != nil {
		t.Fatalf("DecryptBytes() error = %v", err)
	}
	if !bytes.Equal(pt, msg) {
		t.Errorf("round trip = %q, want %q", pt, msg)
	}
}

func TestEncryptBytes_TooLarge(t *testing.T) {
	kp, err := KeyPairFromPrimes(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("KeyPairFromPrimes() error = %v", err)
	}

	// 3 bytes of 0xff is far above n = 3233.
	if _, err := EncryptBytes([]byte{0xff, 0xff, 0xff}, kp.Public()); !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("EncryptBytes(too large) error = %v, want ErrMessageTooLarge", err)
	}
}

func TestKeyPair_Halves(t *testing.T) {
	kp, err := KeyPairFromPrimes(big.NewInt(61), big.NewInt(53), big.NewInt(17))
	if err != nil {
		t.Fatalf("KeyPairFromPrimes() error = %v", err)
	}

	pub, priv := kp.Public(), kp.Private()
	if pub.N.Cmp(kp.N) != 0 || pub.E.Cmp(kp.E) != 0 {
		t.Error("Public() does not match the pair")
	}
	if priv.N.Cmp(kp.N) != 0 || priv.D.Cmp(kp.D) != 0 {
		t.Error("Private() does not match the pair")
	}
}
