// Package gf256 implements arithmetic in GF(2^8) under the Rijndael
// reducing polynomial x^8 + x^4 + x^3 + x + 1, and derives the cipher's
// substitution tables and round constants from it.
//
// SBox and InvSBox are computed once at package init and are read-only
// afterwards, so unsynchronized concurrent reads are safe.
package gf256

// Poly is the reducing polynomial, with the x^8 term included.
const Poly = 0x11b

// SBox is the Rijndael substitution table: the multiplicative inverse of
// each byte followed by the fixed affine transform.
var SBox [256]byte

// InvSBox is the inverse permutation of SBox.
var InvSBox [256]byte

func init() {
	for i := 0; i < 256; i++ {
		SBox[i] = affine(Inverse(byte(i)))
	}
	for i := 0; i < 256; i++ {
		InvSBox[SBox[i]] = byte(i)
	}
}

// Mul multiplies two field elements: carry-less shift-and-XOR with a
// conditional reduction per doubling.
func Mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 == 1 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// Inverse returns the multiplicative inverse of a. Zero has no inverse;
// it maps to zero by the cipher's convention.
func Inverse(a byte) byte {
	if a == 0 {
		return 0
	}
	// a^254 = a^-1, since the multiplicative group has order 255.
	inv := byte(1)
	for i := 0; i < 254; i++ {
		inv = Mul(inv, a)
	}
	return inv
}

// Rcon returns the key-expansion round constant for round i >= 1:
// x^(i-1) in the field.
func Rcon(i int) byte {
	c := byte(1)
	for ; i > 1; i-- {
		c = xtime(c)
	}
	return c
}

// xtime multiplies by x, reducing when the x^8 bit would be set.
func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ (Poly & 0xff)
	}
	return b << 1
}

// affine applies the S-box bit transform from FIPS-197 section 5.1.1:
// b XOR its four left rotations XOR 0x63.
func affine(b byte) byte {
	return b ^ rotl(b, 1) ^ rotl(b, 2) ^ rotl(b, 3) ^ rotl(b, 4) ^ 0x63
}

func rotl(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}
