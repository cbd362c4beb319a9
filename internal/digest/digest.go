// Package digest implements SHA-256 per FIPS 180-4: Merkle-Damgard
// padding, message-schedule expansion, and the 64-round compression
// function.
package digest

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

const (
	// Size is the digest length in bytes.
	Size = 32

	// BlockSize is the input block length in bytes.
	BlockSize = 64

	// maxLen is the largest input length in bytes whose bit length still
	// fits the 64-bit length field of the padding.
	maxLen = (1<<64 - 1) / 8
)

// ErrMessageTooLong is returned when the input's bit length cannot be
// represented in the padding's 64-bit length field.
var ErrMessageTooLong = errors.New("message length exceeds 2^64-1 bits")

// k holds the round constants: the first 32 bits of the fractional parts
// of the cube roots of the first 64 primes.
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// initState holds the initial hash values: the first 32 bits of the
// fractional parts of the square roots of the first 8 primes.
var initState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Sum256 returns the SHA-256 digest of data as a fresh 32-byte slice.
func Sum256(data []byte) ([]byte, error) {
	if uint64(len(data)) > maxLen {
		return nil, ErrMessageTooLong
	}

	h := initState
	padded := pad(data)
	for i := 0; i < len(padded); i += BlockSize {
		compress(&h, padded[i:i+BlockSize])
	}

	out := make([]byte, Size)
	for i, word := range h {
		binary.BigEndian.PutUint32(out[4*i:], word)
	}
	return out, nil
}

// pad appends a single 1 bit, zero bits to 448 mod 512, then the original
// bit length as a 64-bit big-endian integer, yielding a whole number of
// 512-bit blocks.
func pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8

	padded := make([]byte, 0, len(msg)+BlockSize+8)
	padded = append(padded, msg...)
	padded = append(padded, 0x80)
	for len(padded)%BlockSize != 56 {
		padded = append(padded, 0x00)
	}
	return binary.BigEndian.AppendUint64(padded, bitLen)
}

// compress folds one 64-byte block into the running state: expand the 16
// input words to a 64-word schedule, run 64 rounds over eight working
// variables, then add them back into the state modulo 2^32.
func compress(h *[8]uint32, block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}

	a, b, c, d := h[0], h[1], h[2], h[3]
	e, f, g, hh := h[4], h[5], h[6], h[7]

	for i := 0; i < 64; i++ {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + k[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)
		hh, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func sigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ x>>3
}

func sigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ x>>10
}

func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}
