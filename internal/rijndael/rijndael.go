// Package rijndael implements the AES block transforms per FIPS-197:
// key-schedule expansion and the four round operations over a 4x4 byte
// state. It operates on single 16-byte blocks only; modes of operation
// and padding are deliberately absent.
package rijndael

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cryptoprimer/cryptoprimer-go/internal/gf256"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 16

	// nb is the block size in 32-bit words, fixed at 4 for AES.
	nb = 4
)

var (
	// ErrInvalidKeySize is returned for keys that are not 16, 24, or 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidBlockSize is returned for blocks that are not exactly 16 bytes.
	ErrInvalidBlockSize = errors.New("invalid block size")
)

// state is the working value of one block: a 4x4 byte matrix filled
// column-major, so input byte i sits at row i%4, column i/4.
type state [4][4]byte

// KeySchedule holds the expanded round keys for one cipher key.
// It is read-only after expansion and safe for concurrent use.
type KeySchedule struct {
	rounds int
	keys   [][BlockSize]byte // rounds+1 entries, consumed one per round
}

// Rounds returns the round count implied by the key size:
// 10, 12, or 14 for 16, 24, or 32 byte keys.
func (ks *KeySchedule) Rounds() int { return ks.rounds }

// RoundKey returns round key r as a 16-byte slice copy.
func (ks *KeySchedule) RoundKey(r int) []byte {
	rk := ks.keys[r]
	return rk[:]
}

// ExpandKey derives the round-key schedule from a 16, 24, or 32 byte
// cipher key. Every Nk-th word of the expansion is rotated, sent through
// the S-box, and XORed with the round constant before combining with the
// word Nk positions back; 256-bit keys take an extra S-box pass mid-cycle.
func ExpandKey(key []byte) (*KeySchedule, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d bytes, want 16, 24, or 32", ErrInvalidKeySize, len(key))
	}

	nk := len(key) / 4
	nr := nk + 6

	w := make([]uint32, nb*(nr+1))
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := nk; i < len(w); i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ uint32(gf256.Rcon(i/nk))<<24
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}
		w[i] = w[i-nk] ^ t
	}

	ks := &KeySchedule{
		rounds: nr,
		keys:   make([][BlockSize]byte, nr+1),
	}
	for r := 0; r <= nr; r++ {
		for j := 0; j < nb; j++ {
			binary.BigEndian.PutUint32(ks.keys[r][4*j:], w[nb*r+j])
		}
	}
	return ks, nil
}

// EncryptBlock encrypts exactly one 16-byte block. Calling it per block
// over a longer message is ECB, which leaks equal-block structure; the
// caller owns that trade-off.
func (ks *KeySchedule) EncryptBlock(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBlockSize, len(block), BlockSize)
	}

	s := loadState(block)
	s.addRoundKey(&ks.keys[0])
	for r := 1; r < ks.rounds; r++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(&ks.keys[r])
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(&ks.keys[ks.rounds])
	return s.bytes(), nil
}

// DecryptBlock decrypts exactly one 16-byte block, running the inverse
// transforms in reverse round-key order.
func (ks *KeySchedule) DecryptBlock(block []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidBlockSize, len(block), BlockSize)
	}

	s := loadState(block)
	s.addRoundKey(&ks.keys[ks.rounds])
	for r := ks.rounds - 1; r > 0; r-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(&ks.keys[r])
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(&ks.keys[0])
	return s.bytes(), nil
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func subWord(w uint32) uint32 {
	return uint32(gf256.SBox[w>>24])<<24 |
		uint32(gf256.SBox[w>>16&0xff])<<16 |
		uint32(gf256.SBox[w>>8&0xff])<<8 |
		uint32(gf256.SBox[w&0xff])
}

func loadState(block []byte) *state {
	var s state
	for i, b := range block {
		s[i%4][i/4] = b
	}
	return &s
}

func (s *state) bytes() []byte {
	out := make([]byte, BlockSize)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*c+r] = s[r][c]
		}
	}
	return out
}

// addRoundKey XORs the round key into the state column by column.
// Self-inverse.
func (s *state) addRoundKey(rk *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[r][c] ^= rk[4*c+r]
		}
	}
}

func (s *state) subBytes() {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = gf256.SBox[s[r][c]]
		}
	}
}

func (s *state) invSubBytes() {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = gf256.InvSBox[s[r][c]]
		}
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[r][(c+r)%4]
		}
		s[r] = row
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[(c+r)%4] = s[r][c]
		}
		s[r] = row
	}
}

// mixColumns multiplies each column by the fixed polynomial matrix
// {02 03 01 01} over GF(2^8).
func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gf256.Mul(a0, 0x02) ^ gf256.Mul(a1, 0x03) ^ a2 ^ a3
		s[1][c] = a0 ^ gf256.Mul(a1, 0x02) ^ gf256.Mul(a2, 0x03) ^ a3
		s[2][c] = a0 ^ a1 ^ gf256.Mul(a2, 0x02) ^ gf256.Mul(a3, 0x03)
		s[3][c] = gf256.Mul(a0, 0x03) ^ a1 ^ a2 ^ gf256.Mul(a3, 0x02)
	}
}

// invMixColumns multiplies each column by the inverse matrix
// {0e 0b 0d 09}.
func (s *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gf256.Mul(a0, 0x0e) ^ gf256.Mul(a1, 0x0b) ^ gf256.Mul(a2, 0x0d) ^ gf256.Mul(a3, 0x09)
		s[1][c] = gf256.Mul(a0, 0x09) ^ gf256.Mul(a1, 0x0e) ^ gf256.Mul(a2, 0x0b) ^ gf256.Mul(a3, 0x0d)
		s[2][c] = gf256.Mul(a0, 0x0d) ^ gf256.Mul(a1, 0x09) ^ gf256.Mul(a2, 0x0e) ^ gf256.Mul(a3, 0x0b)
		s[3][c] = gf256.Mul(a0, 0x0b) ^ gf256.Mul(a1, 0x0d) ^ gf256.Mul(a2, 0x09) ^ gf256.Mul(a3, 0x0e)
	}
}
