package cryptoprimer

import (
	"github.com/cryptoprimer/cryptoprimer-go/internal/rijndael"
)

// BlockSize is the AES block size in bytes.
const BlockSize = rijndael.BlockSize

// KeySchedule is the expanded round-key schedule for one cipher key.
// Derive it once with ExpandKey and reuse it across blocks; it is
// read-only after expansion and safe for concurrent use.
type KeySchedule struct {
	inner *rijndael.KeySchedule
}

// ExpandKey derives the round-key schedule from a 16, 24, or 32 byte
// cipher key (AES-128, AES-192, AES-256). Any other length returns
// ErrInvalidKeySize.
func ExpandKey(key []byte) (*KeySchedule, error) {
	ks, err := rijndael.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &KeySchedule{inner: ks}, nil
}

// Rounds returns the cipher round count for the schedule's key size:
// 10, 12, or 14.
func (ks *KeySchedule) Rounds() int {
	return ks.inner.Rounds()
}

// EncryptBlock encrypts exactly one 16-byte block and returns the
// ciphertext block. Any other input length returns ErrInvalidBlockSize.
//
// This is bare block-level operation, not a secure mode: encrypting a
// multi-block message one block at a time is ECB and leaks which blocks
// are equal. Chunking, chaining, and padding are the caller's
// responsibility, deliberately so.
func (ks *KeySchedule) EncryptBlock(block []byte) ([]byte, error) {
	return ks.inner.EncryptBlock(block)
}

// DecryptBlock decrypts exactly one 16-byte block and returns the
// plaintext block. Any other input length returns ErrInvalidBlockSize.
func (ks *KeySchedule) DecryptBlock(block []byte) ([]byte, error) {
	return ks.inner.DecryptBlock(block)
}
