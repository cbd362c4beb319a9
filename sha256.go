package cryptoprimer

import (
	"encoding/hex"

	"github.com/cryptoprimer/cryptoprimer-go/internal/digest"
)

// DigestSize is the SHA-256 digest length in bytes.
const DigestSize = digest.Size

// Sum256 returns the SHA-256 digest of data. Identical input always
// yields an identical digest. Inputs longer than 2^64-1 bits return
// ErrMessageTooLong.
func Sum256(data []byte) ([]byte, error) {
	return digest.Sum256(data)
}

// SumHex256 returns the SHA-256 digest of data as a lowercase hex string.
func SumHex256(data []byte) (string, error) {
	sum, err := digest.Sum256(data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
