// Package cryptoprimer is a from-first-principles reference implementation
// of three foundational cryptographic primitives: textbook RSA, the AES
// block cipher, and the SHA-256 hash function.
//
// Every transform is implemented directly from the published mathematics
// rather than delegating to an existing crypto library, precisely enough to
// reproduce the standard known-answer vectors. The package exists to make
// the algorithms legible, not to protect data.
//
// # Algorithm Suite
//
//   - RSA: key-pair generation by random prime search, single-block
//     encryption and decryption by modular exponentiation. Plaintext
//     integers are used directly; no padding scheme is applied.
//
//   - AES (FIPS 197): key-schedule expansion for 128/192/256-bit keys and
//     the four round transforms over a 4x4 byte state, one 16-byte block
//     at a time. No chaining mode is provided.
//
//   - SHA-256 (FIPS 180-4): Merkle-Damgard padding, message-schedule
//     expansion, and the 64-round compression function.
//
// # Security Model
//
// There is none. DO NOT use this package to protect real data:
//
//   - Nothing is constant-time; timing side channels are everywhere.
//   - RSA is textbook RSA: deterministic, malleable, and unpadded.
//   - The block cipher runs bare, block by block; encrypting more than
//     one block with the same schedule is ECB.
//
// The round-trip laws do hold: Decrypt(Encrypt(m)) == m for every message
// in the key's domain, and DecryptBlock undoes EncryptBlock for every
// 16-byte block.
//
// Basic usage:
//
//	kp, err := cryptoprimer.GenerateKeyPair(2048)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := cryptoprimer.Encrypt(big.NewInt(42), kp.Public())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := cryptoprimer.Decrypt(c, kp.Private())
//
//	ks, err := cryptoprimer.ExpandKey(key) // 16, 24, or 32 bytes
//	ct, err := ks.EncryptBlock(block)      // exactly 16 bytes
//
//	sum, err := cryptoprimer.Sum256([]byte("abc"))
package cryptoprimer
