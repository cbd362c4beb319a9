// Command cryptodemo exercises the cryptoprimer primitives with sample
// data: SHA-256 digests, single-block AES round trips, and textbook RSA
// round trips. It is a demonstration driver, not a cryptographic tool.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	cryptoprimer "github.com/cryptoprimer/cryptoprimer-go"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var commands = []*cli.Command{
	{
		Name:      "hash",
		Usage:     "Print the SHA-256 digest of each argument",
		ArgsUsage: "<message> [message ...]",
		Action:    hashCmd,
	},
	{
		Name:  "aes",
		Usage: "Encrypt and decrypt one 16-byte block",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Cipher key as hex (16, 24, or 32 bytes)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "block",
				Usage:    "Plaintext block as hex (exactly 16 bytes)",
				Required: true,
			},
		},
		Action: aesCmd,
	},
	{
		Name:  "rsa",
		Usage: "Generate a key pair and round-trip a message through it",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "bits",
				Usage: "Modulus bit length",
				Value: 1024,
			},
			&cli.StringFlag{
				Name:  "message",
				Usage: "Message to encrypt",
				Value: "This is a secret message for RSA.",
			},
		},
		Action: rsaCmd,
	},
	{
		Name:   "demo",
		Usage:  "Run the full three-part demonstration",
		Action: demoCmd,
	},
}

func main() {
	app := &cli.App{
		Name:     "cryptodemo",
		Usage:    "demonstrate from-scratch RSA, AES, and SHA-256",
		Commands: commands,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func hashCmd(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: cryptodemo hash <message> [message ...]", 1)
	}
	for _, msg := range c.Args().Slice() {
		sum, err := cryptoprimer.SumHex256([]byte(msg))
		if err != nil {
			return err
		}
		fmt.Printf("%s  %q\n", sum, msg)
	}
	return nil
}

func aesCmd(c *cli.Context) error {
	key, err := hex.DecodeString(c.String("key"))
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	block, err := hex.DecodeString(c.String("block"))
	if err != nil {
		return fmt.Errorf("decode block: %w", err)
	}

	ks, err := cryptoprimer.ExpandKey(key)
	if err != nil {
		return err
	}
	log.Info().Int("rounds", ks.Rounds()).Int("key_bytes", len(key)).Msg("key expanded")

	ct, err := ks.EncryptBlock(block)
	if err != nil {
		return err
	}
	pt, err := ks.DecryptBlock(ct)
	if err != nil {
		return err
	}

	fmt.Printf("plaintext:  %x\n", block)
	fmt.Printf("ciphertext: %x\n", ct)
	fmt.Printf("decrypted:  %x\n", pt)
	return nil
}

func rsaCmd(c *cli.Context) error {
	bits := c.Int("bits")
	msg := []byte(c.String("message"))

	log.Info().Int("bits", bits).Msg("generating key pair (finding large primes may take a moment)")
	start := time.Now()
	kp, err := cryptoprimer.GenerateKeyPair(bits)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Int("modulus_bits", kp.Bits).Msg("key pair generated")

	ct, err := cryptoprimer.EncryptBytes(msg, kp.Public())
	if err != nil {
		return err
	}
	pt, err := cryptoprimer.DecryptBytes(ct, kp.Private())
	if err != nil {
		return err
	}

	fmt.Printf("public exponent: %s\n", kp.E)
	fmt.Printf("message:    %q\n", msg)
	fmt.Printf("ciphertext: %x\n", ct)
	fmt.Printf("decrypted:  %q\n", pt)
	if string(pt) == string(msg) {
		fmt.Println("round trip: OK")
	} else {
		fmt.Println("round trip: MISMATCH")
	}
	return nil
}

// demoCmd walks through all three primitives with fixed sample data,
// including the avalanche effect on nearly-identical hash inputs.
func demoCmd(c *cli.Context) error {
	fmt.Println("== SHA-256 ==")
	messages := []string{
		"Hello, world!",
		"This is a test of the cryptoprimer module.",
		"This is a test of the cryptoprimer module!",
	}
	for _, msg := range messages {
		sum, err := cryptoprimer.SumHex256([]byte(msg))
		if err != nil {
			return err
		}
		fmt.Printf("%s  %q\n", sum, msg)
	}
	fmt.Println("note: the single changed '!' rewrites the whole digest (avalanche effect)")

	fmt.Println("\n== AES-128, single block ==")
	key := []byte("MySecretKey12345")
	block := []byte("This is a block!")
	ks, err := cryptoprimer.ExpandKey(key)
	if err != nil {
		return err
	}
	ct, err := ks.EncryptBlock(block)
	if err != nil {
		return err
	}
	pt, err := ks.DecryptBlock(ct)
	if err != nil {
		return err
	}
	fmt.Printf("plaintext:  %q\n", block)
	fmt.Printf("ciphertext: %x\n", ct)
	fmt.Printf("decrypted:  %q\n", pt)

	fmt.Println("\n== RSA-1024, textbook ==")
	log.Info().Msg("generating 1024-bit key pair")
	kp, err := cryptoprimer.GenerateKeyPair(1024)
	if err != nil {
		return err
	}
	m := big.NewInt(42)
	cEnc, err := cryptoprimer.Encrypt(m, kp.Public())
	if err != nil {
		return err
	}
	mDec, err := cryptoprimer.Decrypt(cEnc, kp.Private())
	if err != nil {
		return err
	}
	fmt.Printf("m = %s, decrypt(encrypt(m)) = %s\n", m, mDec)

	fmt.Println("\nThis module is educational. Do not use it for real cryptography.")
	return nil
}
