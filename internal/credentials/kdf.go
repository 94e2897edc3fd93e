package credentials

import (
	"crypto/sha256"
	"math"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the number of random salt bytes at the head of every token.
	SaltSize = 16

	// KeySize is the length of the derived key.
	KeySize = 32

	// DefaultIterations is the PBKDF2-SHA256 work factor for new tokens.
	// It follows the baseline Django's password hasher used when the token
	// format was introduced. Existing tokens keep their embedded count.
	DefaultIterations uint32 = 390000

	// MaxIterations is the largest work factor accepted; it fits an int everywhere.
	MaxIterations uint32 = math.MaxInt32
)

// DeriveKey stretches a passphrase into a KeySize key with PBKDF2-HMAC-SHA256.
// The same passphrase, salt and iteration count always give the same key.
func DeriveKey(passphrase, salt []byte, iterations uint32) []byte {
	return pbkdf2.Key(passphrase, salt, int(iterations), KeySize, sha256.New)
}

// zero overwrites key material once it is no longer needed.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
