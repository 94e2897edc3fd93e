package credentials

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Protector protects and recovers tokens with a fixed work factor and
// entropy source. The zero value uses DefaultIterations and crypto/rand.
type Protector struct {
	// Iterations is the PBKDF2 work factor for new tokens. Zero means DefaultIterations.
	Iterations uint32

	// Rand is the salt source. Nil means crypto/rand.
	Rand io.Reader
}

// Protect encrypts plain with passphrase and returns the framed token.
func (p Protector) Protect(plain, passphrase []byte) (string, error) {
	iterations := p.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations > MaxIterations {
		return "", fmt.Errorf("iteration count %d exceeds %d", iterations, MaxIterations)
	}

	r := p.Rand
	if r == nil {
		r = rand.Reader
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := DeriveKey(passphrase, salt, iterations)
	defer zero(key)

	ciphertext, err := Seal(plain, key)
	if err != nil {
		return "", err
	}

	return Pack(salt, iterations, ciphertext), nil
}

// Recover decrypts a framed token. The iteration count embedded in the token
// is used; p.Iterations is ignored.
//
// Returns ErrMalformedToken if the token cannot be unpacked.
// Returns ErrWrongPassword if the passphrase does not open it.
func (p Protector) Recover(token string, passphrase []byte) ([]byte, error) {
	salt, iterations, ciphertext, err := Unpack(token)
	if err != nil {
		return nil, err
	}

	key := DeriveKey(passphrase, salt, iterations)
	defer zero(key)

	return Open(ciphertext, key)
}

// ProtectToken protects plain with the given work factor (zero for the default).
func ProtectToken(plain, passphrase []byte, iterations uint32) (string, error) {
	return Protector{Iterations: iterations}.Protect(plain, passphrase)
}

// RecoverToken recovers the plaintext of a token made by ProtectToken.
func RecoverToken(token string, passphrase []byte) ([]byte, error) {
	return Protector{}.Recover(token, passphrase)
}
