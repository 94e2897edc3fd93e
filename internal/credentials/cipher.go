package credentials

import (
	"encoding/base64"
	"fmt"

	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"

	"github.com/fernet/fernet-go"
)

// minCiphertextSize is the smallest valid Fernet token: version, timestamp,
// IV, one padded block and the HMAC tag.
const minCiphertextSize = 1 + 8 + 16 + 16 + 32

// Seal encrypts plaintext under a KeySize key and returns raw Fernet bytes.
func Seal(plaintext, key []byte) ([]byte, error) {
	k, err := fernetKey(key)
	if err != nil {
		return nil, err
	}

	tok, err := fernet.EncryptAndSign(plaintext, k)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt token: %w", err)
	}

	raw, err := base64.URLEncoding.DecodeString(string(tok))
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet token: %w", err)
	}

	return raw, nil
}

// Open verifies and decrypts raw Fernet bytes. A wrong key and damaged bytes
// both return ErrWrongPassword.
func Open(ciphertext, key []byte) ([]byte, error) {
	k, err := fernetKey(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < minCiphertextSize {
		return nil, qerrors.ErrWrongPassword
	}

	tok := []byte(base64.URLEncoding.EncodeToString(ciphertext))

	// Stored tokens never expire, so no TTL is checked.
	plaintext := fernet.VerifyAndDecrypt(tok, 0, []*fernet.Key{k})
	if plaintext == nil {
		return nil, qerrors.ErrWrongPassword
	}

	return plaintext, nil
}

func fernetKey(key []byte) (*fernet.Key, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key length: expected %d bytes, got %d bytes", KeySize, len(key))
	}

	var k fernet.Key
	copy(k[:], key)
	return &k, nil
}
