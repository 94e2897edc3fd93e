package credentials

import (
	"encoding/base64"
	"encoding/binary"
	"strings"

	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
)

// headerSize is the salt plus the big-endian iteration count.
const headerSize = SaltSize + 4

// Pack frames salt, iteration count and ciphertext into a protected token.
func Pack(salt []byte, iterations uint32, ciphertext []byte) string {
	buf := make([]byte, headerSize+len(ciphertext))
	copy(buf[:SaltSize], salt)
	binary.BigEndian.PutUint32(buf[SaltSize:headerSize], iterations)
	copy(buf[headerSize:], ciphertext)

	return base64.URLEncoding.EncodeToString(buf)
}

// Unpack splits a protected token back into its parts.
//
// Returns ErrMalformedToken if the text is not base64url, is too short to
// hold a salt and an iteration count, or carries a count of zero or above
// MaxIterations.
func Unpack(token string) (salt []byte, iterations uint32, ciphertext []byte, err error) {
	token = strings.TrimSpace(token)

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		// Tokens copied around by hand sometimes lose their padding.
		raw, err = base64.RawURLEncoding.DecodeString(token)
		if err != nil {
			return nil, 0, nil, qerrors.ErrMalformedToken
		}
	}

	if len(raw) < headerSize {
		return nil, 0, nil, qerrors.ErrMalformedToken
	}

	// Counts above MaxInt32 would overflow int on 32-bit platforms.
	iterations = binary.BigEndian.Uint32(raw[SaltSize:headerSize])
	if iterations == 0 || iterations > MaxIterations {
		return nil, 0, nil, qerrors.ErrMalformedToken
	}

	return raw[:SaltSize], iterations, raw[headerSize:], nil
}
