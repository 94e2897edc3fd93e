package credentials

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"testing"

	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
)

// testIterations keeps the suite fast; the work factor does not change the format.
const testIterations = 1000

func TestDeriveKeyKnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		iterations uint32
		want       string
	}{
		{"one iteration", 1, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
		{"4096 iterations", 4096, "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hex.EncodeToString(DeriveKey([]byte("password"), []byte("salt"), tt.iterations))
			if got != tt.want {
				t.Errorf("DeriveKey() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x42}, SaltSize)

	first := DeriveKey([]byte("correct horse"), salt, testIterations)
	second := DeriveKey([]byte("correct horse"), salt, testIterations)
	if !bytes.Equal(first, second) {
		t.Error("Expected identical keys for identical inputs")
	}
	if len(first) != KeySize {
		t.Errorf("Expected key length %d, got %d", KeySize, len(first))
	}

	other := DeriveKey([]byte("correct horse"), salt, testIterations+1)
	if bytes.Equal(first, other) {
		t.Error("Expected a different key for a different iteration count")
	}
}

func TestProtectRecoverRoundTrip(t *testing.T) {
	p := Protector{Iterations: testIterations}

	plaintexts := [][]byte{
		{},
		[]byte("x"),
		[]byte("ghp_exampleToken123"),
		[]byte("exactly sixteen!"),
		bytes.Repeat([]byte{0xff, 0x00}, 300),
	}
	passphrases := []string{"", "correct horse", "pässwörd 🔑"}

	for _, plain := range plaintexts {
		for _, pw := range passphrases {
			token, err := p.Protect(plain, []byte(pw))
			if err != nil {
				t.Fatalf("Protect failed: %v", err)
			}

			got, err := p.Recover(token, []byte(pw))
			if err != nil {
				t.Fatalf("Recover(%q) failed: %v", pw, err)
			}
			if !bytes.Equal(got, plain) {
				t.Errorf("Recover() = %q, want %q", got, plain)
			}
		}
	}
}

func TestRecoverWrongPassword(t *testing.T) {
	p := Protector{Iterations: testIterations}

	token, err := p.Protect([]byte("secret test message"), []byte("testpassword42"))
	if err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	_, err = p.Recover(token, []byte("wrong_password"))
	if !errors.Is(err, qerrors.ErrWrongPassword) {
		t.Errorf("Expected ErrWrongPassword, got %v", err)
	}
}

func TestProtectUsesFreshSalt(t *testing.T) {
	p := Protector{Iterations: testIterations}

	first, err := p.Protect([]byte("same"), []byte("same"))
	if err != nil {
		t.Fatalf("Protect failed: %v", err)
	}
	second, err := p.Protect([]byte("same"), []byte("same"))
	if err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	if first == second {
		t.Error("Expected different tokens for repeated protection")
	}

	salt1, _, _, _ := Unpack(first)
	salt2, _, _, _ := Unpack(second)
	if bytes.Equal(salt1, salt2) {
		t.Error("Expected different salts for repeated protection")
	}
}

func TestProtectSaltFromReader(t *testing.T) {
	salt := bytes.Repeat([]byte{0x07}, SaltSize)
	p := Protector{Iterations: testIterations, Rand: bytes.NewReader(salt)}

	token, err := p.Protect([]byte("token"), []byte("pw"))
	if err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	gotSalt, iterations, _, err := Unpack(token)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !bytes.Equal(gotSalt, salt) {
		t.Errorf("Expected salt %x, got %x", salt, gotSalt)
	}
	if iterations != testIterations {
		t.Errorf("Expected %d iterations, got %d", testIterations, iterations)
	}
}

func TestProtectShortEntropy(t *testing.T) {
	p := Protector{Iterations: testIterations, Rand: bytes.NewReader([]byte{1, 2, 3})}

	if _, err := p.Protect([]byte("token"), []byte("pw")); err == nil {
		t.Fatal("Expected error when the salt source runs dry")
	}
}

func TestRecoverUsesEmbeddedIterations(t *testing.T) {
	old := Protector{Iterations: 2000}
	token, err := old.Protect([]byte("ghp_legacy"), []byte("pw"))
	if err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	// A newer default must not affect tokens already on disk.
	current := Protector{Iterations: 5000}
	got, err := current.Recover(token, []byte("pw"))
	if err != nil {
		t.Fatalf("Recover failed: %v", err)
	}
	if string(got) != "ghp_legacy" {
		t.Errorf("Expected %q, got %q", "ghp_legacy", got)
	}
}

func TestRecoverMalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"invalid base64", "not-valid-base64!!"},
		{"too short", base64.URLEncoding.EncodeToString(make([]byte, 19))},
		{"four chars", "AAAA"},
		{"empty", ""},
		{"zero iterations", base64.URLEncoding.EncodeToString(make([]byte, 100))},
		{"iterations above int32", Pack(make([]byte, SaltSize), MaxIterations+1, make([]byte, 80))},
		{"max uint32 iterations", Pack(make([]byte, SaltSize), math.MaxUint32, make([]byte, 80))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RecoverToken(tt.token, []byte("pw"))
			if !errors.Is(err, qerrors.ErrMalformedToken) {
				t.Errorf("Expected ErrMalformedToken, got %v", err)
			}
		})
	}
}

func TestRecoverCorruptedCiphertext(t *testing.T) {
	p := Protector{Iterations: testIterations}
	token, err := p.Protect([]byte("ghp_exampleToken123"), []byte("pw"))
	if err != nil {
		t.Fatalf("Protect failed: %v", err)
	}

	salt, iterations, ciphertext, err := Unpack(token)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}

	flipped := append([]byte(nil), ciphertext...)
	flipped[len(flipped)/2] ^= 0x01

	truncated := ciphertext[:len(ciphertext)-40]

	for name, ct := range map[string][]byte{"flipped bit": flipped, "truncated": truncated, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			_, err := p.Recover(Pack(salt, iterations, ct), []byte("pw"))
			if !errors.Is(err, qerrors.ErrWrongPassword) {
				t.Errorf("Expected ErrWrongPassword, got %v", err)
			}
		})
	}
}

func TestPackLayout(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)
	ciphertext := []byte("ciphertext")

	token := Pack(salt, 390000, ciphertext)

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("Token is not padded base64url: %v", err)
	}
	if !bytes.Equal(raw[:16], salt) {
		t.Errorf("Expected salt prefix, got %x", raw[:16])
	}
	if got := binary.BigEndian.Uint32(raw[16:20]); got != 390000 {
		t.Errorf("Expected big-endian iteration count 390000, got %d", got)
	}
	if !bytes.Equal(raw[20:], ciphertext) {
		t.Errorf("Expected ciphertext suffix, got %q", raw[20:])
	}
}

func TestUnpackAcceptsUnpaddedAndWhitespace(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)
	token := Pack(salt, 7, []byte("abc"))

	unpadded := base64.RawURLEncoding.EncodeToString(mustDecode(t, token))

	for _, in := range []string{unpadded, "  " + token + "\n"} {
		gotSalt, iterations, ct, err := Unpack(in)
		if err != nil {
			t.Fatalf("Unpack(%q) failed: %v", in, err)
		}
		if !bytes.Equal(gotSalt, salt) || iterations != 7 || string(ct) != "abc" {
			t.Errorf("Unpack(%q) = %x, %d, %q", in, gotSalt, iterations, ct)
		}
	}
}

func TestSealOpenRejectsBadKeyLength(t *testing.T) {
	if _, err := Seal([]byte("x"), make([]byte, 16)); err == nil {
		t.Error("Expected Seal to reject a 16-byte key")
	}
	if _, err := Open(make([]byte, 100), make([]byte, 31)); err == nil {
		t.Error("Expected Open to reject a 31-byte key")
	}
}

func TestProtectTokenDefaultWorkFactor(t *testing.T) {
	if testing.Short() {
		t.Skip("uses the default work factor")
	}

	token, err := ProtectToken([]byte("ghp_exampleToken123"), []byte("correct horse"), 0)
	if err != nil {
		t.Fatalf("ProtectToken failed: %v", err)
	}

	_, iterations, _, err := Unpack(token)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if iterations != DefaultIterations {
		t.Errorf("Expected default iterations %d, got %d", DefaultIterations, iterations)
	}

	got, err := RecoverToken(token, []byte("correct horse"))
	if err != nil {
		t.Fatalf("RecoverToken failed: %v", err)
	}
	if string(got) != "ghp_exampleToken123" {
		t.Errorf("Expected %q, got %q", "ghp_exampleToken123", got)
	}

	if _, err := RecoverToken(token, []byte("wrong battery")); !errors.Is(err, qerrors.ErrWrongPassword) {
		t.Errorf("Expected ErrWrongPassword, got %v", err)
	}

	if _, err := RecoverToken("AAAA", []byte("correct horse")); !errors.Is(err, qerrors.ErrMalformedToken) {
		t.Errorf("Expected ErrMalformedToken, got %v", err)
	}
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return b
}

func TestProtectRejectsOversizedIterations(t *testing.T) {
	if _, err := (Protector{Iterations: MaxIterations + 1}).Protect([]byte("tok"), []byte("pw")); err == nil {
		t.Error("Expected Protect to reject an iteration count above MaxIterations")
	}
}
