// Package credentials protects GitHub API tokens at rest.
//
// A token is protected with a passphrase and stored in the user configuration
// as a single text value. The passphrase itself is never stored.
//
// # Protection Scheme
//
//  1. A fresh 16-byte salt is read from crypto/rand
//  2. PBKDF2-HMAC-SHA256 stretches the passphrase into a 32-byte key
//  3. The token is sealed with Fernet (AES-128-CBC with an HMAC-SHA256 tag)
//  4. Salt, iteration count and ciphertext are framed into one base64url string
//
// # Token Format
//
//	token := base64url( salt[16] || iterations_be32[4] || ciphertext[N] )
//
// There is no version byte. The 20-byte prefix is the only structure, and it
// must stay byte-for-byte stable so tokens written by earlier releases remain
// readable.
//
// The iteration count travels with the token. Recovering a token always uses
// the embedded count, so DefaultIterations can be raised without breaking
// tokens that were protected with a lower one.
//
// # Failures
//
// RecoverToken distinguishes two failures:
//   - ErrWrongPassword: the tag did not verify (wrong passphrase or tampering)
//   - ErrMalformedToken: the text is not a framed token at all
//
// Only the first is worth asking the user again for.
package credentials
