package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// saltBytes is the amount of random data per salt (256 bits before hex encoding).
const saltBytes = 32

// keyLen is the derived key length in bytes.
const keyLen = 32

// NewSalt returns a hex-encoded cryptographically random per-user salt.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword derives a hex-encoded PBKDF2-HMAC-SHA256 digest of the
// password under the given salt.  The hex salt string is fed to the KDF
// as-is so re-deriving with the stored salt reproduces the stored hash.
func HashPassword(password, salt string, iterations int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword re-derives the digest from the supplied password and
// stored salt and compares it to the stored hash in constant time.
func VerifyPassword(hash, salt, password string, iterations int) bool {
	derived := HashPassword(password, salt, iterations)
	return hmac.Equal([]byte(derived), []byte(hash))
}
