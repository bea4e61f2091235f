// Package cryptox implements password credential hashing for the identity
// store. Plain-text storage is deliberately not supported; credentials are
// kept as salted argon2id hashes and verified in constant time.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	// SaltSize is the per-account random salt length in bytes.
	SaltSize = 16
)

// HashPassword derives the stored credential hash from a password and a
// per-account salt.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// VerifyPassword re-derives the hash for a login attempt and compares it
// against the stored one in constant time.
func VerifyPassword(password, salt, storedHash []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, storedHash) == 1
}
