// Package cryptox implements the client-side credential derivation used by
// the ComboVault login scheme: a master key derived from the user's password
// with argon2id, and a verifier (SHA-256 of the master key) that is the only
// secret material ever sent to the server.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveMasterKey stretches password with argon2id using the given salt.
// The result is a 32-byte key that never leaves the client.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns the SHA-256 digest of the master key. The server
// stores this digest and compares it on login; it cannot recover the key.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}
