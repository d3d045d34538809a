package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher fingerprints secrets so they can be matched without being stored.
type Hasher interface {
	Hash(secret string) (string, error)
}

// SHA256Hasher hashes the salt followed by the secret with SHA-256.
type SHA256Hasher struct {
	salt string
}

func NewSHA256Hasher(salt string) *SHA256Hasher {
	return &SHA256Hasher{salt: salt}
}

// Hash returns the hex encoded digest.
func (h *SHA256Hasher) Hash(secret string) (string, error) {
	hash := sha256.New()

	if _, err := hash.Write([]byte(h.salt + secret)); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
