package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// DefaultSize is the number of random bytes behind each token (256 bits).
const DefaultSize = 32

// Generator issues opaque single-use tokens.
type Generator interface {
	Generate() (string, error)
}

type RandomGenerator struct {
	size   int
	reader io.Reader
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{
		size:   DefaultSize,
		reader: rand.Reader,
	}
}

// Generate returns size random bytes encoded as unpadded URL-safe base64.
func (g *RandomGenerator) Generate() (string, error) {
	b := make([]byte, g.size)
	if _, err := io.ReadFull(g.reader, b); err != nil {
		return "", fmt.Errorf("read random bytes failed: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
