package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher(t *testing.T) {
	h := NewSHA256Hasher("")

	got, err := h.Hash("abc")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)

	salted, err := NewSHA256Hasher("pepper").Hash("abc")
	require.NoError(t, err)
	assert.NotEqual(t, got, salted)
	assert.Len(t, salted, 64)
}
