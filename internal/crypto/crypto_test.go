package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loginflow/internal/crypto"
)

func TestFingerprint(t *testing.T) {
	a := crypto.Fingerprint([]byte("token-a"))
	assert.Len(t, a, 20)
	assert.Equal(t, a, crypto.Fingerprint([]byte("token-a")))
	assert.NotEqual(t, a, crypto.Fingerprint([]byte("token-b")))
	assert.Empty(t, crypto.Fingerprint(nil))
}

func TestWipe(t *testing.T) {
	b := []byte("hunter2")
	crypto.Wipe(b)
	assert.Equal(t, make([]byte, 7), b)
	crypto.Wipe(nil)
}
