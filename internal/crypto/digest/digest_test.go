package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			h, err := Lookup(name)
			require.NoError(t, err)
			assert.Len(t, Sum(h, []byte("hello world")), Size)
		})
	}

	h, err := Lookup("")
	require.NoError(t, err)
	want := sha256.Sum256([]byte("hello world"))
	assert.Equal(t, want[:], Sum(h, []byte("hello world")))

	_, err = Lookup("SHA3-256")
	assert.NoError(t, err)

	_, err = Lookup("md5")
	assert.ErrorContains(t, err, "unknown digest")
}

func TestKnownVectors(t *testing.T) {
	sha3, err := Lookup("sha3-256")
	require.NoError(t, err)
	assert.Equal(t,
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		hex.EncodeToString(Sum(sha3, nil)))

	sha, err := Lookup("sha256")
	require.NoError(t, err)
	assert.Equal(t,
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		hex.EncodeToString(Sum(sha, []byte("hello world"))))
}
