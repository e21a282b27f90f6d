package xsig

import (
	"hash"
	"math/big"
)

// ScalarSource draws scalars for private and ephemeral keys.
// Implementations must be safe for concurrent use if shared between signers.
type ScalarSource interface {
	// ScalarBelow returns an integer drawn uniformly from [0, n).
	ScalarBelow(n *big.Int) (*big.Int, error)
}

// HashFunc constructs the 256-bit digest used to hash messages.
type HashFunc func() hash.Hash

// Parameters holds the configuration shared by the command line tools.
type Parameters struct {
	Curve    string // Only "P-256" is supported
	Hash     string // Digest name, see digest.Lookup
	LogLevel string // zap level name
}

// DefaultParameters returns the settings used when nothing is configured.
func DefaultParameters() Parameters {
	return Parameters{
		Curve:    "P-256",
		Hash:     "sha256",
		LogLevel: "warn",
	}
}
