package keys

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

// ReaderSource draws scalars from an io.Reader, normally a CSPRNG.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource returns a ScalarSource reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// DefaultSource returns a ScalarSource backed by crypto/rand.
func DefaultSource() xsig.ScalarSource {
	return NewReaderSource(rand.Reader)
}

// ScalarBelow returns a uniform integer in [0, n).
func (s *ReaderSource) ScalarBelow(n *big.Int) (*big.Int, error) {
	k, err := rand.Int(s.r, n)
	if err != nil {
		return nil, errors.Wrap(err, "reading random scalar")
	}
	return k, nil
}

// KeyPair holds a private scalar and its public point Private*G.
type KeyPair struct {
	Private *big.Int
	Public  curves.Point
}

// GeneratePrivateScalar draws a fresh private scalar in [0, n).
func GeneratePrivateScalar(src xsig.ScalarSource, n *big.Int) (*big.Int, error) {
	k, err := src.ScalarBelow(n)
	if err != nil {
		return nil, err
	}
	if k.Sign() < 0 || k.Cmp(n) >= 0 {
		return nil, errors.Errorf("scalar source returned %s, outside [0, n)", k)
	}
	return k, nil
}

// DerivePublicPoint returns k*G.
func DerivePublicPoint(curve *curves.Curve, k *big.Int) (curves.Point, error) {
	return curve.ScalarBaseMult(k)
}

// Generate creates a new key pair on curve.
func Generate(curve *curves.Curve, src xsig.ScalarSource) (*KeyPair, error) {
	k, err := GeneratePrivateScalar(src, curve.Order())
	if err != nil {
		return nil, err
	}
	pub, err := DerivePublicPoint(curve, k)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		Private: k,
		Public:  pub,
	}, nil
}
