package schnorr

import (
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/digest"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/keys"
	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

// Signature is a Schnorr-style signature with response S and challenge E.
type Signature struct {
	S *big.Int // s = r - k*e mod n
	E *big.Int // e = H(m) XOR R.x
}

// Signer signs and verifies messages on a fixed curve.
//
// The challenge is the message digest XORed with the x-coordinate of the
// ephemeral point, not a hash of both reduced mod n as in textbook Schnorr.
type Signer struct {
	curve  *curves.Curve
	src    xsig.ScalarSource
	hash   xsig.HashFunc
	logger *zap.Logger
}

type Option func(*Signer)

// WithSource sets where ephemeral scalars are drawn from. Defaults to
// crypto/rand.
func WithSource(src xsig.ScalarSource) Option {
	return func(s *Signer) {
		s.src = src
	}
}

// WithHash sets the message digest. It must produce 32 bytes. Defaults to
// SHA-256.
func WithHash(h xsig.HashFunc) Option {
	return func(s *Signer) {
		s.hash = h
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Signer) {
		s.logger = l
	}
}

// NewSigner returns a Signer for curve.
func NewSigner(curve *curves.Curve, opts ...Option) *Signer {
	s := &Signer{
		curve:  curve,
		src:    keys.DefaultSource(),
		logger: zap.NewNop(),
	}
	s.hash, _ = digest.Lookup(digest.Default)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Curve returns the curve the signer works on.
func (s *Signer) Curve() *curves.Curve {
	return s.curve
}

// Sign signs message with privateKey. A fresh ephemeral scalar is drawn on
// every call.
func (s *Signer) Sign(privateKey *big.Int, message []byte) (*Signature, error) {
	if privateKey == nil {
		return nil, errors.New("schnorr: private key cannot be nil")
	}
	n := s.curve.Order()

	// 1. Ephemeral key pair r, R = r*G
	eph, err := keys.Generate(s.curve, s.src)
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: generating ephemeral key")
	}
	if eph.Public.IsIdentity() {
		return nil, xsig.NewArithmeticError("sign", xsig.ErrIdentityNonce)
	}

	// 2. e = H(m) XOR R.x
	e := s.challenge(message, eph.Public)

	// 3. s = r - k*e mod n
	sc := new(big.Int).Mul(privateKey, e)
	sc.Sub(eph.Private, sc)
	sc.Mod(sc, n)

	s.logger.Debug("signed message", zap.Int("length", len(message)), zap.Stringer("e", e))

	return &Signature{
		S: sc,
		E: e,
	}, nil
}

// Verify reports whether sig is a valid signature of message under
// publicKey. It never fails: malformed input is simply not valid.
func (s *Signer) Verify(publicKey curves.Point, sig *Signature, message []byte) bool {
	if sig == nil || sig.S == nil || sig.E == nil {
		return false
	}
	if sig.S.Sign() < 0 || sig.E.Sign() < 0 {
		s.logger.Debug("signature rejected", zap.String("reason", "negative component"))
		return false
	}
	if publicKey.IsIdentity() {
		s.logger.Debug("signature rejected", zap.String("reason", "identity public key"))
		return false
	}

	// R' = s*G + e*K
	u, err := s.curve.ScalarBaseMult(sig.S)
	if err != nil {
		s.logger.Debug("signature rejected", zap.Error(err))
		return false
	}
	v, err := s.curve.ScalarMult(sig.E, publicKey)
	if err != nil {
		s.logger.Debug("signature rejected", zap.Error(err))
		return false
	}
	r, err := s.curve.Add(u, v)
	if err != nil {
		s.logger.Debug("signature rejected", zap.Error(err))
		return false
	}
	if r.IsIdentity() {
		s.logger.Debug("signature rejected", zap.String("reason", "recovered point is the identity"))
		return false
	}

	if s.challenge(message, r).Cmp(sig.E) != 0 {
		s.logger.Debug("signature rejected", zap.String("reason", "challenge mismatch"))
		return false
	}
	return true
}

// challenge computes int(H(m)) XOR R.x, the digest read big-endian.
func (s *Signer) challenge(message []byte, r curves.Point) *big.Int {
	m := new(big.Int).SetBytes(digest.Sum(s.hash, message))
	return m.Xor(m, r.X())
}
