// Package codec converts keys and signatures to and from their canonical
// text form:
//
//	private key  lowercase hex, no prefix        "c0ffee"
//	public key   "x:" decimal " " "y:" decimal    "x:123 y:456"
//	signature    "s:" decimal " " "e:" decimal    "s:123 e:456"
package codec

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/schnorr"
	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

const (
	kindPrivateKey = "private key"
	kindPublicKey  = "public key"
	kindSignature  = "signature"
)

// EncodePrivateKey renders k in lowercase hex.
func EncodePrivateKey(k *big.Int) string {
	return k.Text(16)
}

// DecodePrivateKey parses a hex private key. The value is not reduced
// modulo n.
func DecodePrivateKey(s string) (*big.Int, error) {
	k, err := parseUint(s, 16)
	if err != nil {
		return nil, xsig.NewFormatError(kindPrivateKey, s, err)
	}
	return k, nil
}

// EncodePublicKey renders p as "x:<x> y:<y>". The identity has no encoding.
func EncodePublicKey(p curves.Point) (string, error) {
	if p.IsIdentity() {
		return "", xsig.NewFormatError(kindPublicKey, "", errors.New("the identity has no encoding"))
	}
	return encodePair("x:", p.X(), "y:", p.Y()), nil
}

// DecodePublicKey parses "x:<x> y:<y>" and validates the point on curve.
func DecodePublicKey(curve *curves.Curve, s string) (curves.Point, error) {
	x, y, err := decodePair(s, "x:", "y:")
	if err != nil {
		return curves.Point{}, xsig.NewFormatError(kindPublicKey, s, err)
	}
	return curve.NewPoint(x, y)
}

// EncodeSignature renders sig as "s:<s> e:<e>".
func EncodeSignature(sig *schnorr.Signature) string {
	return encodePair("s:", sig.S, "e:", sig.E)
}

// DecodeSignature parses "s:<s> e:<e>".
func DecodeSignature(s string) (*schnorr.Signature, error) {
	sc, e, err := decodePair(s, "s:", "e:")
	if err != nil {
		return nil, xsig.NewFormatError(kindSignature, s, err)
	}
	return &schnorr.Signature{S: sc, E: e}, nil
}

func encodePair(p1 string, v1 *big.Int, p2 string, v2 *big.Int) string {
	var b strings.Builder
	b.WriteString(p1)
	b.WriteString(v1.String())
	b.WriteByte(' ')
	b.WriteString(p2)
	b.WriteString(v2.String())
	return b.String()
}

func decodePair(s, p1, p2 string) (*big.Int, *big.Int, error) {
	fields := strings.Split(s, " ")
	if len(fields) != 2 {
		return nil, nil, errors.WithMessagef(xsig.ErrMalformed, "expected 2 space separated fields, got %d", len(fields))
	}

	v1, err := decodeField(fields[0], p1)
	if err != nil {
		return nil, nil, err
	}
	v2, err := decodeField(fields[1], p2)
	if err != nil {
		return nil, nil, err
	}
	return v1, v2, nil
}

func decodeField(f, prefix string) (*big.Int, error) {
	if !strings.HasPrefix(f, prefix) {
		return nil, errors.WithMessagef(xsig.ErrMalformed, "missing %q prefix", prefix)
	}
	return parseUint(strings.TrimPrefix(f, prefix), 10)
}

// parseUint accepts digits of the given base only; signs, prefixes and
// underscores are rejected.
func parseUint(s string, base int) (*big.Int, error) {
	if s == "" {
		return nil, errors.WithMessage(xsig.ErrMalformed, "empty number")
	}
	for _, c := range s {
		if !isDigit(c, base) {
			return nil, errors.WithMessagef(xsig.ErrMalformed, "invalid base %d digit %q", base, c)
		}
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.WithMessagef(xsig.ErrMalformed, "invalid base %d number", base)
	}
	return v, nil
}

func isDigit(c rune, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		return true
	}
	return false
}
