package codec

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/keys"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/schnorr"
	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

func TestPrivateKey(t *testing.T) {
	assert.Equal(t, "c0ffee", EncodePrivateKey(big.NewInt(0xc0ffee)))
	assert.Equal(t, "0", EncodePrivateKey(big.NewInt(0)))

	k, err := DecodePrivateKey("C0FFEE")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(0xc0ffee), k)

	for i := 0; i < 8; i++ {
		kp, err := keys.Generate(curves.NewP256(), keys.DefaultSource())
		require.NoError(t, err)

		got, err := DecodePrivateKey(EncodePrivateKey(kp.Private))
		require.NoError(t, err)
		assert.Equal(t, 0, kp.Private.Cmp(got))
	}
}

func TestPublicKey(t *testing.T) {
	curve := curves.NewP256()

	k, err := DecodePrivateKey("c0ffee")
	require.NoError(t, err)
	pub, err := keys.DerivePublicPoint(curve, k)
	require.NoError(t, err)

	s, err := EncodePublicKey(pub)
	require.NoError(t, err)
	assert.Equal(t,
		"x:95607981643752224035336400532902126584968142908558605486264596827507348750050 "+
			"y:105230540267100157884778320221089121481972872473237567809309654207662606730738", s)

	got, err := DecodePublicKey(curve, s)
	require.NoError(t, err)
	assert.True(t, got.Equal(pub))

	_, err = EncodePublicKey(curves.Identity())
	var ferr *xsig.FormatError
	assert.True(t, errors.As(err, &ferr))
}

func TestPublicKeyNotOnCurve(t *testing.T) {
	_, err := DecodePublicKey(curves.NewP256(), "x:1 y:2")
	require.Error(t, err)

	var verr *xsig.ValidationError
	assert.True(t, errors.As(err, &verr))
	var ferr *xsig.FormatError
	assert.False(t, errors.As(err, &ferr))
}

func TestSignature(t *testing.T) {
	curve := curves.NewP256()
	kp, err := keys.Generate(curve, keys.DefaultSource())
	require.NoError(t, err)
	sig, err := schnorr.NewSigner(curve).Sign(kp.Private, []byte("hello world"))
	require.NoError(t, err)

	s := EncodeSignature(sig)
	got, err := DecodeSignature(s)
	require.NoError(t, err)
	assert.Equal(t, 0, sig.S.Cmp(got.S))
	assert.Equal(t, 0, sig.E.Cmp(got.E))
	assert.Equal(t, s, EncodeSignature(got))

	assert.Equal(t, "s:12 e:34", EncodeSignature(&schnorr.Signature{S: big.NewInt(12), E: big.NewInt(34)}))
}

func TestDecodeErrors(t *testing.T) {
	curve := curves.NewP256()

	privateKeys := []string{"", "0x1f", "-1f", "+1", "1g", "1 2", "_1"}
	for _, in := range privateKeys {
		_, err := DecodePrivateKey(in)
		assertFormatError(t, err, in)
	}

	pairs := []string{
		"",
		"x:1",
		"x:1 y:2 z:3",
		"x:1  y:2",
		"x:1\ty:2",
		"1 2",
		"y:1 x:2",
		"x: y:2",
		"x:1 y:-2",
		"x:1 y:+2",
		"x:0x1 y:2",
		"x:1 y:ff",
	}
	for _, in := range pairs {
		_, err := DecodePublicKey(curve, in)
		assertFormatError(t, err, in)

		sig := in
		if len(sig) > 0 {
			sig = replacePrefixes(in)
		}
		_, err = DecodeSignature(sig)
		assertFormatError(t, err, sig)
	}

	_, err := DecodeSignature("x:1 y:2")
	assertFormatError(t, err, "x:1 y:2")
	_, err = DecodePublicKey(curve, "s:1 e:2")
	assertFormatError(t, err, "s:1 e:2")
}

func assertFormatError(t *testing.T, err error, in string) {
	t.Helper()
	require.Error(t, err, "input %q", in)
	var ferr *xsig.FormatError
	assert.True(t, errors.As(err, &ferr), "input %q: %v", in, err)
	assert.True(t, errors.Is(err, xsig.ErrMalformed), "input %q: %v", in, err)
}

// replacePrefixes turns a public key fixture into the matching signature one.
func replacePrefixes(s string) string {
	out := []byte(s)
	for i := 0; i+1 < len(out); i++ {
		if out[i+1] != ':' {
			continue
		}
		switch out[i] {
		case 'x':
			out[i] = 's'
		case 'y':
			out[i] = 'e'
		}
	}
	return string(out)
}
