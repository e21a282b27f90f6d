package textsig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/schnorr"
	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

func newService() *Service {
	return New(schnorr.NewSigner(curves.NewP256()))
}

func TestRoundTrip(t *testing.T) {
	svc := newService()

	kp, err := svc.GenerateKey()
	require.NoError(t, err)

	pub, err := svc.PublicKey(kp.PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey, pub)

	sig, err := svc.Sign(kp.PrivateKey, []byte("hello world"))
	require.NoError(t, err)

	ok, err := svc.Verify(kp.PublicKey, sig, []byte("hello world"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(kp.PublicKey, sig, []byte("hello worle"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestErrors(t *testing.T) {
	svc := newService()
	var ferr *xsig.FormatError

	_, err := svc.PublicKey("zz")
	assert.True(t, errors.As(err, &ferr))

	_, err = svc.Sign("", []byte("m"))
	assert.True(t, errors.As(err, &ferr))

	kp, err := svc.GenerateKey()
	require.NoError(t, err)

	_, err = svc.Verify(kp.PublicKey, "s:1", []byte("m"))
	assert.True(t, errors.As(err, &ferr))

	_, err = svc.Verify("x:1 y:1", "s:1 e:1", []byte("m"))
	assert.True(t, errors.Is(err, xsig.ErrNotOnCurve))

	// Parseable but wrong: false, not an error.
	ok, err := svc.Verify(kp.PublicKey, "s:1 e:1", []byte("m"))
	require.NoError(t, err)
	assert.False(t, ok)
}
