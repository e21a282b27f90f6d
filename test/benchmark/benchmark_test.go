package benchmark

import (
	"math/big"
	"testing"

	"github.com/smallyu/go-p256-xschnorr/internal/codec"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/keys"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/schnorr"
)

// setupKey creates a key pair for benchmarking.
func setupKey(b *testing.B, curve *curves.Curve) *keys.KeyPair {
	kp, err := keys.Generate(curve, keys.DefaultSource())
	if err != nil {
		b.Fatalf("KeyGen failed: %v", err)
	}
	return kp
}

func BenchmarkScalarBaseMult(b *testing.B) {
	curve := curves.NewP256()
	k := new(big.Int).Sub(curve.Order(), big.NewInt(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.ScalarBaseMult(k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKeyGen(b *testing.B) {
	curve := curves.NewP256()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		setupKey(b, curve)
	}
}

func BenchmarkSign(b *testing.B) {
	curve := curves.NewP256()
	signer := schnorr.NewSigner(curve)
	kp := setupKey(b, curve)
	msg := []byte("benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := signer.Sign(kp.Private, msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	curve := curves.NewP256()
	signer := schnorr.NewSigner(curve)
	kp := setupKey(b, curve)
	msg := []byte("benchmark message")
	sig, err := signer.Sign(kp.Private, msg)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !signer.Verify(kp.Public, sig, msg) {
			b.Fatal("verification failed")
		}
	}
}

func BenchmarkDecodePublicKey(b *testing.B) {
	curve := curves.NewP256()
	kp := setupKey(b, curve)
	text, err := codec.EncodePublicKey(kp.Public)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.DecodePublicKey(curve, text); err != nil {
			b.Fatal(err)
		}
	}
}
