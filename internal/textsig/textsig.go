// Package textsig exposes key generation, signing and verification over the
// canonical text encodings, for callers that only exchange strings.
package textsig

import (
	"github.com/smallyu/go-p256-xschnorr/internal/codec"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/keys"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/schnorr"
)

// KeyPair is an encoded key pair.
type KeyPair struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

// Service wraps a Signer with string inputs and outputs.
type Service struct {
	signer *schnorr.Signer
}

func New(signer *schnorr.Signer) *Service {
	return &Service{signer: signer}
}

// GenerateKey returns a fresh encoded key pair.
func (s *Service) GenerateKey() (*KeyPair, error) {
	kp, err := keys.Generate(s.signer.Curve(), keys.DefaultSource())
	if err != nil {
		return nil, err
	}
	pub, err := codec.EncodePublicKey(kp.Public)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: codec.EncodePrivateKey(kp.Private),
		PublicKey:  pub,
	}, nil
}

// PublicKey derives the encoded public key of an encoded private key.
func (s *Service) PublicKey(privateKey string) (string, error) {
	k, err := codec.DecodePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	p, err := keys.DerivePublicPoint(s.signer.Curve(), k)
	if err != nil {
		return "", err
	}
	return codec.EncodePublicKey(p)
}

// Sign signs message and returns the encoded signature.
func (s *Service) Sign(privateKey string, message []byte) (string, error) {
	k, err := codec.DecodePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	sig, err := s.signer.Sign(k, message)
	if err != nil {
		return "", err
	}
	return codec.EncodeSignature(sig), nil
}

// Verify checks an encoded signature. Only unparseable or off-curve inputs
// produce an error; a well-formed but wrong signature yields false.
func (s *Service) Verify(publicKey, signature string, message []byte) (bool, error) {
	pub, err := codec.DecodePublicKey(s.signer.Curve(), publicKey)
	if err != nil {
		return false, err
	}
	sig, err := codec.DecodeSignature(signature)
	if err != nil {
		return false, err
	}
	return s.signer.Verify(pub, sig, message), nil
}
