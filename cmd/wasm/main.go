//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/digest"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/schnorr"
	"github.com/smallyu/go-p256-xschnorr/internal/textsig"
)

// Services keyed by digest name, built on first use.
var services = make(map[string]*textsig.Service)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go P-256 XSig WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("XSig", map[string]interface{}{
		"GenerateKey": js.FuncOf(GenerateKey),
		"PublicKey":   js.FuncOf(PublicKey),
		"Sign":        js.FuncOf(Sign),
		"Verify":      js.FuncOf(Verify),
	})

	<-c
}

// service returns the Service for the optional digest name in args[i].
func service(args []js.Value, i int) (*textsig.Service, error) {
	name := digest.Default
	if len(args) > i && args[i].Type() == js.TypeString {
		name = args[i].String()
	}
	if svc, ok := services[name]; ok {
		return svc, nil
	}
	h, err := digest.Lookup(name)
	if err != nil {
		return nil, err
	}
	svc := textsig.New(schnorr.NewSigner(curves.NewP256(), schnorr.WithHash(h)))
	services[name] = svc
	return svc, nil
}

// GenerateKey creates a key pair.
// Arguments:
// 0: digest name (optional, unused for key generation)
// Returns:
// JSON string {privateKey, publicKey} or an error string
func GenerateKey(this js.Value, args []js.Value) interface{} {
	svc, err := service(args, 0)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	kp, err := svc.GenerateKey()
	if err != nil {
		return fmt.Sprintf("error: key generation failed: %v", err)
	}
	b, _ := json.Marshal(kp)
	return string(b)
}

// PublicKey derives a public key.
// Arguments:
// 0: private key (hex)
// Returns:
// Encoded public key or an error string
func PublicKey(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return "error: expected 1 argument (privateKey)"
	}
	svc, err := service(args, 1)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := svc.PublicKey(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return pub
}

// Sign signs a message.
// Arguments:
// 0: private key (hex)
// 1: message (string)
// 2: digest name (optional)
// Returns:
// Encoded signature or an error string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return "error: expected 2 arguments (privateKey, message)"
	}
	svc, err := service(args, 2)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	sig, err := svc.Sign(args[0].String(), []byte(args[1].String()))
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}
	return sig
}

// Verify checks a signature.
// Arguments:
// 0: public key ("x:<x> y:<y>")
// 1: signature ("s:<s> e:<e>")
// 2: message (string)
// 3: digest name (optional)
// Returns:
// bool or an error string
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return "error: expected 3 arguments (publicKey, signature, message)"
	}
	svc, err := service(args, 3)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	ok, err := svc.Verify(args[0].String(), args[1].String(), []byte(args[2].String()))
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return ok
}
