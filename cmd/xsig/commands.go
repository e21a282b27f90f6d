package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-p256-xschnorr/internal/codec"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/keys"
)

var errInvalidSignature = errors.New("signature is not valid")

func keygenCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := e.svc.GenerateKey()
			if err != nil {
				return err
			}
			e.logger.Info("generated key pair")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "private key: %s\n", kp.PrivateKey)
			fmt.Fprintf(out, "public key: %s\n", kp.PublicKey)
			return nil
		},
	}
}

func pubkeyCmd(e *env) *cobra.Command {
	var private string
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := e.svc.PublicKey(private)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pub)
			return nil
		},
	}
	cmd.Flags().StringVar(&private, "private", "", "Private key in hex")
	cmd.MarkFlagRequired("private")
	return cmd
}

func signCmd(e *env) *cobra.Command {
	var private, message string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := e.svc.Sign(private, []byte(message))
			if err != nil {
				return errors.WithMessage(err, "signing")
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&private, "private", "", "Private key in hex")
	cmd.Flags().StringVar(&message, "message", "", "Message to sign")
	cmd.MarkFlagRequired("private")
	return cmd
}

func verifyCmd(e *env) *cobra.Command {
	var public, signature, message string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			valid, err := e.svc.Verify(public, signature, []byte(message))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "is valid: %t\n", valid)
			if !valid {
				return errInvalidSignature
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&public, "public", "", `Public key, "x:<x> y:<y>"`)
	cmd.Flags().StringVar(&signature, "signature", "", `Signature, "s:<s> e:<e>"`)
	cmd.Flags().StringVar(&message, "message", "", "Signed message")
	cmd.MarkFlagRequired("public")
	cmd.MarkFlagRequired("signature")
	return cmd
}

// demoCmd runs the whole flow once: key generation, encoding round trips,
// signing and verification.
func demoCmd(e *env) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a key, sign a message and verify it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			curve := e.signer.Curve()

			kp, err := keys.Generate(curve, keys.DefaultSource())
			if err != nil {
				return err
			}
			privText := codec.EncodePrivateKey(kp.Private)
			fmt.Fprintf(out, "private key: %s\n", privText)

			priv, err := codec.DecodePrivateKey(privText)
			if err != nil {
				return err
			}
			pubText, err := codec.EncodePublicKey(kp.Public)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "public key: %s\n", pubText)

			pub, err := codec.DecodePublicKey(curve, pubText)
			if err != nil {
				return err
			}

			sig, err := e.signer.Sign(priv, []byte(message))
			if err != nil {
				return err
			}
			sigText := codec.EncodeSignature(sig)
			fmt.Fprintf(out, "signature: %s\n", sigText)

			decoded, err := codec.DecodeSignature(sigText)
			if err != nil {
				return err
			}
			valid := e.signer.Verify(pub, decoded, []byte(message))
			e.logger.Info("demo finished", zap.Bool("valid", valid))
			fmt.Fprintf(out, "is valid: %t\n", valid)
			if !valid {
				return errInvalidSignature
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&message, "message", "hello world", "Message to sign")
	return cmd
}
