package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smallyu/go-p256-xschnorr/internal/crypto/curves"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/digest"
	"github.com/smallyu/go-p256-xschnorr/internal/crypto/schnorr"
	"github.com/smallyu/go-p256-xschnorr/internal/textsig"
	"github.com/smallyu/go-p256-xschnorr/pkg/xsig"
)

const envPrefix = "XSIG"

// env holds what every subcommand needs once configuration is loaded.
type env struct {
	params xsig.Parameters
	logger *zap.Logger
	signer *schnorr.Signer
	svc    *textsig.Service
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	e := &env{}

	root := &cobra.Command{
		Use:          "xsig",
		Short:        "Sign and verify messages with XOR-challenge Schnorr signatures on P-256",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(v, cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a configuration file (yaml, json or toml)")
	flags.String("hash", digest.Default, "Message digest: "+strings.Join(digest.Names(), ", "))
	flags.String("log-level", xsig.DefaultParameters().LogLevel, "Log level (debug, info, warn, error)")
	bindFlags(v, flags)

	root.AddCommand(
		keygenCmd(e),
		pubkeyCmd(e),
		signCmd(e),
		verifyCmd(e),
		demoCmd(e),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.BindPFlag("config", flags.Lookup("config"))
	v.BindPFlag("hash", flags.Lookup("hash"))
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	v.SetDefault("curve", xsig.DefaultParameters().Curve)
}

func (e *env) load(v *viper.Viper, logOut io.Writer) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", path)
		}
	}

	e.params = xsig.Parameters{
		Curve:    v.GetString("curve"),
		Hash:     v.GetString("hash"),
		LogLevel: v.GetString("log_level"),
	}
	if e.params.Curve != curves.P256().Name() {
		return errors.Errorf("unsupported curve %q, only %s is available", e.params.Curve, curves.P256().Name())
	}

	logger, err := newLogger(e.params.LogLevel, logOut)
	if err != nil {
		return err
	}
	h, err := digest.Lookup(e.params.Hash)
	if err != nil {
		return err
	}

	e.logger = logger
	e.signer = schnorr.NewSigner(curves.NewP256(),
		schnorr.WithHash(h),
		schnorr.WithLogger(logger.Named("signer")),
	)
	e.svc = textsig.New(e.signer)
	logger.Debug("configuration loaded",
		zap.String("curve", e.params.Curve),
		zap.String("hash", e.params.Hash),
		zap.String("config", v.ConfigFileUsed()),
	)
	return nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("xsig"), nil
}
