package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validaten/pkg/config"
	"github.com/dmitrymomot/validaten/pkg/logger"
)

type commandKey struct{}

// app carries state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	cfg Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "validaten",
		Short:         "Classify card numbers, crypto addresses, hash digests and network addresses",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	flags := root.PersistentFlags()
	flags.StringP("output", "o", "", "output format: text or json (overrides VALIDATEN_OUTPUT)")
	flags.String("log-level", "", "debug, info, warn or error (overrides VALIDATEN_LOG_LEVEL)")
	flags.Bool("mask", true, "mask card numbers in output (overrides VALIDATEN_MASK_CARDS)")
	flags.String("env-file", "", "load variables from this .env file first")

	root.AddCommand(
		newCardCmd(a),
		newCryptoCmd(a),
		newHashCmd(a),
		newIPCmd(a),
		newMACCmd(a),
		newInspectCmd(a),
		newSamplesCmd(a),
		newValidateCmd(a),
	)
	return root
}

// commandFromContext tags log records with the running subcommand.
func commandFromContext(ctx context.Context) (slog.Attr, bool) {
	name, ok := ctx.Value(commandKey{}).(string)
	if !ok || name == "" {
		return slog.Attr{}, false
	}
	return logger.Command(name), true
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if path, _ := flags.GetString("env-file"); path != "" {
		if err := config.LoadEnv(path); err != nil {
			return err
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("mask") {
		cfg.MaskCards, _ = flags.GetBool("mask")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.log = logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(commandFromContext),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, commandKey{}, cmd.Name()))
	return nil
}
