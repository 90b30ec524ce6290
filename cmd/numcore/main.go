// Package main is the entry point for the numcore CLI.
package main

import (
	"fmt"
	"os"

	"numcore/internal/config"
	"numcore/internal/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type app struct {
	cfg    config.Config
	format domain.NumberFormat
	logger zerolog.Logger
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	a := &app{}
	var envFile string

	cmd := &cobra.Command{
		Use:           "numcore",
		Short:         "Percent arithmetic and interval classification",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, envFile)
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")

	cmd.AddCommand(percentCmd(a))
	cmd.AddCommand(intervalCmd(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	tag, err := cfg.Tag()
	if err != nil {
		return err
	}

	decimal.DivisionPrecision = int(cfg.Precision)

	a.cfg = cfg
	a.format = domain.NewLocaleFormat(tag)
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(cfg.Level()).
		With().
		Timestamp().
		Str("locale", tag.String()).
		Logger()

	a.logger.Debug().
		Str("separator", a.format.DecimalSeparator()).
		Int32("precision", cfg.Precision).
		Msg("configured")
	return nil
}
