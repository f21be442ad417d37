package command

import (
	"context"
	"fmt"
	"os"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-hdgen/internal/config"
	"github/chapool/go-hdgen/internal/metrics"
	"github/chapool/go-hdgen/internal/wallet"
	"github/chapool/go-hdgen/internal/wallet/chain"
)

// Generator bundles the services a subcommand needs to derive wallets.
type Generator struct {
	Config  config.Generator
	Chains  chain.Service
	Wallet  wallet.Service
	Metrics *metrics.Service
}

// NewSubcommandGroup returns a command that only groups subcommands and
// prints its help when called directly.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("%s related subcommands", use),
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Fatal().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// ConfigureLogger sets the global zerolog level and output from cfg.
func ConfigureLogger(cfg config.LoggerServer) {
	zerolog.SetGlobalLevel(cfg.Level)
	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
			w.Out = os.Stderr
		}))
	} else {
		log.Logger = log.Output(os.Stderr)
	}
}

// WithGenerator wires logger, metrics, chains and the wallet service from cfg
// and runs f. When metrics are enabled and a textfile is configured the
// registry is written after f returns, also when f failed.
func WithGenerator(ctx context.Context, cfg config.Generator, f func(ctx context.Context, g *Generator) error) (err error) {
	ConfigureLogger(cfg.Logger)

	ctx = log.Logger.WithContext(ctx)

	m, err := metrics.New(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize metrics")
	}

	chains, err := chain.NewService(cfg.Wallet.Ed25519Derivation)
	if err != nil {
		return errors.Wrap(err, "failed to initialize chains")
	}

	walletService, err := wallet.NewService(cfg.Wallet, chains, m, time2.DefaultClock)
	if err != nil {
		return errors.Wrap(err, "failed to initialize wallet service")
	}

	defer func() {
		if m == nil || cfg.Metrics.TextfilePath == "" {
			return
		}

		if writeErr := m.WriteTextfile(cfg.Metrics.TextfilePath); writeErr != nil {
			log.Error().Err(writeErr).Str("path", cfg.Metrics.TextfilePath).Msg("Failed to write metrics textfile")
			if err == nil {
				err = writeErr
			}
		}
	}()

	return f(ctx, &Generator{
		Config:  cfg,
		Chains:  chains,
		Wallet:  walletService,
		Metrics: m,
	})
}
