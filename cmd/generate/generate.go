package generate

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-hdgen/internal/config"
	"github/chapool/go-hdgen/internal/util/command"
	"github/chapool/go-hdgen/internal/wallet"
)

const (
	outputFlag     = "output"
	privateKeyFlag = "hide-private-keys"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Derives a batch of wallets per chain",
		Long: `Derives a batch of wallets per chain from a BIP39 mnemonic.

Ethereum wallets use BIP32 on secp256k1 along m/44'/60'/0'/0/<i>,
Solana wallets use ed25519 along m/44'/501'/0'/0/<i>. Indices below the
hardened threshold are derived hardened.`,
		Example: `  app generate --chain all --mnemonic -  < mnemonic.txt
  app generate --chain solana --output json --count 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}

	cmd.Flags().String(command.FlagChain, "", "comma separated chains or 'all' (default $WALLET_CHAINS)")
	cmd.Flags().StringP(outputFlag, "o", formatTable, "output format: table, json or toml")
	cmd.Flags().Bool(privateKeyFlag, false, "omit private keys from the output")
	command.AddWalletFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command) error {
	cfg := config.DefaultGeneratorConfigFromEnv()
	if err := command.ApplyWalletFlags(cmd, &cfg); err != nil {
		return err
	}

	format, err := cmd.Flags().GetString(outputFlag)
	if err != nil {
		return errors.Wrap(err, "failed to read output flag")
	}
	format = strings.ToLower(format)
	if !isFormat(format) {
		return errors.Errorf("unknown output format %q", format)
	}

	hidePrivateKeys, err := cmd.Flags().GetBool(privateKeyFlag)
	if err != nil {
		return errors.Wrap(err, "failed to read private key flag")
	}

	mnemonic, err := command.ReadMnemonic(cmd, cfg.Wallet.Mnemonic)
	if err != nil {
		return err
	}

	return command.WithGenerator(cmd.Context(), cfg, func(ctx context.Context, g *command.Generator) error {
		batches, err := g.Wallet.GenerateAll(ctx, mnemonic)
		if err != nil {
			return err
		}

		if hidePrivateKeys {
			redactPrivateKeys(batches)
		}

		return render(cmd.OutOrStdout(), format, batches)
	})
}

func redactPrivateKeys(batches []*wallet.Batch) {
	for _, b := range batches {
		for i := range b.Wallets {
			b.Wallets[i].PrivateKey = ""
		}
	}
}
