package verify

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-hdgen/internal/config"
	"github/chapool/go-hdgen/internal/util/command"
)

const (
	indexFlag   = "index"
	addressFlag = "address"
)

// ErrMismatch is returned when the derived address differs from the expected one.
var ErrMismatch = errors.New("address does not match")

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Checks that a mnemonic derives an expected address",
		Long: `Derives the wallet at --index for --chain and compares its address with --address.

Useful to catch a mistyped mnemonic or passphrase before relying on a batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd)
		},
	}

	cmd.Flags().String(command.FlagChain, "", "chain of the address")
	cmd.Flags().Int(indexFlag, 0, "wallet index to derive")
	cmd.Flags().String(addressFlag, "", "expected address")
	command.AddWalletFlags(cmd)

	_ = cmd.MarkFlagRequired(command.FlagChain)
	_ = cmd.MarkFlagRequired(addressFlag)

	return cmd
}

func runVerify(cmd *cobra.Command) error {
	cfg := config.DefaultGeneratorConfigFromEnv()
	if err := command.ApplyWalletFlags(cmd, &cfg); err != nil {
		return err
	}

	chainName, err := cmd.Flags().GetString(command.FlagChain)
	if err != nil {
		return errors.Wrap(err, "failed to read chain flag")
	}

	index, err := cmd.Flags().GetInt(indexFlag)
	if err != nil {
		return errors.Wrap(err, "failed to read index flag")
	}

	expected, err := cmd.Flags().GetString(addressFlag)
	if err != nil {
		return errors.Wrap(err, "failed to read address flag")
	}

	mnemonic, err := command.ReadMnemonic(cmd, cfg.Wallet.Mnemonic)
	if err != nil {
		return err
	}

	return command.WithGenerator(cmd.Context(), cfg, func(ctx context.Context, g *command.Generator) error {
		ok, err := g.Wallet.VerifyAddress(ctx, chainName, mnemonic, index, expected)
		if err != nil {
			return err
		}

		if !ok {
			return errors.Wrapf(ErrMismatch, "%s index %d", chainName, index)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "OK: %s index %d derives %s\n", chainName, index, expected)

		return nil
	})
}
