package mnemonic

import (
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/go-hdgen/internal/config"
	"github/chapool/go-hdgen/internal/util/command"
	"github/chapool/go-hdgen/internal/wallet/seed"
)

const (
	wordsFlag    = "words"
	defaultWords = 24
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("mnemonic",
		newNew(),
		newCheck(),
	)
}

func newNew() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Prints a fresh random BIP39 mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			words, err := cmd.Flags().GetInt(wordsFlag)
			if err != nil {
				return err
			}

			m, err := seed.NewMnemonic(words)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), m)

			return nil
		},
	}

	cmd.Flags().Int(wordsFlag, defaultWords, "number of words: 12, 15, 18, 21 or 24")

	return cmd
}

func newCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checks a mnemonic against the BIP39 wordlist and checksum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := command.ReadMnemonic(cmd, config.DefaultGeneratorConfigFromEnv().Wallet.Mnemonic)
			if err != nil {
				return err
			}

			if err := seed.ValidateMnemonic(m); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "mnemonic is valid")

			return nil
		},
	}

	cmd.Flags().String(command.FlagMnemonic, "", "BIP39 mnemonic, '-' reads it from stdin (default $WALLET_MNEMONIC or prompt)")

	return cmd
}
