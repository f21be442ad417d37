package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/go-hdgen/cmd/env"
	"github/chapool/go-hdgen/cmd/generate"
	"github/chapool/go-hdgen/cmd/mnemonic"
	"github/chapool/go-hdgen/cmd/verify"
	"github/chapool/go-hdgen/internal/config"
)

const dotEnvFile = ".env"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Derives batches of HD wallets for Ethereum and Solana from a BIP39 mnemonic.
Requires configuration through ENV, flags override single values.`, config.ModuleName),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		config.DotEnvTryLoad(dotEnvFile, os.Setenv)
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		generate.New(),
		mnemonic.New(),
		verify.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
