package command

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/go-hdgen/internal/config"
)

const (
	FlagChain             = "chain"
	FlagMnemonic          = "mnemonic"
	FlagCount             = "count"
	FlagHardenedThreshold = "hardened-threshold"
	FlagWorkers           = "workers"
	FlagEd25519Derivation = "ed25519-derivation"
	FlagStrict            = "strict"
	FlagMetricsFile       = "metrics-file"
)

// AddWalletFlags registers the flags that override the wallet section of the
// generator config. Flag defaults are zero values, only flags set on the
// command line replace what came from ENV.
func AddWalletFlags(cmd *cobra.Command) {
	cmd.Flags().String(FlagMnemonic, "", "BIP39 mnemonic, '-' reads it from stdin (default $WALLET_MNEMONIC or prompt)")
	cmd.Flags().Int(FlagCount, 0, "number of wallets per chain (default $WALLET_BATCH_SIZE)")
	cmd.Flags().Int(FlagHardenedThreshold, 0, "indices below this value use hardened derivation (default $WALLET_HARDENED_THRESHOLD)")
	cmd.Flags().Int(FlagWorkers, 0, "parallel workers per batch (default $WALLET_WORKERS)")
	cmd.Flags().String(FlagEd25519Derivation, "", "ed25519 derivation: legacy or slip10 (default $WALLET_ED25519_DERIVATION)")
	cmd.Flags().Bool(FlagStrict, false, "reject mnemonics failing the BIP39 wordlist or checksum (default $WALLET_STRICT_MNEMONIC)")
	cmd.Flags().String(FlagMetricsFile, "", "write prometheus metrics to this file (default $METRICS_TEXTFILE)")
}

// ApplyWalletFlags copies every flag explicitly set on cmd onto cfg.
func ApplyWalletFlags(cmd *cobra.Command, cfg *config.Generator) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed(FlagChain) {
		cfg.Wallet.Chains = splitChains(v.GetString(FlagChain))
	}
	if changed(FlagCount) {
		cfg.Wallet.BatchSize = v.GetInt(FlagCount)
	}
	if changed(FlagHardenedThreshold) {
		cfg.Wallet.HardenedThreshold = v.GetInt(FlagHardenedThreshold)
	}
	if changed(FlagWorkers) {
		cfg.Wallet.Workers = v.GetInt(FlagWorkers)
	}
	if changed(FlagEd25519Derivation) {
		cfg.Wallet.Ed25519Derivation = strings.ToLower(v.GetString(FlagEd25519Derivation))
	}
	if changed(FlagStrict) {
		cfg.Wallet.StrictMnemonic = v.GetBool(FlagStrict)
	}
	if changed(FlagMetricsFile) {
		cfg.Metrics.TextfilePath = v.GetString(FlagMetricsFile)
		cfg.Metrics.Enabled = cfg.Metrics.Enabled || cfg.Metrics.TextfilePath != ""
	}

	return cfg.Wallet.Validate()
}

func splitChains(value string) []string {
	parts := strings.Split(value, ",")

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}

	return result
}
