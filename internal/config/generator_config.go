package config

import (
	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github/chapool/go-hdgen/internal/util"
)

const (
	Ed25519DerivationLegacy = "legacy"
	Ed25519DerivationSLIP10 = "slip10"

	defaultBatchSize         = 10
	defaultHardenedThreshold = 3
	defaultWorkers           = 1
)

type LoggerServer struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

type Wallet struct {
	// Mnemonic and Passphrase are secrets and never serialized.
	Mnemonic          string `json:"-"`
	Passphrase        string `json:"-"`
	StrictMnemonic    bool
	Chains            []string
	BatchSize         int
	HardenedThreshold int
	Workers           int
	Ed25519Derivation string
}

type Metrics struct {
	Enabled      bool
	TextfilePath string
}

type Generator struct {
	Logger  LoggerServer
	Wallet  Wallet
	Metrics Metrics
}

// DefaultGeneratorConfigFromEnv returns the generator config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultGeneratorConfigFromEnv()!
func DefaultGeneratorConfigFromEnv() Generator {
	return Generator{
		Logger: LoggerServer{
			Level:              util.GetEnvAsLogLevel("LOGGER_LEVEL", zerolog.InfoLevel),
			PrettyPrintConsole: util.GetEnvAsBool("LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Wallet: Wallet{
			Mnemonic:          util.GetEnv("WALLET_MNEMONIC", ""),
			Passphrase:        util.GetEnv("WALLET_PASSPHRASE", ""),
			StrictMnemonic:    util.GetEnvAsBool("WALLET_STRICT_MNEMONIC", false),
			Chains:            util.GetEnvAsStringArr("WALLET_CHAINS", []string{"ethereum", "solana"}),
			BatchSize:         util.GetEnvAsInt("WALLET_BATCH_SIZE", defaultBatchSize),
			HardenedThreshold: util.GetEnvAsInt("WALLET_HARDENED_THRESHOLD", defaultHardenedThreshold),
			Workers:           util.GetEnvAsInt("WALLET_WORKERS", defaultWorkers),
			Ed25519Derivation: util.GetEnvEnum("WALLET_ED25519_DERIVATION", Ed25519DerivationLegacy,
				[]string{Ed25519DerivationLegacy, Ed25519DerivationSLIP10}),
		},
		Metrics: Metrics{
			Enabled:      util.GetEnvAsBool("METRICS_ENABLED", true),
			TextfilePath: util.GetEnv("METRICS_TEXTFILE", ""),
		},
	}
}

// Validate checks the wallet section for values the generator cannot work with.
func (w Wallet) Validate() error {
	err := vala.BeginValidation().Validate(
		vala.GreaterThan(w.BatchSize, 0, "BatchSize"),
		vala.GreaterThan(w.HardenedThreshold, -1, "HardenedThreshold"),
		vala.GreaterThan(w.Workers, 0, "Workers"),
		vala.GreaterThan(len(w.Chains), 0, "Chains"),
	).Check()
	if err != nil {
		return errors.Wrap(err, "invalid wallet config")
	}

	if !util.ContainsString([]string{Ed25519DerivationLegacy, Ed25519DerivationSLIP10}, w.Ed25519Derivation) {
		return errors.Errorf("invalid wallet config: unknown ed25519 derivation %q", w.Ed25519Derivation)
	}

	return nil
}
