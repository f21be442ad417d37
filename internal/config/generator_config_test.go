package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-hdgen/internal/config"
)

func TestPrintGeneratorEnv(t *testing.T) {
	config := config.DefaultGeneratorConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestGeneratorEnvHidesSecrets(t *testing.T) {
	cfg := config.DefaultGeneratorConfigFromEnv()
	cfg.Wallet.Mnemonic = "moon call borrow"
	cfg.Wallet.Passphrase = "hunter2"

	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "moon call borrow")
	assert.NotContains(t, string(b), "hunter2")
}

func TestDefaultWalletConfig(t *testing.T) {
	cfg := config.DefaultGeneratorConfigFromEnv()

	assert.Equal(t, 10, cfg.Wallet.BatchSize)
	assert.Equal(t, 3, cfg.Wallet.HardenedThreshold)
	assert.Equal(t, config.Ed25519DerivationLegacy, cfg.Wallet.Ed25519Derivation)
	require.NoError(t, cfg.Wallet.Validate())
}

func TestWalletValidate(t *testing.T) {
	valid := config.DefaultGeneratorConfigFromEnv().Wallet
	valid.Chains = []string{"ethereum"}

	tests := []struct {
		name   string
		mutate func(w *config.Wallet)
	}{
		{"zero batch", func(w *config.Wallet) { w.BatchSize = 0 }},
		{"negative threshold", func(w *config.Wallet) { w.HardenedThreshold = -1 }},
		{"zero workers", func(w *config.Wallet) { w.Workers = 0 }},
		{"no chains", func(w *config.Wallet) { w.Chains = nil }},
		{"unknown derivation", func(w *config.Wallet) { w.Ed25519Derivation = "bip32" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := valid
			tt.mutate(&w)
			assert.Error(t, w.Validate())
		})
	}
}

func TestDotEnvLoad(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(envFile, []byte("WALLET_BATCH_SIZE=4\nWALLET_CHAINS=solana\n"), 0o600)
	require.NoError(t, err)

	loaded := map[string]string{}
	err = config.DotEnvLoad(envFile, func(k string, v string) error {
		loaded[k] = v
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "4", loaded["WALLET_BATCH_SIZE"])
	assert.Equal(t, "solana", loaded["WALLET_CHAINS"])
}

func TestDotEnvTryLoadMissingFile(t *testing.T) {
	assert.NotPanics(t, func() {
		config.DotEnvTryLoad(filepath.Join(t.TempDir(), "missing.env"), func(string, string) error {
			t.Fatal("must not be called")
			return nil
		})
	})
}
