package generate

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-hdgen/internal/wallet"
)

const sampleMnemonic = "moon call borrow staff hood catch else egg famous surround original below resist observe enact"

func executeGenerate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := New()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, err := executeGenerate(t, "--mnemonic", sampleMnemonic, "--chain", "all", "--output", "json")
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Batches, 2)

	for _, b := range doc.Batches {
		assert.Len(t, b.Wallets, 10, b.Chain)
		for _, w := range b.Wallets {
			assert.NotEmpty(t, w.PrivateKey)
			assert.NotEmpty(t, w.PublicKey)
			assert.NotEmpty(t, w.Address)
		}
	}
}

func TestGenerateTOMLWithoutPrivateKeys(t *testing.T) {
	out, err := executeGenerate(t,
		"--mnemonic", sampleMnemonic,
		"--chain", "solana",
		"--output", "toml",
		"--count", "3",
		"--hide-private-keys",
	)
	require.NoError(t, err)

	var doc document
	_, err = toml.Decode(out, &doc)
	require.NoError(t, err)
	require.Len(t, doc.Batches, 1)

	b := doc.Batches[0]
	assert.Equal(t, "solana", b.Chain)
	require.Len(t, b.Wallets, 3)
	for _, w := range b.Wallets {
		assert.Empty(t, w.PrivateKey)
		assert.Equal(t, w.Address, w.PublicKey)
	}
}

func TestGenerateTable(t *testing.T) {
	out, err := executeGenerate(t, "--mnemonic", sampleMnemonic, "--chain", "ethereum")
	require.NoError(t, err)

	assert.Contains(t, out, "ethereum (bip32-secp256k1)")
	assert.Contains(t, out, "m/44'/60'/0'/0/0'")
	assert.Contains(t, out, "m/44'/60'/0'/0/9")
	assert.NotContains(t, out, "solana")
}

func TestGenerateStdinMnemonic(t *testing.T) {
	cmd := New()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(sampleMnemonic + "\n"))
	cmd.SetArgs([]string{"--mnemonic", "-", "--chain", "ethereum", "--output", "json"})
	require.NoError(t, cmd.ExecuteContext(t.Context()))

	viaFlag, err := executeGenerate(t, "--mnemonic", sampleMnemonic, "--chain", "ethereum", "--output", "json")
	require.NoError(t, err)

	var a, b document
	require.NoError(t, json.Unmarshal(out.Bytes(), &a))
	require.NoError(t, json.Unmarshal([]byte(viaFlag), &b))
	assert.Equal(t, a.Batches[0].Wallets, b.Batches[0].Wallets)
}

func TestGenerateErrors(t *testing.T) {
	_, err := executeGenerate(t, "--mnemonic", sampleMnemonic, "--output", "yaml")
	require.Error(t, err)

	_, err = executeGenerate(t, "--mnemonic", sampleMnemonic, "--chain", "bitcoin")
	require.Error(t, err)

	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("  \n"))
	cmd.SetArgs([]string{"--mnemonic", "-", "--chain", "ethereum"})

	err = cmd.ExecuteContext(t.Context())
	var genErr *wallet.GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestRenderUnknownFormat(t *testing.T) {
	assert.Error(t, render(&bytes.Buffer{}, "xml", nil))
	assert.False(t, isFormat("xml"))
	assert.True(t, isFormat(formatTOML))
}
