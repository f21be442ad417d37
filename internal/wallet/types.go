package wallet

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Wallet is one derived key pair with its address.
type Wallet struct {
	Index      int    `json:"index" toml:"index"`
	Path       string `json:"path" toml:"path"`
	Address    string `json:"address" toml:"address"`
	PublicKey  string `json:"publicKey" toml:"public_key"`
	PrivateKey string `json:"privateKey" toml:"private_key"`
}

// Batch is the result of one generation run for a single chain.
// Wallets are ordered by ascending index.
type Batch struct {
	ID          uuid.UUID `json:"id" toml:"id"`
	Chain       string    `json:"chain" toml:"chain"`
	Scheme      string    `json:"scheme" toml:"scheme"`
	GeneratedAt time.Time `json:"generatedAt" toml:"generated_at"`
	Wallets     []Wallet  `json:"wallets" toml:"wallets"`
}

// Addresses returns the addresses of all wallets in index order.
func (b *Batch) Addresses() []string {
	out := make([]string, len(b.Wallets))
	for i, w := range b.Wallets {
		out[i] = w.Address
	}
	return out
}

var _ zerolog.LogObjectMarshaler = Wallet{}

// MarshalZerologObject logs the public parts of a wallet only.
func (w Wallet) MarshalZerologObject(e *zerolog.Event) {
	e.Int("index", w.Index).
		Str("path", w.Path).
		Str("address", w.Address)
}
