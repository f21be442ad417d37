package address

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
)

const (
	solanaKeyLength = 32
)

// Solana encodes ed25519 keys. The address is the base58 public key, so
// EncodePublicKey and Address return the same string.
type Solana struct{}

var _ Encoder = Solana{}

func (Solana) Name() string {
	return "solana"
}

func (Solana) EncodePrivateKey(priv []byte) (string, error) {
	if err := checkLength("private key", priv, solanaKeyLength); err != nil {
		return "", err
	}
	return hex.EncodeToString(priv), nil
}

func (s Solana) EncodePublicKey(pub []byte) (string, error) {
	return s.Address(pub)
}

func (Solana) Address(pub []byte) (string, error) {
	if err := checkLength("public key", pub, solanaKeyLength); err != nil {
		return "", err
	}
	return base58.Encode(pub), nil
}
