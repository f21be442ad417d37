package address

import "github.com/pkg/errors"

var (
	ErrEncodingFailure = errors.New("encoding failed")
)

// Encoder renders derived key material in a chain's native string formats.
type Encoder interface {
	Name() string

	// EncodePrivateKey renders the 32 byte private key.
	EncodePrivateKey(priv []byte) (string, error)

	// EncodePublicKey renders the public key as produced by the chain's curve.
	EncodePublicKey(pub []byte) (string, error)

	// Address derives the account address from the public key.
	Address(pub []byte) (string, error)
}

// Encoded holds the string forms of one key pair.
type Encoded struct {
	PrivateKey string
	PublicKey  string
	Address    string
}
