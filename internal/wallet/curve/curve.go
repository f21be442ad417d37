// Package curve wraps the elliptic curve primitives the HD derivers and
// address encoders need behind a small interface.
package curve

import "github.com/pkg/errors"

const PrivateKeyLength = 32

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// Curve turns private key material into the public key encoding a chain's
// address format is built from.
type Curve interface {
	Name() string
	PublicKey(priv []byte) ([]byte, error)
}
