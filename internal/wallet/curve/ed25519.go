package curve

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"
)

// Ed25519 implements Curve for ed25519. The private key is the 32 byte
// RFC 8032 seed, the public key the 32 byte compressed point.
type Ed25519 struct{}

var _ Curve = Ed25519{}

func (Ed25519) Name() string {
	return "ed25519"
}

func (Ed25519) PublicKey(priv []byte) ([]byte, error) {
	if len(priv) != PrivateKeyLength {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "length %d", len(priv))
	}

	h := sha512.Sum512(priv)
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}

	return new(edwards25519.Point).ScalarBaseMult(s).Bytes(), nil
}
