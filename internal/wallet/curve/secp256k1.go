package curve

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Secp256k1 implements Curve for secp256k1. PublicKey returns the 64 byte
// X||Y encoding without the 0x04 prefix.
type Secp256k1 struct{}

var _ Curve = Secp256k1{}

func (Secp256k1) Name() string {
	return "secp256k1"
}

func (Secp256k1) PublicKey(priv []byte) ([]byte, error) {
	ecdsaPrivateKey, err := crypto.ToECDSA(priv)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}

	// drop the 0x04 uncompressed point prefix
	return crypto.FromECDSAPub(&ecdsaPrivateKey.PublicKey)[1:], nil
}

// CompressedPublicKey returns the 33 byte SEC1 compressed point for priv.
func (s Secp256k1) CompressedPublicKey(priv []byte) ([]byte, error) {
	k, err := s.scalar(priv)
	if err != nil {
		return nil, err
	}

	return secp256k1.NewPrivateKey(&k).PubKey().SerializeCompressed(), nil
}

// AddPrivateKeys returns (tweak + priv) mod n. The tweak must be below the
// curve order and the sum must not be zero.
func (s Secp256k1) AddPrivateKeys(tweak []byte, priv []byte) ([]byte, error) {
	if len(tweak) != PrivateKeyLength {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "tweak length %d", len(tweak))
	}

	var t secp256k1.ModNScalar
	if overflow := t.SetByteSlice(tweak); overflow {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "tweak is not below the curve order")
	}

	k, err := s.scalar(priv)
	if err != nil {
		return nil, err
	}

	sum := t.Add(&k)
	if sum.IsZero() {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "resulting key is zero")
	}

	b := sum.Bytes()
	return b[:], nil
}

// ValidPrivateKey reports whether priv is a scalar in [1, n-1].
func (s Secp256k1) ValidPrivateKey(priv []byte) bool {
	_, err := s.scalar(priv)
	return err == nil
}

func (Secp256k1) scalar(priv []byte) (secp256k1.ModNScalar, error) {
	var k secp256k1.ModNScalar
	if len(priv) != PrivateKeyLength {
		return k, errors.Wrapf(ErrInvalidPrivateKey, "length %d", len(priv))
	}

	if overflow := k.SetByteSlice(priv); overflow {
		return k, errors.Wrap(ErrInvalidPrivateKey, "not below the curve order")
	}

	if k.IsZero() {
		return k, errors.Wrap(ErrInvalidPrivateKey, "zero scalar")
	}

	return k, nil
}
