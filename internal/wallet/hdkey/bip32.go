package hdkey

import (
	"github.com/pkg/errors"
	"github/chapool/go-hdgen/internal/wallet/curve"
	"github/chapool/go-hdgen/internal/wallet/path"
)

var bip32SeedKey = []byte("Bitcoin seed")

// BIP32 is secp256k1 private key derivation (CKDpriv) as defined by BIP-0032.
type BIP32 struct {
	curve curve.Secp256k1
}

var _ Scheme = BIP32{}

func (BIP32) Name() string {
	return "bip32-secp256k1"
}

//nolint:ireturn // Scheme exposes the curve through the interface
func (b BIP32) Curve() curve.Curve {
	return b.curve
}

func (b BIP32) Master(seed []byte) (ExtendedKey, error) {
	if err := checkSeed(seed); err != nil {
		return ExtendedKey{}, err
	}

	key, chainCode := split(hmacSHA512(bip32SeedKey, seed))
	if !b.curve.ValidPrivateKey(key) {
		return ExtendedKey{}, errors.Wrap(ErrDerivationFailure, "master key is not a valid secp256k1 scalar")
	}

	return ExtendedKey{Key: key, ChainCode: chainCode}, nil
}

func (b BIP32) Child(parent ExtendedKey, c path.Component) (ExtendedKey, error) {
	if err := checkKey(parent, true); err != nil {
		return ExtendedKey{}, err
	}

	index := c.Effective()

	var data []byte
	if c.Hardened {
		data = make([]byte, 0, 1+keyLength+4)
		data = append(data, 0x00)
		data = append(data, parent.Key...)
	} else {
		pub, err := b.curve.CompressedPublicKey(parent.Key)
		if err != nil {
			return ExtendedKey{}, errors.Wrap(ErrDerivationFailure, err.Error())
		}
		data = pub
	}
	data = append(data, ser32(index)...)

	il, ir := split(hmacSHA512(parent.ChainCode, data))
	defer zeroBytes(il)

	key, err := b.curve.AddPrivateKeys(il, parent.Key)
	if err != nil {
		return ExtendedKey{}, errors.Wrapf(ErrInvalidChildKey, "index %d: %v", index, err)
	}

	return ExtendedKey{Key: key, ChainCode: ir}, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
