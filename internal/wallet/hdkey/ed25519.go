package hdkey

import (
	"github/chapool/go-hdgen/internal/wallet/curve"
	"github/chapool/go-hdgen/internal/wallet/path"
)

var ed25519SeedKey = []byte("ed25519 seed")

// Ed25519Legacy reproduces the historical ed25519 recurrence of this
// generator: the parent key is both the HMAC key and the leading data, no
// chain code is carried, and every component is derived hardened.
// Outputs are not interchangeable with SLIP-10 wallets.
type Ed25519Legacy struct{}

var _ Scheme = Ed25519Legacy{}

func (Ed25519Legacy) Name() string {
	return "ed25519-legacy"
}

//nolint:ireturn // Scheme exposes the curve through the interface
func (Ed25519Legacy) Curve() curve.Curve {
	return curve.Ed25519{}
}

func (Ed25519Legacy) Master(seed []byte) (ExtendedKey, error) {
	if err := checkSeed(seed); err != nil {
		return ExtendedKey{}, err
	}

	key, rest := split(hmacSHA512(ed25519SeedKey, seed))
	zeroBytes(rest)

	return ExtendedKey{Key: key}, nil
}

func (Ed25519Legacy) Child(parent ExtendedKey, c path.Component) (ExtendedKey, error) {
	if err := checkKey(parent, false); err != nil {
		return ExtendedKey{}, err
	}

	index := c.Index | path.HardenedOffset

	key, rest := split(hmacSHA512(parent.Key, parent.Key, ser32(index)))
	zeroBytes(rest)

	return ExtendedKey{Key: key}, nil
}

// SLIP10 is ed25519 derivation as defined by SLIP-0010. ed25519 only has
// hardened derivation, so every component is derived hardened.
type SLIP10 struct{}

var _ Scheme = SLIP10{}

func (SLIP10) Name() string {
	return "slip10-ed25519"
}

//nolint:ireturn // Scheme exposes the curve through the interface
func (SLIP10) Curve() curve.Curve {
	return curve.Ed25519{}
}

func (SLIP10) Master(seed []byte) (ExtendedKey, error) {
	if err := checkSeed(seed); err != nil {
		return ExtendedKey{}, err
	}

	key, chainCode := split(hmacSHA512(ed25519SeedKey, seed))

	return ExtendedKey{Key: key, ChainCode: chainCode}, nil
}

func (SLIP10) Child(parent ExtendedKey, c path.Component) (ExtendedKey, error) {
	if err := checkKey(parent, true); err != nil {
		return ExtendedKey{}, err
	}

	index := c.Index | path.HardenedOffset

	key, chainCode := split(hmacSHA512(parent.ChainCode, []byte{0x00}, parent.Key, ser32(index)))

	return ExtendedKey{Key: key, ChainCode: chainCode}, nil
}
