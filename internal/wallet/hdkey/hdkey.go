// Package hdkey implements hierarchical deterministic key derivation for the
// supported curves. A Scheme derives a master key from a seed and child keys
// from their parent; Derive walks a whole path.
package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/pkg/errors"
	"github/chapool/go-hdgen/internal/wallet/curve"
	"github/chapool/go-hdgen/internal/wallet/path"
)

const (
	keyLength = 32

	minSeedLength = 16
	maxSeedLength = 64
)

var (
	ErrDerivationFailure = errors.New("key derivation failed")
	ErrInvalidChildKey   = errors.Wrap(ErrDerivationFailure, "invalid child key")
)

// ExtendedKey is private key material plus the chain code needed to derive
// its children. Schemes without a chain code leave ChainCode nil.
type ExtendedKey struct {
	Key       []byte
	ChainCode []byte
}

// Clone returns a copy that shares no memory with k.
func (k ExtendedKey) Clone() ExtendedKey {
	return ExtendedKey{
		Key:       cloneBytes(k.Key),
		ChainCode: cloneBytes(k.ChainCode),
	}
}

// Zero overwrites the key material in place.
func (k ExtendedKey) Zero() {
	for i := range k.Key {
		k.Key[i] = 0
	}
	for i := range k.ChainCode {
		k.ChainCode[i] = 0
	}
}

// Scheme is a curve specific HD derivation algorithm.
type Scheme interface {
	Name() string
	Curve() curve.Curve
	Master(seed []byte) (ExtendedKey, error)
	Child(parent ExtendedKey, c path.Component) (ExtendedKey, error)
}

// Derive walks p starting at master and returns the key of the last component.
// master is not modified; intermediate keys are wiped once their child exists.
func Derive(s Scheme, master ExtendedKey, p path.Path) (ExtendedKey, error) {
	current := master.Clone()

	for i, c := range p {
		child, err := s.Child(current, c)
		current.Zero()
		if err != nil {
			return ExtendedKey{}, errors.Wrapf(err, "%s: component %d (%s)", s.Name(), i, c)
		}
		current = child
	}

	return current, nil
}

// DerivePath is Derive from the seed's master key.
func DerivePath(s Scheme, seed []byte, p path.Path) (ExtendedKey, error) {
	master, err := s.Master(seed)
	if err != nil {
		return ExtendedKey{}, err
	}
	defer master.Zero()

	return Derive(s, master, p)
}

// PublicKey returns the public key for the private key held in k.
func PublicKey(s Scheme, k ExtendedKey) ([]byte, error) {
	pub, err := s.Curve().PublicKey(k.Key)
	if err != nil {
		return nil, errors.Wrap(ErrDerivationFailure, err.Error())
	}
	return pub, nil
}

func hmacSHA512(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha512.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}

func ser32(i uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return b[:]
}

// split returns independent copies of the left and right halves of I.
func split(I []byte) ([]byte, []byte) {
	return cloneBytes(I[:keyLength]), cloneBytes(I[keyLength:])
}

func checkSeed(seed []byte) error {
	if len(seed) < minSeedLength || len(seed) > maxSeedLength {
		return errors.Wrapf(ErrDerivationFailure, "seed length %d not in [%d, %d]", len(seed), minSeedLength, maxSeedLength)
	}
	return nil
}

func checkKey(k ExtendedKey, withChainCode bool) error {
	if len(k.Key) != keyLength {
		return errors.Wrapf(ErrDerivationFailure, "parent key length %d", len(k.Key))
	}
	if withChainCode && len(k.ChainCode) != keyLength {
		return errors.Wrapf(ErrDerivationFailure, "parent chain code length %d", len(k.ChainCode))
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
