package address

import (
	"github.com/pkg/errors"
)

// Encode renders a key pair and its address with enc. None of the returned
// strings is empty on success.
func Encode(enc Encoder, priv []byte, pub []byte) (Encoded, error) {
	privateKey, err := enc.EncodePrivateKey(priv)
	if err != nil {
		return Encoded{}, errors.Wrapf(err, "%s: failed to encode private key", enc.Name())
	}

	publicKey, err := enc.EncodePublicKey(pub)
	if err != nil {
		return Encoded{}, errors.Wrapf(err, "%s: failed to encode public key", enc.Name())
	}

	addr, err := enc.Address(pub)
	if err != nil {
		return Encoded{}, errors.Wrapf(err, "%s: failed to derive address", enc.Name())
	}

	if privateKey == "" || publicKey == "" || addr == "" {
		return Encoded{}, errors.Wrapf(ErrEncodingFailure, "%s: empty encoding", enc.Name())
	}

	return Encoded{
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Address:    addr,
	}, nil
}

func checkLength(what string, b []byte, expected int) error {
	if len(b) != expected {
		return errors.Wrapf(ErrEncodingFailure, "%s has length %d, expected %d", what, len(b), expected)
	}
	return nil
}
