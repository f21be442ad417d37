package address

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	evmPrivateKeyLength = 32

	// X||Y without the 0x04 prefix
	evmPublicKeyLength = 64
)

// EVM encodes secp256k1 keys the way Ethereum and other EVM chains do.
// Keys are lowercase hex without prefix, the address is 0x-prefixed
// lowercase hex of the last 20 bytes of Keccak-256(X||Y).
type EVM struct{}

var _ Encoder = EVM{}

func (EVM) Name() string {
	return "evm"
}

func (EVM) EncodePrivateKey(priv []byte) (string, error) {
	if err := checkLength("private key", priv, evmPrivateKeyLength); err != nil {
		return "", err
	}
	return hex.EncodeToString(priv), nil
}

func (EVM) EncodePublicKey(pub []byte) (string, error) {
	if err := checkLength("public key", pub, evmPublicKeyLength); err != nil {
		return "", err
	}
	return hex.EncodeToString(pub), nil
}

func (EVM) Address(pub []byte) (string, error) {
	if err := checkLength("public key", pub, evmPublicKeyLength); err != nil {
		return "", err
	}

	addr := common.BytesToAddress(crypto.Keccak256(pub)[12:])

	return hexutil.Encode(addr.Bytes()), nil
}
