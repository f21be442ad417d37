package hdkey_test

import (
	"bytes"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"testing"

	slip10 "github.com/anyproto/go-slip10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip32"
	"github/chapool/go-hdgen/internal/wallet/hdkey"
	"github/chapool/go-hdgen/internal/wallet/path"
)

const vectorSeed = "000102030405060708090a0b0c0d0e0f"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func testSeed() []byte {
	return bytes.Repeat([]byte{0x5a, 0xc3, 0x17, 0x09}, 16)
}

func pad32(b []byte) []byte {
	if len(b) >= 32 {
		return b
	}
	return append(make([]byte, 32-len(b)), b...)
}

func TestBIP32Vector1(t *testing.T) {
	seed := mustHex(t, vectorSeed)

	master, err := hdkey.BIP32{}.Master(seed)
	require.NoError(t, err)
	assert.Equal(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35", hex.EncodeToString(master.Key))
	assert.Equal(t, "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508", hex.EncodeToString(master.ChainCode))

	tests := []struct {
		path string
		key  string
	}{
		{"m/0'", "edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea"},
		{"m/0'/1", "3c6cb8d0f6a264c91ea8b5030fadaa8e538b020f0a387421a12de9319dc93368"},
		{"m/0'/1/2'", "cbce0d719ecf7431d88e6a89fa1483e02e35092af60c042b1df2ff59fa424dca"},
		{"m/0'/1/2'/2", "0f479245fb19a38a1954c5c7c0ebab2f9bdfd96a17563ef28a6a4b1a2a764ef4"},
		{"m/0'/1/2'/2/1000000000", "471b76e389e528d6de6d816857e012c5455051cad6660850e58372a6c3e6e7c8"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			k, err := hdkey.Derive(hdkey.BIP32{}, master, path.MustParse(tt.path))
			require.NoError(t, err)
			assert.Equal(t, tt.key, hex.EncodeToString(k.Key))
		})
	}
}

func TestBIP32MatchesGoBIP32(t *testing.T) {
	seed := testSeed()

	reference, err := bip32.NewMasterKey(seed)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		p := path.MustParse("m/44'/60'/0'/0").Child(path.Component{Index: uint32(i), Hardened: i < 3})

		k, err := hdkey.DerivePath(hdkey.BIP32{}, seed, p)
		require.NoError(t, err)

		expected := reference
		for _, index := range p.Indices() {
			expected, err = expected.NewChildKey(index)
			require.NoError(t, err)
		}

		assert.Equal(t, pad32(expected.Key), k.Key, p.String())
		assert.Equal(t, expected.ChainCode, k.ChainCode, p.String())
	}
}

func TestSLIP10Vector1(t *testing.T) {
	seed := mustHex(t, vectorSeed)

	master, err := hdkey.SLIP10{}.Master(seed)
	require.NoError(t, err)
	assert.Equal(t, "2b4be7f19ee27bbf30c667b642d5f4aa69fd169872f8fc3059c08ebae2eb19e7", hex.EncodeToString(master.Key))
	assert.Equal(t, "90046a93de5380a72b5e45010748567d5ea02bbf6522f979e05c0d8d8ca9fffb", hex.EncodeToString(master.ChainCode))

	child, err := hdkey.Derive(hdkey.SLIP10{}, master, path.MustParse("m/0'"))
	require.NoError(t, err)
	assert.Equal(t, "68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3", hex.EncodeToString(child.Key))
	assert.Equal(t, "8b59aa11380b624e81507a27fedda59fea6d0b779a778918a2fd3590e16e9c69", hex.EncodeToString(child.ChainCode))
}

func TestSLIP10MatchesGoSLIP10(t *testing.T) {
	seed := testSeed()

	for _, s := range []string{"m/44'/501'/0'/0'", "m/44'/501'/0'/0'/0'", "m/44'/501'/0'/0'/7'"} {
		t.Run(s, func(t *testing.T) {
			node, err := slip10.DeriveForPath(s, seed)
			require.NoError(t, err)
			pub, priv := node.Keypair()

			k, err := hdkey.DerivePath(hdkey.SLIP10{}, seed, path.MustParse(s))
			require.NoError(t, err)
			assert.Equal(t, []byte(priv)[:ed25519.SeedSize], k.Key)

			derivedPub, err := hdkey.PublicKey(hdkey.SLIP10{}, k)
			require.NoError(t, err)
			assert.Equal(t, []byte(pub), derivedPub)
		})
	}
}

// legacyReference spells out the historical recurrence step by step.
func legacyReference(seed []byte, indices []uint32) []byte {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	key := mac.Sum(nil)[:32]

	for _, index := range indices {
		var ib [4]byte
		binary.BigEndian.PutUint32(ib[:], index|0x80000000)

		mac := hmac.New(sha512.New, key)
		mac.Write(key)
		mac.Write(ib[:])
		key = mac.Sum(nil)[:32]
	}

	return key
}

func TestEd25519LegacyRecurrence(t *testing.T) {
	seed := testSeed()

	for _, s := range []string{"m", "m/44'", "m/44'/501'/0'/0/0'", "m/44'/501'/0'/0/9"} {
		p := path.MustParse(s)
		indices := make([]uint32, len(p))
		for i, c := range p {
			indices[i] = c.Index
		}

		k, err := hdkey.DerivePath(hdkey.Ed25519Legacy{}, seed, p)
		require.NoError(t, err)
		assert.Equal(t, legacyReference(seed, indices), k.Key, s)
		assert.Nil(t, k.ChainCode)
	}
}

func TestEd25519SchemesForceHardened(t *testing.T) {
	seed := testSeed()

	for _, scheme := range []hdkey.Scheme{hdkey.Ed25519Legacy{}, hdkey.SLIP10{}} {
		soft, err := hdkey.DerivePath(scheme, seed, path.MustParse("m/44'/501'/0'/0/5"))
		require.NoError(t, err)

		hard, err := hdkey.DerivePath(scheme, seed, path.MustParse("m/44'/501'/0'/0'/5'"))
		require.NoError(t, err)

		assert.Equal(t, hard.Key, soft.Key, scheme.Name())
	}
}

func TestEd25519LegacyDiffersFromSLIP10(t *testing.T) {
	seed := testSeed()
	p := path.MustParse("m/44'/501'/0'/0/0'")

	legacy, err := hdkey.DerivePath(hdkey.Ed25519Legacy{}, seed, p)
	require.NoError(t, err)
	standard, err := hdkey.DerivePath(hdkey.SLIP10{}, seed, p)
	require.NoError(t, err)

	assert.NotEqual(t, legacy.Key, standard.Key)
}

func TestDeriveDoesNotTouchMaster(t *testing.T) {
	schemes := []hdkey.Scheme{hdkey.BIP32{}, hdkey.Ed25519Legacy{}, hdkey.SLIP10{}}

	for _, scheme := range schemes {
		t.Run(scheme.Name(), func(t *testing.T) {
			master, err := scheme.Master(testSeed())
			require.NoError(t, err)
			snapshot := master.Clone()

			first, err := hdkey.Derive(scheme, master, path.MustParse("m/44'/0'/1"))
			require.NoError(t, err)
			second, err := hdkey.Derive(scheme, master, path.MustParse("m/44'/0'/1"))
			require.NoError(t, err)

			assert.Equal(t, snapshot, master)
			assert.Equal(t, first, second)

			first.Zero()
			assert.NotEqual(t, first.Key, second.Key, "results must not share buffers")
		})
	}
}

func TestDeriveEmptyPathReturnsMasterCopy(t *testing.T) {
	master, err := hdkey.BIP32{}.Master(testSeed())
	require.NoError(t, err)

	k, err := hdkey.Derive(hdkey.BIP32{}, master, path.Path{})
	require.NoError(t, err)
	assert.Equal(t, master, k)

	k.Zero()
	assert.NotEqual(t, master.Key, k.Key)
}

func TestMasterRejectsBadSeed(t *testing.T) {
	for _, scheme := range []hdkey.Scheme{hdkey.BIP32{}, hdkey.Ed25519Legacy{}, hdkey.SLIP10{}} {
		_, err := scheme.Master(nil)
		assert.ErrorIs(t, err, hdkey.ErrDerivationFailure, scheme.Name())

		_, err = scheme.Master(make([]byte, 65))
		assert.ErrorIs(t, err, hdkey.ErrDerivationFailure, scheme.Name())
	}
}

func TestChildRejectsMalformedParent(t *testing.T) {
	c := path.Component{Index: 1, Hardened: true}

	_, err := hdkey.BIP32{}.Child(hdkey.ExtendedKey{Key: make([]byte, 32)}, c)
	assert.ErrorIs(t, err, hdkey.ErrDerivationFailure, "missing chain code")

	_, err = hdkey.BIP32{}.Child(hdkey.ExtendedKey{Key: make([]byte, 32), ChainCode: make([]byte, 32)}, path.Component{Index: 1})
	assert.ErrorIs(t, err, hdkey.ErrDerivationFailure, "zero parent key has no public key")

	_, err = hdkey.Ed25519Legacy{}.Child(hdkey.ExtendedKey{Key: make([]byte, 31)}, c)
	assert.ErrorIs(t, err, hdkey.ErrDerivationFailure)

	_, err = hdkey.SLIP10{}.Child(hdkey.ExtendedKey{Key: make([]byte, 32)}, c)
	assert.ErrorIs(t, err, hdkey.ErrDerivationFailure)
}

func TestBIP32InvalidChildKey(t *testing.T) {
	// a zero parent key plus a hardened step: IL is valid, but the parent is
	// rejected as a scalar before addition
	_, err := hdkey.BIP32{}.Child(hdkey.ExtendedKey{Key: make([]byte, 32), ChainCode: make([]byte, 32)}, path.Component{Index: 0, Hardened: true})
	assert.ErrorIs(t, err, hdkey.ErrInvalidChildKey)
	assert.ErrorIs(t, err, hdkey.ErrDerivationFailure)
}

func TestPublicKeyWrapsCurveErrors(t *testing.T) {
	_, err := hdkey.PublicKey(hdkey.BIP32{}, hdkey.ExtendedKey{Key: make([]byte, 32)})
	assert.ErrorIs(t, err, hdkey.ErrDerivationFailure)
}

func TestSchemeCurves(t *testing.T) {
	assert.Equal(t, "secp256k1", hdkey.BIP32{}.Curve().Name())
	assert.Equal(t, "ed25519", hdkey.Ed25519Legacy{}.Curve().Name())
	assert.Equal(t, "ed25519", hdkey.SLIP10{}.Curve().Name())
}
