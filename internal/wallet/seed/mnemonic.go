package seed

import (
	"crypto/sha512"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	pbkdf2Iterations = 2048 // BIP39 standard iterations
	saltPrefix       = "mnemonic"
)

// FromMnemonic converts a mnemonic into a 64 byte seed.
// BIP39: seed = PBKDF2(NFKD(mnemonic), "mnemonic" + NFKD(passphrase), 2048, 64, SHA512)
// The words themselves are not checked against the wordlist, see ValidateMnemonic.
func FromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	if strings.TrimSpace(mnemonic) == "" {
		return nil, errors.Wrap(ErrInvalidSeed, "mnemonic is empty")
	}

	return pbkdf2.Key(
		[]byte(norm.NFKD.String(mnemonic)),
		[]byte(saltPrefix+norm.NFKD.String(passphrase)),
		pbkdf2Iterations,
		Length,
		sha512.New,
	), nil
}

// ValidateMnemonic checks word count, wordlist membership and checksum.
func ValidateMnemonic(mnemonic string) error {
	words := strings.Fields(mnemonic)
	if len(words) == 0 {
		return errors.Wrap(ErrInvalidMnemonic, "mnemonic is empty")
	}

	if !validWordCount(len(words)) {
		return errors.Wrapf(ErrInvalidMnemonic, "unsupported word count %d", len(words))
	}

	if !bip39.IsMnemonicValid(strings.Join(words, " ")) {
		return errors.Wrap(ErrInvalidMnemonic, "unknown word or checksum mismatch")
	}

	return nil
}

// NewMnemonic returns a fresh random English BIP39 mnemonic.
func NewMnemonic(words int) (string, error) {
	if !validWordCount(words) {
		return "", errors.Errorf("unsupported word count %d", words)
	}

	// every 3 words encode 32 bits of entropy plus 1 checksum bit
	entropy, err := bip39.NewEntropy(words / 3 * 32)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}
	defer zero(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode mnemonic")
	}

	return mnemonic, nil
}

func validWordCount(n int) bool {
	return n >= 12 && n <= 24 && n%3 == 0
}
