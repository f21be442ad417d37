package seed

import "github.com/pkg/errors"

const (
	// Length is the size of a BIP39 seed in bytes.
	Length = 64
)

var (
	ErrInvalidSeed     = errors.New("invalid seed")
	ErrInvalidMnemonic = errors.Wrap(ErrInvalidSeed, "invalid mnemonic")
)

// Manager provides seed management functionality
type Manager interface {
	// Initialize converts the mnemonic into the seed kept in memory
	Initialize(mnemonic string, passphrase string) error

	// GetSeed gets a copy of the seed, nil if not initialized
	GetSeed() []byte

	// IsInitialized checks if seed is initialized
	IsInitialized() bool

	// Clear clears the seed from memory
	Clear()
}
