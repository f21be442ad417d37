package seed

import (
	"sync"
)

// manager implements seed management with thread-safe access
type manager struct {
	seed        []byte
	mu          sync.RWMutex
	initialized bool
	strict      bool
}

type Option func(*manager)

// WithStrictMnemonic makes Initialize reject mnemonics that are not valid
// BIP39 sentences (unknown words, bad word count, checksum mismatch).
func WithStrictMnemonic(strict bool) Option {
	return func(m *manager) {
		m.strict = strict
	}
}

// NewManager creates a new SeedManager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager(opts ...Option) Manager {
	m := &manager{
		seed:        nil,
		initialized: false,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Initialize initializes the seed manager with mnemonic and passphrase.
// A failed call leaves a previously initialized seed untouched.
func (m *manager) Initialize(mnemonic string, passphrase string) error {
	if m.strict {
		if err := ValidateMnemonic(mnemonic); err != nil {
			return err
		}
	}

	seed, err := FromMnemonic(mnemonic, passphrase)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	zero(m.seed)
	m.seed = seed
	m.initialized = true

	return nil
}

// GetSeed gets the seed (returns a copy to prevent external modification)
func (m *manager) GetSeed() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized || m.seed == nil {
		return nil
	}

	// Return a copy to prevent external modification
	seedCopy := make([]byte, len(m.seed))
	copy(seedCopy, m.seed)
	return seedCopy
}

// IsInitialized checks if seed is initialized
func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Clear clears the seed from memory
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	zero(m.seed)
	m.seed = nil
	m.initialized = false
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
