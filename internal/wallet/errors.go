package wallet

import "fmt"

// GenerationError reports a failed batch for a chain. Err keeps the
// underlying cause, which matches the sentinel errors of the path, seed,
// hdkey, address and chain packages with errors.Is.
type GenerationError struct {
	Chain string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s wallets: %v", e.Chain, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *GenerationError) Cause() error {
	return e.Err
}
