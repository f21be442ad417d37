package wallet

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/go-hdgen/internal/util"
	"github/chapool/go-hdgen/internal/wallet/address"
	"github/chapool/go-hdgen/internal/wallet/chain"
)

// VerifyAddress derives the wallet at index for chainName and reports whether
// its address equals expected. EVM addresses compare case-insensitively so
// checksummed input matches, Solana addresses compare exactly.
func (s *service) VerifyAddress(ctx context.Context, chainName string, mnemonic string, index int, expected string) (bool, error) {
	log := util.LogFromContext(ctx).With().Str("component", "address_verification").Logger()

	c, err := s.chains.GetChain(chainName)
	if err != nil {
		return false, &GenerationError{Chain: chainName, Err: err}
	}

	if index < 0 {
		return false, &GenerationError{Chain: c.Name, Err: errors.Errorf("invalid index %d", index)}
	}

	seedBytes, err := s.seed(mnemonic)
	if err != nil {
		return false, &GenerationError{Chain: c.Name, Err: err}
	}
	defer zero(seedBytes)

	master, err := c.Scheme.Master(seedBytes)
	if err != nil {
		return false, &GenerationError{Chain: c.Name, Err: errors.Wrap(err, "failed to create master key")}
	}
	defer master.Zero()

	w, err := deriveWallet(c, master, index, s.cfg.HardenedThreshold)
	if err != nil {
		return false, &GenerationError{Chain: c.Name, Err: err}
	}

	if !addressesEqual(c, w.Address, strings.TrimSpace(expected)) {
		log.Warn().
			Str("chain", c.Name).
			Str("path", w.Path).
			Str("derived", w.Address).
			Str("expected", expected).
			Msg("Address verification failed: addresses do not match")
		return false, nil
	}

	log.Info().Object("wallet", w).Msg("Address verification successful")
	return true, nil
}

func addressesEqual(c *chain.Chain, derived string, expected string) bool {
	if _, ok := c.Encoder.(address.EVM); ok {
		return strings.EqualFold(derived, expected)
	}
	return derived == expected
}
