package wallet

import (
	"context"

	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/chapool/go-hdgen/internal/config"
	"github/chapool/go-hdgen/internal/metrics"
	"github/chapool/go-hdgen/internal/util"
	"github/chapool/go-hdgen/internal/wallet/address"
	"github/chapool/go-hdgen/internal/wallet/chain"
	"github/chapool/go-hdgen/internal/wallet/hdkey"
	"github/chapool/go-hdgen/internal/wallet/path"
	"github/chapool/go-hdgen/internal/wallet/seed"
	"golang.org/x/sync/errgroup"
)

// Service provides wallet batch generation
type Service interface {
	// GenerateWallets derives a full batch for one chain. Either every wallet
	// of the batch is returned or a *GenerationError.
	GenerateWallets(ctx context.Context, chainName string, mnemonic string) (*Batch, error)

	// GenerateAll runs GenerateWallets for every configured chain, in order.
	// It stops at the first chain that fails.
	GenerateAll(ctx context.Context, mnemonic string) ([]*Batch, error)

	// VerifyAddress derives the address at index and compares it with expected
	VerifyAddress(ctx context.Context, chainName string, mnemonic string, index int, expected string) (bool, error)
}

type service struct {
	cfg     config.Wallet
	chains  chain.Service
	metrics *metrics.Service
	clock   time2.Clock
}

// NewService creates a new WalletService. metrics may be nil.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(cfg config.Wallet, chains chain.Service, metrics *metrics.Service, clock time2.Clock) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if chains == nil {
		return nil, errors.New("chain service is required")
	}

	if clock == nil {
		clock = time2.DefaultClock
	}

	return &service{
		cfg:     cfg,
		chains:  chains,
		metrics: metrics,
		clock:   clock,
	}, nil
}

// GenerateWallets derives cfg.BatchSize wallets for chainName
func (s *service) GenerateWallets(ctx context.Context, chainName string, mnemonic string) (*Batch, error) {
	c, err := s.chains.GetChain(chainName)
	if err != nil {
		return nil, s.fail(ctx, chainName, err)
	}

	seedBytes, err := s.seed(mnemonic)
	if err != nil {
		return nil, s.fail(ctx, c.Name, err)
	}
	defer zero(seedBytes)

	return s.generateBatch(ctx, c, seedBytes)
}

// GenerateAll derives a batch for every chain in cfg.Chains
func (s *service) GenerateAll(ctx context.Context, mnemonic string) ([]*Batch, error) {
	chains, err := s.chains.GetActiveChains(s.cfg.Chains)
	if err != nil {
		return nil, s.fail(ctx, "all", err)
	}

	seedBytes, err := s.seed(mnemonic)
	if err != nil {
		name := "all"
		if len(chains) > 0 {
			name = chains[0].Name
		}
		return nil, s.fail(ctx, name, err)
	}
	defer zero(seedBytes)

	batches := make([]*Batch, 0, len(chains))
	for _, c := range chains {
		batch, err := s.generateBatch(ctx, c, seedBytes)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, nil
}

// seed converts the mnemonic into a seed owned by the caller
func (s *service) seed(mnemonic string) ([]byte, error) {
	seedManager := seed.NewManager(seed.WithStrictMnemonic(s.cfg.StrictMnemonic))
	defer seedManager.Clear()

	if err := seedManager.Initialize(mnemonic, s.cfg.Passphrase); err != nil {
		return nil, errors.Wrap(err, "failed to initialize seed")
	}

	return seedManager.GetSeed(), nil
}

func (s *service) generateBatch(ctx context.Context, c *chain.Chain, seedBytes []byte) (*Batch, error) {
	batchID := uuid.New()
	log := util.LogFromContext(ctx).With().
		Str("chain", c.Name).
		Str("batch_id", batchID.String()).
		Logger()
	ctx = log.WithContext(ctx)

	start := s.clock.Now()

	master, err := c.Scheme.Master(seedBytes)
	if err != nil {
		return nil, s.fail(ctx, c.Name, errors.Wrap(err, "failed to create master key"))
	}
	defer master.Zero()

	wallets := make([]Wallet, s.cfg.BatchSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i := range wallets {
		// every worker owns its copy of the master key
		own := master.Clone()

		g.Go(func() error {
			defer own.Zero()

			if err := gctx.Err(); err != nil {
				return errors.Wrap(err, "generation canceled")
			}

			w, err := deriveWallet(c, own, i, s.cfg.HardenedThreshold)
			if err != nil {
				return err
			}

			wallets[i] = w
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, c.Name, err)
	}

	took := s.clock.Now().Sub(start)
	s.metrics.ObserveBatch(c.Name, len(wallets), took)

	log.Info().
		Int("count", len(wallets)).
		Str("scheme", c.Scheme.Name()).
		Dur("took", took).
		Msg("Wallets generated successfully")

	return &Batch{
		ID:          batchID,
		Chain:       c.Name,
		Scheme:      c.Scheme.Name(),
		GeneratedAt: start,
		Wallets:     wallets,
	}, nil
}

// deriveWallet walks the path of one index from master and encodes the result
func deriveWallet(c *chain.Chain, master hdkey.ExtendedKey, index int, hardenedThreshold int) (Wallet, error) {
	derivationPath := c.PathFor(index, hardenedThreshold)

	p, err := path.Parse(derivationPath)
	if err != nil {
		return Wallet{}, errors.Wrap(err, "failed to parse derivation path")
	}

	key, err := hdkey.Derive(c.Scheme, master, p)
	if err != nil {
		return Wallet{}, errors.Wrapf(err, "failed to derive key at %s", derivationPath)
	}
	defer key.Zero()

	pub, err := hdkey.PublicKey(c.Scheme, key)
	if err != nil {
		return Wallet{}, errors.Wrapf(err, "failed to derive public key at %s", derivationPath)
	}

	encoded, err := address.Encode(c.Encoder, key.Key, pub)
	if err != nil {
		return Wallet{}, errors.Wrapf(err, "failed to encode wallet at %s", derivationPath)
	}

	return Wallet{
		Index:      index,
		Path:       derivationPath,
		Address:    encoded.Address,
		PublicKey:  encoded.PublicKey,
		PrivateKey: encoded.PrivateKey,
	}, nil
}

// fail logs and counts a failed batch and wraps err into a *GenerationError
func (s *service) fail(ctx context.Context, chainName string, err error) error {
	s.metrics.ObserveFailure(chainName)

	log := util.LogFromContext(ctx)
	log.Error().Err(err).Str("chain", chainName).Msg("Wallet generation failed")

	return &GenerationError{Chain: chainName, Err: err}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
