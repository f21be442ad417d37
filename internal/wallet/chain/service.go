package chain

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/go-hdgen/internal/config"
	"github/chapool/go-hdgen/internal/wallet/address"
	"github/chapool/go-hdgen/internal/wallet/hdkey"
)

// service 实现 Service 接口
type service struct {
	chains map[string]*Chain
}

// NewService 创建链配置服务，ed25519Derivation 选择 Solana 的派生算法
//
//nolint:ireturn
func NewService(ed25519Derivation string) (Service, error) {
	solanaScheme, err := ed25519Scheme(ed25519Derivation)
	if err != nil {
		return nil, err
	}

	chains := []*Chain{
		{
			Name:     Ethereum,
			Symbol:   "ETH",
			CoinType: 60,
			BasePath: "m/44'/60'/0'/0",
			Scheme:   hdkey.BIP32{},
			Encoder:  address.EVM{},
		},
		{
			Name:     Solana,
			Symbol:   "SOL",
			CoinType: 501,
			BasePath: "m/44'/501'/0'/0",
			Scheme:   solanaScheme,
			Encoder:  address.Solana{},
		},
	}

	s := &service{chains: make(map[string]*Chain, len(chains))}
	for _, c := range chains {
		s.chains[c.Name] = c
	}

	return s, nil
}

//nolint:ireturn
func ed25519Scheme(name string) (hdkey.Scheme, error) {
	switch name {
	case "", config.Ed25519DerivationLegacy:
		return hdkey.Ed25519Legacy{}, nil
	case config.Ed25519DerivationSLIP10:
		return hdkey.SLIP10{}, nil
	default:
		return nil, errors.Errorf("unknown ed25519 derivation %q", name)
	}
}

// GetChain 根据名称查询链配置（忽略大小写）
func (s *service) GetChain(name string) (*Chain, error) {
	c, ok := s.chains[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownChain, "%q", name)
	}

	return c, nil
}

// ListChains 查询所有链配置
func (s *service) ListChains() []*Chain {
	result := make([]*Chain, 0, len(s.chains))
	for _, c := range s.chains {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// GetActiveChains 查询启用的链配置，"all" 表示全部
func (s *service) GetActiveChains(names []string) ([]*Chain, error) {
	if len(names) == 1 && strings.EqualFold(strings.TrimSpace(names[0]), "all") {
		return s.ListChains(), nil
	}

	result := make([]*Chain, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		c, err := s.GetChain(name)
		if err != nil {
			return nil, err
		}

		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true

		result = append(result, c)
	}

	return result, nil
}
