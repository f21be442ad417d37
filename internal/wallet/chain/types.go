package chain

import (
	"strconv"

	"github.com/pkg/errors"
	"github/chapool/go-hdgen/internal/wallet/address"
	"github/chapool/go-hdgen/internal/wallet/hdkey"
)

const (
	Ethereum = "ethereum"
	Solana   = "solana"
)

var (
	ErrUnknownChain = errors.New("unknown chain")
)

// Chain 描述一条链的派生方式：派生算法、地址编码与 BIP44 路径前缀
type Chain struct {
	Name     string
	Symbol   string
	CoinType uint32

	// BasePath 是去掉最后一级索引的路径，例如 m/44'/60'/0'/0
	BasePath string

	Scheme  hdkey.Scheme
	Encoder address.Encoder
}

// PathFor 返回第 index 个地址的派生路径；index < hardenedThreshold 时最后一级为硬化派生
func (c *Chain) PathFor(index int, hardenedThreshold int) string {
	p := c.BasePath + "/" + strconv.Itoa(index)
	if index < hardenedThreshold {
		p += "'"
	}
	return p
}

// Service 定义链配置服务接口
type Service interface {
	// GetChain 根据名称查询链配置
	GetChain(name string) (*Chain, error)

	// ListChains 查询所有链配置（按名称排序）
	ListChains() []*Chain

	// GetActiveChains 按给定顺序返回启用的链配置
	GetActiveChains(names []string) ([]*Chain, error)
}
