package bootstrap

import (
	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	candleInfra "github.com/zetamarkets/pyth-history/internal/infrastructure/redis/candle"
	"github.com/zetamarkets/pyth-history/internal/registry"
	"github.com/zetamarkets/pyth-history/pkg/config"
)

// Repository holds the per-symbol stores.
type Repository struct {
	Registry *registry.Registry
}

// registerRepository builds one Redis-backed store per configured symbol.
func (b *Bootstrap) registerRepository(storeConfig config.StoreConfig) error {
	policy, err := candleInfra.ParseDecodePolicy(storeConfig.OnDecodeError)
	if err != nil {
		return err
	}

	options := candleInfra.DefaultOptions()
	options.OnDecodeError = policy

	b.Repository.Registry, err = registry.New(storeConfig.Symbols, func(symbol string) v1.Store {
		return candleInfra.NewStore(symbol, b.Redis, b.Logger, options)
	})
	return err
}
