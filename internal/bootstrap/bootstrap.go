package bootstrap

import (
	"github.com/zetamarkets/pyth-history/pkg/config"
	"github.com/zetamarkets/pyth-history/pkg/interval"
	"github.com/zetamarkets/pyth-history/pkg/logger"
	"github.com/zetamarkets/pyth-history/pkg/redis"
)

// Bootstrap wires the candle service together.
type Bootstrap struct {
	Usecase    Usecase
	Logger     logger.Interface
	Repository Repository

	Redis redis.Client
}

// BootstrapConfig is the config for the bootstrap. Redis must already be connected.
type BootstrapConfig struct {
	Redis    redis.Client
	Logger   logger.Interface
	Store    config.StoreConfig
	Interval interval.Config
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) (Bootstrap, error) {
	b.Redis = config.Redis
	b.Logger = config.Logger

	if err := b.registerRepository(config.Store); err != nil {
		return Bootstrap{}, err
	}
	if err := b.registerUsecase(config.Interval); err != nil {
		return Bootstrap{}, err
	}

	return *b, nil
}
