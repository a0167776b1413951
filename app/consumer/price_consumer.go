package consumer

import (
	"context"

	"github.com/zetamarkets/pyth-history/internal/bootstrap"
	"github.com/zetamarkets/pyth-history/internal/consumer"
	v1 "github.com/zetamarkets/pyth-history/internal/domain/price-consumer/v1"
	"github.com/zetamarkets/pyth-history/pkg/config"
	"github.com/zetamarkets/pyth-history/pkg/errors"
	"github.com/zetamarkets/pyth-history/pkg/logger"
	"github.com/zetamarkets/pyth-history/pkg/redis"
)

// PriceConsumer is the consumer for the price topic.
type PriceConsumer struct {
	Consumer  v1.PriceConsumer
	Bootstrap bootstrap.Bootstrap
	Redis     redis.Client
	Config    config.Config

	logger logger.Interface
}

// InitPriceConsumer connects to Redis and wires the price consumer to the candle stores.
func InitPriceConsumer(ctx context.Context, config config.Config, log logger.Interface) (*PriceConsumer, error) {
	priceConsumer := &PriceConsumer{
		Config: config,
		logger: log,
	}

	if err := priceConsumer.initRedis(ctx); err != nil {
		return nil, err
	}

	b := &bootstrap.Bootstrap{}
	boot, err := b.Init(bootstrap.BootstrapConfig{
		Redis:    priceConsumer.Redis,
		Logger:   log,
		Store:    config.Store,
		Interval: config.Interval,
	})
	if err != nil {
		_ = priceConsumer.Redis.Disconnect(ctx)
		return nil, err
	}
	priceConsumer.Bootstrap = boot

	priceConsumer.Consumer = consumer.NewPriceConsumer(
		consumer.NewKafkaReader(config.PriceKafka),
		boot.Usecase.CandleUsecase,
		log,
		consumer.DefaultOptions(),
	)

	return priceConsumer, nil
}

func (s *PriceConsumer) initRedis(ctx context.Context) error {
	s.Redis = redis.NewClient(s.logger, &s.Config.Redis)
	if err := s.Redis.Connect(ctx); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "init_redis",
		})
		if !s.Redis.Reconnect(ctx) {
			return errors.TracerFromError(err)
		}
	}
	return nil
}

// Close stops the consumer and releases the Redis connection.
func (s *PriceConsumer) Close(ctx context.Context) error {
	consumerErr := s.Consumer.Stop()
	if err := s.Redis.Disconnect(ctx); err != nil {
		return err
	}
	return consumerErr
}
