package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/zetamarkets/pyth-history/pkg/errors"
	"github.com/zetamarkets/pyth-history/pkg/interval"
	"github.com/zetamarkets/pyth-history/pkg/logger"
	"github.com/zetamarkets/pyth-history/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig        `envPrefix:"APP_"`
	Log        logger.Config    `envPrefix:"LOG_"`
	Redis      redis.Config     `envPrefix:"REDIS_"`
	PriceKafka PriceKafkaConfig `envPrefix:"PRICE_KAFKA_"`
	Store      StoreConfig      `envPrefix:"STORE_"`
	Interval   interval.Config  `envPrefix:"INTERVAL_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"candle-service"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`
}

// PriceKafkaConfig represents the Kafka configuration of the price topic.
type PriceKafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"prices"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"candle-service"`
}

// StoreConfig represents the candle store configuration.
type StoreConfig struct {
	Symbols []string `env:"SYMBOLS" envSeparator:"," envDefault:"SOL/USD"`
	// OnDecodeError is "fail" or "skip".
	OnDecodeError string `env:"ON_DECODE_ERROR" envDefault:"fail"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.NewErrorDetailsWithCause("Failed to parse config", string(errors.InvalidConfigError), "env", err)
	}

	return cfg, nil
}
