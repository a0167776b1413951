package consumer

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"math"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/zetamarkets/pyth-history/internal/domain/candle"
	v1 "github.com/zetamarkets/pyth-history/internal/domain/price-consumer/v1"
	"github.com/zetamarkets/pyth-history/pkg/config"
	"github.com/zetamarkets/pyth-history/pkg/errors"
	"github.com/zetamarkets/pyth-history/pkg/logger"
	"github.com/zetamarkets/pyth-history/pkg/util"
)

const requestIDHeader = "x-request-id"

// Options tunes how a PriceConsumer retries failed writes.
type Options struct {
	MaxRetries   int
	RetryBackoff time.Duration
}

// DefaultOptions returns the options used by the service.
func DefaultOptions() Options {
	return Options{
		MaxRetries:   3,
		RetryBackoff: 200 * time.Millisecond,
	}
}

// PriceConsumer is the consumer for the price topic. A message is committed
// only once its tick is stored, so delivery into the store is at-least-once.
type PriceConsumer struct {
	reader  Reader
	logger  logger.Interface
	options Options

	candleUsecase candle.Usecase
}

var _ v1.PriceConsumer = (*PriceConsumer)(nil)

// NewKafkaReader creates the reader for the price topic. Offsets are committed explicitly.
func NewKafkaReader(config config.PriceKafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.ConsumerGroup,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
}

// NewPriceConsumer creates a new PriceConsumer.
func NewPriceConsumer(reader Reader, candleUsecase candle.Usecase, logger logger.Interface, options Options) *PriceConsumer {
	return &PriceConsumer{
		reader:        reader,
		logger:        logger,
		options:       options,
		candleUsecase: candleUsecase,
	}
}

// Start consumes until ctx is done or the reader is closed. It returns an error
// only when a tick still cannot be stored after every retry; the message is then
// left uncommitted for redelivery.
func (c *PriceConsumer) Start(ctx context.Context) error {
	c.logger.InfoContext(ctx, "starting price consumer", logger.Field{
		Key:   "action",
		Value: "price_consumer_start",
	})

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || stderrors.Is(err, io.EOF) {
				c.logger.InfoContext(ctx, "price consumer stopped", logger.Field{
					Key:   "action",
					Value: "price_consumer_stop",
				})
				return nil
			}
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "fetch_message",
			})
			if !sleep(ctx, c.options.RetryBackoff) {
				return nil
			}
			continue
		}

		msgCtx := util.WithRequestID(ctx, headerValue(msg, requestIDHeader))
		if err := c.handleMessage(msgCtx, msg); err != nil {
			return err
		}

		if err := c.reader.CommitMessages(msgCtx, msg); err != nil {
			c.logger.ErrorContext(msgCtx, err, logger.Field{
				Key:   "action",
				Value: "commit_message",
			})
		}
	}
}

// Stop stops the PriceConsumer.
func (c *PriceConsumer) Stop() error {
	c.logger.InfoContext(context.Background(), "stopping price consumer", logger.Field{
		Key:   "action",
		Value: "price_consumer_stop",
	})
	return c.reader.Close()
}

// handleMessage stores the event carried by msg. Events that can never be
// stored are logged and dropped; a nil return means msg may be committed.
func (c *PriceConsumer) handleMessage(ctx context.Context, msg kafka.Message) error {
	var event v1.PriceEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "unmarshal_price",
		}, logger.Field{
			Key:   "offset",
			Value: msg.Offset,
		})
		return nil
	}

	if err := event.Validate(); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: "validate_price",
		}, logger.Field{
			Key:   "offset",
			Value: msg.Offset,
		})
		return nil
	}

	err := c.withRetry(ctx, "store_price", func() error {
		return c.candleUsecase.StorePrice(ctx, event.Symbol, event.ToTick())
	})
	if err != nil {
		if errors.ErrorCodeEquals(err, errors.UnknownSymbolError) {
			c.logger.WarnContext(ctx, "dropping price for unknown symbol", logger.Field{
				Key:   "symbol",
				Value: event.Symbol,
			})
			return nil
		}
		return err
	}

	// Steps retry independently; a failed later step must not append the tick again.
	err = c.withRetry(ctx, "advance_last_price", func() error {
		return c.candleUsecase.AdvanceLastPrice(ctx, event.Symbol, event.Timestamp)
	})
	if err != nil {
		return err
	}

	if len(event.Raw) == 0 {
		return nil
	}
	return c.withRetry(ctx, "store_snapshot", func() error {
		return c.candleUsecase.StoreSnapshot(ctx, event.Symbol, event.Timestamp, event.Raw)
	})
}

// withRetry runs fn up to MaxRetries+1 times with exponential backoff.
// Unknown symbols are not retried.
func (c *PriceConsumer) withRetry(ctx context.Context, action string, fn func() error) error {
	var err error
	for attempt := 0; attempt <= c.options.MaxRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if errors.ErrorCodeEquals(err, errors.UnknownSymbolError) {
			return err
		}

		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "action",
			Value: action,
		}, logger.Field{
			Key:   "attempt",
			Value: attempt + 1,
		})

		if attempt == c.options.MaxRetries {
			break
		}
		backoff := c.options.RetryBackoff * time.Duration(math.Pow(2, float64(attempt)))
		if !sleep(ctx, backoff) {
			return errors.TracerFromError(ctx.Err())
		}
	}
	return errors.TracerFromError(err)
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
