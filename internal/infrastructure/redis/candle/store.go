package candle

import (
	"cmp"
	"context"
	"encoding/base64"
	"slices"
	"strconv"

	"github.com/zetamarkets/pyth-history/internal/aggregator"
	"github.com/zetamarkets/pyth-history/internal/codec"
	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	"github.com/zetamarkets/pyth-history/internal/keyspace"
	"github.com/zetamarkets/pyth-history/pkg/errors"
	"github.com/zetamarkets/pyth-history/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Store keeps the ticks of one symbol in day-bucketed Redis lists and
// aggregates them into candles on read. It holds no mutable state and is
// safe for concurrent use.
type Store struct {
	symbol  string
	backend Backend
	logger  logger.Interface
	options Options
}

var _ v1.Store = (*Store)(nil)

// NewStore creates a Store for symbol. A zero OnDecodeError falls back to DecodeFail.
func NewStore(symbol string, backend Backend, logger logger.Interface, options Options) *Store {
	if options.OnDecodeError == "" {
		options.OnDecodeError = DecodeFail
	}
	return &Store{
		symbol:  symbol,
		backend: backend,
		logger:  logger,
		options: options,
	}
}

// Symbol returns the symbol the store is bound to.
func (s *Store) Symbol() string {
	return s.symbol
}

// StorePrice appends tick to the bucket of its UTC day.
// Nothing is deduplicated: storing the same tick twice yields two entries.
func (s *Store) StorePrice(ctx context.Context, tick v1.Tick) error {
	record, err := codec.EncodeTick(tick)
	if err != nil {
		s.logger.ErrorContext(ctx, err, s.fields("store price", "")...)
		return errors.TracerFromError(err)
	}

	key := keyspace.DayKey(s.symbol, tick.Timestamp)
	if _, err := s.backend.RPush(ctx, key, record); err != nil {
		return s.backendError(ctx, "store price", key, err)
	}

	s.logger.DebugContext(ctx, "Tick stored", s.fields("store price", key)...)
	return nil
}

// LoadCandles returns the non-empty candles of width resolution in [from, to).
// Every day bucket the range touches is read concurrently; if any read fails
// the whole call fails.
func (s *Store) LoadCandles(ctx context.Context, resolution, from, to uint64) ([]v1.Candle, error) {
	if resolution == 0 || from >= to {
		return []v1.Candle{}, nil
	}

	ticks, err := s.loadTicks(ctx, "load candles", keyspace.BucketKeysForRange(s.symbol, resolution, from, to))
	if err != nil {
		return nil, err
	}

	return aggregator.BatchSeries(ticks, resolution, from, to), nil
}

// LoadPrices returns the stored ticks with from <= Timestamp < to, oldest first.
func (s *Store) LoadPrices(ctx context.Context, from, to uint64) ([]v1.Tick, error) {
	if from >= to {
		return []v1.Tick{}, nil
	}

	ticks, err := s.loadTicks(ctx, "load prices", keyspace.BucketKeysForRange(s.symbol, keyspace.DayMillis, from, to))
	if err != nil {
		return nil, err
	}

	ticks = slices.DeleteFunc(ticks, func(tick v1.Tick) bool {
		return tick.Timestamp < from || tick.Timestamp >= to
	})
	slices.SortStableFunc(ticks, func(a, b v1.Tick) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})
	return ticks, nil
}

// StoreNumber sets the scalar named key.
func (s *Store) StoreNumber(ctx context.Context, key string, value float64) error {
	numberKey := keyspace.NumberKey(s.symbol, key)
	if err := s.backend.Set(ctx, numberKey, strconv.FormatFloat(value, 'f', -1, 64), 0); err != nil {
		return s.backendError(ctx, "store number", numberKey, err)
	}
	return nil
}

// LoadNumber returns the scalar named key and whether it exists.
func (s *Store) LoadNumber(ctx context.Context, key string) (float64, bool, error) {
	numberKey := keyspace.NumberKey(s.symbol, key)
	raw, err := s.backend.Get(ctx, numberKey)
	if err != nil {
		return 0, false, s.backendError(ctx, "load number", numberKey, err)
	}
	if raw == "" {
		return 0, false, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		details := errors.NewErrorDetailsWithCause("Stored number is not a float", string(errors.MalformedRecordError), numberKey, err)
		s.logger.ErrorContext(ctx, details, s.fields("load number", numberKey)...)
		return 0, false, errors.TracerFromError(details)
	}
	return value, true, nil
}

// StoreBuffer saves a raw snapshot taken at ts as base64 text.
func (s *Store) StoreBuffer(ctx context.Context, ts uint64, data []byte) error {
	key := keyspace.BufferKey(s.symbol, ts)
	if err := s.backend.Set(ctx, key, base64.StdEncoding.EncodeToString(data), 0); err != nil {
		return s.backendError(ctx, "store buffer", key, err)
	}
	return nil
}

// LoadBuffer returns the snapshot saved at ts and whether one exists.
// An empty snapshot cannot be told apart from a missing one.
func (s *Store) LoadBuffer(ctx context.Context, ts uint64) ([]byte, bool, error) {
	key := keyspace.BufferKey(s.symbol, ts)
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, false, s.backendError(ctx, "load buffer", key, err)
	}
	if raw == "" {
		return nil, false, nil
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		details := errors.NewErrorDetailsWithCause("Stored buffer is not valid base64", string(errors.MalformedRecordError), key, err)
		s.logger.ErrorContext(ctx, details, s.fields("load buffer", key)...)
		return nil, false, errors.TracerFromError(details)
	}
	return data, true, nil
}

// loadTicks reads every key concurrently and decodes the entries in key order,
// each bucket in write order.
func (s *Store) loadTicks(ctx context.Context, action string, keys []string) ([]v1.Tick, error) {
	buckets := make([][]string, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			entries, err := s.backend.LRange(gctx, key, 0, -1)
			if err != nil {
				return s.backendError(ctx, action, key, err)
			}
			buckets[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, entries := range buckets {
		total += len(entries)
	}

	ticks := make([]v1.Tick, 0, total)
	for i, entries := range buckets {
		for _, entry := range entries {
			tick, err := codec.DecodeTick(entry)
			if err == nil {
				ticks = append(ticks, tick)
				continue
			}

			if s.options.OnDecodeError == DecodeSkip {
				s.logger.WarnContext(ctx, "Skipping malformed tick", append(s.fields(action, keys[i]), logger.Field{
					Key:   "error",
					Value: err.Error(),
				})...)
				continue
			}
			s.logger.ErrorContext(ctx, err, s.fields(action, keys[i])...)
			return nil, errors.TracerFromError(err)
		}
	}

	s.logger.DebugContext(ctx, "Ticks loaded", append(s.fields(action, ""), logger.Field{
		Key:   "buckets",
		Value: len(keys),
	}, logger.Field{
		Key:   "ticks",
		Value: len(ticks),
	})...)
	return ticks, nil
}

func (s *Store) backendError(ctx context.Context, action, key string, err error) error {
	s.logger.ErrorContext(ctx, err, s.fields(action, key)...)
	return errors.TracerFromError(
		errors.NewErrorDetailsWithCause("Backend "+action+" failed", string(errors.BackendUnavailableError), key, err),
	)
}

func (s *Store) fields(action, key string) []logger.Field {
	fields := []logger.Field{
		{Key: "symbol", Value: s.symbol},
		{Key: "action", Value: action},
	}
	if key != "" {
		fields = append(fields, logger.Field{Key: "key", Value: key})
	}
	return fields
}
