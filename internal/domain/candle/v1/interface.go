package v1

import "context"

// Store persists one symbol's ticks and serves candles built from them.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=candlev1_mock
type Store interface {
	Symbol() string
	StorePrice(ctx context.Context, tick Tick) error
	LoadCandles(ctx context.Context, resolution, from, to uint64) ([]Candle, error)
	LoadPrices(ctx context.Context, from, to uint64) ([]Tick, error)
	StoreNumber(ctx context.Context, key string, value float64) error
	LoadNumber(ctx context.Context, key string) (float64, bool, error)
	StoreBuffer(ctx context.Context, ts uint64, data []byte) error
	LoadBuffer(ctx context.Context, ts uint64) ([]byte, bool, error)
}
