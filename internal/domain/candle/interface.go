package candle

import (
	"context"

	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
)

// Usecase is the interface for the candle usecase.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=candle_mock
type Usecase interface {
	StorePrice(ctx context.Context, symbol string, tick v1.Tick) error
	AdvanceLastPrice(ctx context.Context, symbol string, ts uint64) error
	StoreSnapshot(ctx context.Context, symbol string, ts uint64, data []byte) error
	LoadCandles(ctx context.Context, symbol string, resolution, from, to uint64) ([]v1.Candle, error)
	History(ctx context.Context, request v1.HistoryRequest) ([]v1.Candle, error)
	RecentPrices(ctx context.Context, symbol string, from, to uint64) ([]v1.Tick, error)
	LastPriceTimestamp(ctx context.Context, symbol string) (uint64, bool, error)
	Snapshot(ctx context.Context, symbol string, ts uint64) ([]byte, bool, error)
	SupportedResolutions() []string
}
