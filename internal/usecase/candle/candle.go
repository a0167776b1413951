package candle

import (
	"context"

	candleDomain "github.com/zetamarkets/pyth-history/internal/domain/candle"
	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	"github.com/zetamarkets/pyth-history/internal/registry"
	"github.com/zetamarkets/pyth-history/pkg/errors"
	"github.com/zetamarkets/pyth-history/pkg/interval"
	"github.com/zetamarkets/pyth-history/pkg/logger"
)

// LastPriceKey names the scalar holding the timestamp of the newest stored tick.
const LastPriceKey = "last_price_ts"

// Usecase is the usecase for candles.
type Usecase struct {
	registry  *registry.Registry
	intervals map[string]interval.Interval
	names     []string
	maxPoints int
	logger    logger.Interface
}

var _ candleDomain.Usecase = (*Usecase)(nil)

// NewUsecase creates a new candle usecase serving the enabled intervals of intervalConfig.
func NewUsecase(registry *registry.Registry, intervalConfig interval.Config, logger logger.Interface) (*Usecase, error) {
	enabled, err := intervalConfig.GetEnabledIntervals()
	if err != nil {
		return nil, err
	}

	u := &Usecase{
		registry:  registry,
		intervals: make(map[string]interval.Interval, len(enabled)),
		names:     make([]string, 0, len(enabled)),
		maxPoints: intervalConfig.MaxPoints,
		logger:    logger,
	}
	for _, i := range enabled {
		u.intervals[i.Name] = i
		u.names = append(u.names, i.Name)
	}
	return u, nil
}

// StorePrice appends tick to the history of symbol.
func (u *Usecase) StorePrice(ctx context.Context, symbol string, tick v1.Tick) error {
	store, err := u.registry.Get(symbol)
	if err != nil {
		return errors.TracerFromError(err)
	}

	if err := store.StorePrice(ctx, tick); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// AdvanceLastPrice moves the last-price watermark of symbol forward to ts.
// A ts at or behind the current watermark leaves it untouched. The read and
// the write are not atomic; one writer per symbol is assumed.
func (u *Usecase) AdvanceLastPrice(ctx context.Context, symbol string, ts uint64) error {
	store, err := u.registry.Get(symbol)
	if err != nil {
		return errors.TracerFromError(err)
	}

	current, ok, err := store.LoadNumber(ctx, LastPriceKey)
	if err != nil {
		return errors.TracerFromError(err)
	}
	if ok && uint64(current) >= ts {
		return nil
	}

	if err := store.StoreNumber(ctx, LastPriceKey, float64(ts)); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// StoreSnapshot stores the raw feed payload observed for symbol at ts.
func (u *Usecase) StoreSnapshot(ctx context.Context, symbol string, ts uint64, data []byte) error {
	store, err := u.registry.Get(symbol)
	if err != nil {
		return errors.TracerFromError(err)
	}

	if err := store.StoreBuffer(ctx, ts, data); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// LoadCandles loads candles for symbol. Bounds are used as given.
func (u *Usecase) LoadCandles(ctx context.Context, symbol string, resolution, from, to uint64) ([]v1.Candle, error) {
	store, err := u.registry.Get(symbol)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	candles, err := store.LoadCandles(ctx, resolution, from, to)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return candles, nil
}

// History answers a charting query: bounds in seconds are converted to
// milliseconds and widened to whole windows of the requested resolution.
func (u *Usecase) History(ctx context.Context, request v1.HistoryRequest) ([]v1.Candle, error) {
	resolution, ok := u.intervals[request.Resolution]
	if !ok {
		return nil, errors.TracerFromError(
			errors.NewErrorDetailsWithObject("Unsupported resolution", string(errors.InvalidResolutionError), "resolution", request.Resolution),
		)
	}

	// Bounded by MaxTimestamp so the conversion and Snap cannot overflow.
	const maxSeconds = v1.MaxTimestamp / 1000
	if request.From > maxSeconds || request.To > maxSeconds {
		return nil, errors.TracerFromError(
			errors.NewErrorDetails("Time range out of bounds", string(errors.GeneralBadRequestError), "to"),
		)
	}

	from, to := resolution.Snap(request.From*1000, request.To*1000)
	if err := resolution.ValidateRange(from, to, u.maxPoints); err != nil {
		return nil, errors.TracerFromError(err)
	}

	u.logger.DebugContext(ctx, "Loading history", logger.Field{
		Key:   "symbol",
		Value: request.Symbol,
	}, logger.Field{
		Key:   "resolution",
		Value: resolution.Name,
	}, logger.Field{
		Key:   "from",
		Value: from,
	}, logger.Field{
		Key:   "to",
		Value: to,
	})

	return u.LoadCandles(ctx, request.Symbol, resolution.Millis(), from, to)
}

// RecentPrices returns the raw ticks of symbol in [from, to).
func (u *Usecase) RecentPrices(ctx context.Context, symbol string, from, to uint64) ([]v1.Tick, error) {
	store, err := u.registry.Get(symbol)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	ticks, err := store.LoadPrices(ctx, from, to)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return ticks, nil
}

// LastPriceTimestamp returns the timestamp of the newest tick stored for symbol.
func (u *Usecase) LastPriceTimestamp(ctx context.Context, symbol string) (uint64, bool, error) {
	store, err := u.registry.Get(symbol)
	if err != nil {
		return 0, false, errors.TracerFromError(err)
	}

	value, ok, err := store.LoadNumber(ctx, LastPriceKey)
	if err != nil {
		return 0, false, errors.TracerFromError(err)
	}
	return uint64(value), ok, nil
}

// Snapshot returns the raw feed payload stored for symbol at ts.
func (u *Usecase) Snapshot(ctx context.Context, symbol string, ts uint64) ([]byte, bool, error) {
	store, err := u.registry.Get(symbol)
	if err != nil {
		return nil, false, errors.TracerFromError(err)
	}

	data, ok, err := store.LoadBuffer(ctx, ts)
	if err != nil {
		return nil, false, errors.TracerFromError(err)
	}
	return data, ok, nil
}

// SupportedResolutions returns the enabled resolution names in configured order.
func (u *Usecase) SupportedResolutions() []string {
	return append([]string(nil), u.names...)
}
