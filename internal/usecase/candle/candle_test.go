package candle

import (
	"context"
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	storeMock "github.com/zetamarkets/pyth-history/internal/domain/candle/v1/mock"
	"github.com/zetamarkets/pyth-history/internal/registry"
	"github.com/zetamarkets/pyth-history/pkg/errors"
	"github.com/zetamarkets/pyth-history/pkg/interval"
	"github.com/zetamarkets/pyth-history/pkg/logger"
	"go.uber.org/mock/gomock"
)

var testIntervals = interval.Config{
	EnabledIntervals: []string{"1", "60", "1D"},
	MaxPoints:        5000,
}

func newUsecase(t *testing.T, store *storeMock.MockStore) *Usecase {
	t.Helper()

	r, err := registry.New([]string{"SOL/USD"}, func(string) v1.Store { return store })
	require.NoError(t, err)

	u, err := NewUsecase(r, testIntervals, logger.NewNopLogger())
	require.NoError(t, err)
	return u
}

func TestNewUsecase_InvalidIntervals(t *testing.T) {
	r, err := registry.New([]string{"SOL/USD"}, func(string) v1.Store { return nil })
	require.NoError(t, err)

	u, err := NewUsecase(r, interval.Config{EnabledIntervals: []string{"2"}}, logger.NewNopLogger())
	assert.Nil(t, u)
	assert.Error(t, err)
}

func TestUsecase_StorePrice(t *testing.T) {
	tick := v1.Tick{Price: 34.5, Confidence: 0.01, Timestamp: 1625097600000, Status: v1.PriceStatusTrading}

	testCases := []struct {
		name     string
		symbol   string
		mockFn   func(store *storeMock.MockStore)
		assertFn func(t *testing.T, err error)
	}{
		{
			name:   "stores tick only",
			symbol: "SOL/USD",
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().StorePrice(gomock.Any(), tick).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "store failure",
			symbol: "SOL/USD",
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().StorePrice(gomock.Any(), tick).Return(stderrors.New("boom"))
			},
			assertFn: func(t *testing.T, err error) {
				require.Error(t, err)
				_, ok := err.(*errors.ErrorTracer)
				assert.True(t, ok)
			},
		},
		{
			name:   "unknown symbol",
			symbol: "ETH/USD",
			mockFn: func(store *storeMock.MockStore) {},
			assertFn: func(t *testing.T, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.UnknownSymbolError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := storeMock.NewMockStore(ctrl)
			tc.mockFn(store)

			err := newUsecase(t, store).StorePrice(context.Background(), tc.symbol, tick)
			tc.assertFn(t, err)
		})
	}
}

func TestUsecase_AdvanceLastPrice(t *testing.T) {
	const ts = uint64(1625097600000)

	testCases := []struct {
		name     string
		symbol   string
		mockFn   func(store *storeMock.MockStore)
		assertFn func(t *testing.T, err error)
	}{
		{
			name:   "first watermark",
			symbol: "SOL/USD",
			mockFn: func(store *storeMock.MockStore) {
				gomock.InOrder(
					store.EXPECT().LoadNumber(gomock.Any(), LastPriceKey).Return(float64(0), false, nil),
					store.EXPECT().StoreNumber(gomock.Any(), LastPriceKey, float64(ts)).Return(nil),
				)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "newer tick advances",
			symbol: "SOL/USD",
			mockFn: func(store *storeMock.MockStore) {
				gomock.InOrder(
					store.EXPECT().LoadNumber(gomock.Any(), LastPriceKey).Return(float64(ts-400), true, nil),
					store.EXPECT().StoreNumber(gomock.Any(), LastPriceKey, float64(ts)).Return(nil),
				)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "late tick leaves watermark",
			symbol: "SOL/USD",
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().LoadNumber(gomock.Any(), LastPriceKey).Return(float64(ts+400), true, nil)
				store.EXPECT().StoreNumber(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "same tick leaves watermark",
			symbol: "SOL/USD",
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().LoadNumber(gomock.Any(), LastPriceKey).Return(float64(ts), true, nil)
				store.EXPECT().StoreNumber(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "load failure",
			symbol: "SOL/USD",
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().LoadNumber(gomock.Any(), LastPriceKey).
					Return(float64(0), false, errors.NewErrorDetails("Backend load number failed", string(errors.BackendUnavailableError), "SOL/USD-NUM-last_price_ts"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.BackendUnavailableError))
			},
		},
		{
			name:   "write failure",
			symbol: "SOL/USD",
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().LoadNumber(gomock.Any(), LastPriceKey).Return(float64(0), false, nil)
				store.EXPECT().StoreNumber(gomock.Any(), LastPriceKey, float64(ts)).Return(stderrors.New("boom"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:   "unknown symbol",
			symbol: "ETH/USD",
			mockFn: func(store *storeMock.MockStore) {},
			assertFn: func(t *testing.T, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.UnknownSymbolError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := storeMock.NewMockStore(ctrl)
			tc.mockFn(store)

			err := newUsecase(t, store).AdvanceLastPrice(context.Background(), tc.symbol, ts)
			tc.assertFn(t, err)
		})
	}
}

func assertOutOfBounds(t *testing.T, err error) {
	t.Helper()

	var details *errors.ErrorDetails
	require.ErrorAs(t, err, &details)
	assert.Equal(t, "Time range out of bounds", details.Message)
	assert.Equal(t, string(errors.GeneralBadRequestError), details.Code)
}

func TestUsecase_History(t *testing.T) {
	candles := []v1.Candle{{Open: 1, Close: 2, High: 2, Low: 1, Start: 3_600_000, End: 7_200_000}}

	testCases := []struct {
		name     string
		request  v1.HistoryRequest
		mockFn   func(store *storeMock.MockStore)
		assertFn func(t *testing.T, res []v1.Candle, err error)
	}{
		{
			name:    "snaps seconds to whole windows",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "60", From: 3_700, To: 10_000},
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().LoadCandles(gomock.Any(), uint64(3_600_000), uint64(3_600_000), uint64(10_800_000)).Return(candles, nil)
			},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				require.NoError(t, err)
				assert.Equal(t, candles, res)
			},
		},
		{
			name:    "equal bounds give one window",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "1", From: 120, To: 120},
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().LoadCandles(gomock.Any(), uint64(60_000), uint64(120_000), uint64(180_000)).Return([]v1.Candle{}, nil)
			},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				require.NoError(t, err)
				assert.Empty(t, res)
			},
		},
		{
			name:    "disabled resolution",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "5", From: 0, To: 600},
			mockFn:  func(store *storeMock.MockStore) {},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.InvalidResolutionError))
			},
		},
		{
			name:    "too many points",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "1", From: 0, To: 60 * 5001},
			mockFn:  func(store *storeMock.MockStore) {},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.GeneralBadRequestError))
			},
		},
		{
			name:    "inverted range",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "1", From: 600, To: 0},
			mockFn:  func(store *storeMock.MockStore) {},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, errors.GeneralBadRequestError))
			},
		},
		{
			name:    "upper bound past the timestamp range",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "1D", From: 0, To: math.MaxUint64 / 1000},
			mockFn:  func(store *storeMock.MockStore) {},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				assertOutOfBounds(t, err)
			},
		},
		{
			name:    "one second past the timestamp range",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "1", From: v1.MaxTimestamp/1000 + 1, To: v1.MaxTimestamp/1000 + 1},
			mockFn:  func(store *storeMock.MockStore) {},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				assertOutOfBounds(t, err)
			},
		},
		{
			name:    "last representable second",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "1D", From: v1.MaxTimestamp/1000 - 86_400, To: v1.MaxTimestamp / 1000},
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().LoadCandles(gomock.Any(), uint64(86_400_000), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, from, to uint64) ([]v1.Candle, error) {
						assert.Less(t, from, to)
						return []v1.Candle{}, nil
					})
			},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "store failure",
			request: v1.HistoryRequest{Symbol: "SOL/USD", Resolution: "1D", From: 0, To: 86_400},
			mockFn: func(store *storeMock.MockStore) {
				store.EXPECT().LoadCandles(gomock.Any(), uint64(86_400_000), uint64(0), uint64(86_400_000)).
					Return(nil, errors.NewErrorDetails("Backend load candles failed", string(errors.BackendUnavailableError), "SOL/USD-1970-0-1"))
			},
			assertFn: func(t *testing.T, res []v1.Candle, err error) {
				assert.Nil(t, res)
				assert.True(t, errors.ErrorCodeEquals(err, errors.BackendUnavailableError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := storeMock.NewMockStore(ctrl)
			tc.mockFn(store)

			res, err := newUsecase(t, store).History(context.Background(), tc.request)
			tc.assertFn(t, res, err)
		})
	}
}

func TestUsecase_ReadThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storeMock.NewMockStore(ctrl)
	u := newUsecase(t, store)
	ctx := context.Background()

	ticks := []v1.Tick{{Price: 1, Timestamp: 10}}
	store.EXPECT().LoadPrices(gomock.Any(), uint64(0), uint64(100)).Return(ticks, nil)
	res, err := u.RecentPrices(ctx, "SOL/USD", 0, 100)
	require.NoError(t, err)
	assert.Equal(t, ticks, res)

	store.EXPECT().LoadNumber(gomock.Any(), LastPriceKey).Return(float64(1625097600000), true, nil)
	ts, ok, err := u.LastPriceTimestamp(ctx, "SOL/USD")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(1625097600000), ts)

	store.EXPECT().StoreBuffer(gomock.Any(), uint64(5), []byte("raw")).Return(nil)
	require.NoError(t, u.StoreSnapshot(ctx, "SOL/USD", 5, []byte("raw")))

	store.EXPECT().LoadBuffer(gomock.Any(), uint64(5)).Return([]byte("raw"), true, nil)
	data, ok, err := u.Snapshot(ctx, "SOL/USD", 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("raw"), data)

	_, _, err = u.Snapshot(ctx, "ETH/USD", 5)
	assert.True(t, errors.ErrorCodeEquals(err, errors.UnknownSymbolError))

	assert.Equal(t, []string{"1", "60", "1D"}, u.SupportedResolutions())
}
