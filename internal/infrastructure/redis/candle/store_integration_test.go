package candle

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	"github.com/zetamarkets/pyth-history/pkg/errors"
	"github.com/zetamarkets/pyth-history/pkg/logger"
	"github.com/zetamarkets/pyth-history/pkg/redis"
)

func newRedisStore(t *testing.T, symbol string, options Options) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cfg := redis.DefaultConfig()
	cfg.Addrs = []string{mr.Addr()}
	cfg.MaxRetries = -1
	cfg.ConnectTimeout = time.Second

	client := redis.NewClient(logger.NewNopLogger(), cfg)
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return NewStore(symbol, client, logger.NewNopLogger(), options), mr
}

func storeTicks(t *testing.T, store *Store, ticks ...v1.Tick) {
	t.Helper()
	for _, tick := range ticks {
		require.NoError(t, store.StorePrice(context.Background(), tick))
	}
}

func TestRedisStore_EndToEnd(t *testing.T) {
	store, _ := newRedisStore(t, "X", DefaultOptions())
	storeTicks(t, store,
		v1.Tick{Price: 10, Timestamp: 0},
		v1.Tick{Price: 12, Timestamp: 500},
		v1.Tick{Price: 9, Timestamp: 1500},
	)

	candles, err := store.LoadCandles(context.Background(), 1000, 0, 2000)
	require.NoError(t, err)
	assert.Equal(t, []v1.Candle{
		{Open: 10, Close: 12, High: 12, Low: 10, Start: 0, End: 1000},
		{Open: 9, Close: 9, High: 9, Low: 9, Start: 1000, End: 2000},
	}, candles)
}

func TestRedisStore_DuplicatesAreKept(t *testing.T) {
	store, mr := newRedisStore(t, "X", DefaultOptions())
	tick := v1.Tick{Price: 10, Confidence: 0.1, Timestamp: 250, Status: v1.PriceStatusTrading}
	storeTicks(t, store, tick, tick)

	entries, err := mr.List("X-1970-0-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0], entries[1])

	prices, err := store.LoadPrices(context.Background(), 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, []v1.Tick{tick, tick}, prices)
}

func TestRedisStore_Sparse(t *testing.T) {
	store, _ := newRedisStore(t, "X", DefaultOptions())
	storeTicks(t, store,
		v1.Tick{Price: 1, Timestamp: 100},
		v1.Tick{Price: 2, Timestamp: 5500},
	)

	candles, err := store.LoadCandles(context.Background(), 1000, 0, 6000)
	require.NoError(t, err)
	require.Len(t, candles, 2)
	assert.Equal(t, uint64(0), candles[0].Start)
	assert.Equal(t, uint64(5000), candles[1].Start)
}

func TestRedisStore_AcrossDayBuckets(t *testing.T) {
	store, mr := newRedisStore(t, "SOL", DefaultOptions())
	storeTicks(t, store,
		v1.Tick{Price: 30, Timestamp: july1 - 1},
		v1.Tick{Price: 31, Timestamp: july1},
		v1.Tick{Price: 32, Timestamp: july1 + 10},
	)

	assert.True(t, mr.Exists(june30Key))
	assert.True(t, mr.Exists(july1Key))

	candles, err := store.LoadCandles(context.Background(), 1000, july1-1000, july1+1000)
	require.NoError(t, err)
	assert.Equal(t, []v1.Candle{
		{Open: 30, Close: 30, High: 30, Low: 30, Start: july1 - 1000, End: july1},
		{Open: 31, Close: 32, High: 32, Low: 31, Start: july1, End: july1 + 1000},
	}, candles)
}

func TestRedisStore_LoadPrices(t *testing.T) {
	store, _ := newRedisStore(t, "SOL", DefaultOptions())
	storeTicks(t, store,
		v1.Tick{Price: 3, Timestamp: july1 + 300},
		v1.Tick{Price: 1, Timestamp: july1 - 5},
		v1.Tick{Price: 2, Timestamp: july1 + 100},
		v1.Tick{Price: 4, Timestamp: july1 + 900},
	)

	prices, err := store.LoadPrices(context.Background(), july1-5, july1+900)
	require.NoError(t, err)
	assert.Equal(t, []v1.Tick{
		{Price: 1, Timestamp: july1 - 5},
		{Price: 2, Timestamp: july1 + 100},
		{Price: 3, Timestamp: july1 + 300},
	}, prices)
}

func TestRedisStore_DecodePolicy(t *testing.T) {
	testCases := []struct {
		name     string
		options  Options
		assertFn func(t *testing.T, candles []v1.Candle, err error)
	}{
		{
			name:    "fail",
			options: Options{OnDecodeError: DecodeFail},
			assertFn: func(t *testing.T, candles []v1.Candle, err error) {
				assert.Nil(t, candles)
				assert.True(t, errors.ErrorCodeEquals(err, errors.MalformedRecordError))
			},
		},
		{
			name:    "skip",
			options: Options{OnDecodeError: DecodeSkip},
			assertFn: func(t *testing.T, candles []v1.Candle, err error) {
				require.NoError(t, err)
				assert.Equal(t, []v1.Candle{{Open: 10, Close: 11, High: 11, Low: 10, Start: 0, End: 1000}}, candles)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mr := newRedisStore(t, "X", tc.options)
			storeTicks(t, store, v1.Tick{Price: 10, Timestamp: 1})
			_, err := mr.Push("X-1970-0-1", "not-a-tick")
			require.NoError(t, err)
			storeTicks(t, store, v1.Tick{Price: 11, Timestamp: 2})

			candles, err := store.LoadCandles(context.Background(), 1000, 0, 1000)
			tc.assertFn(t, candles, err)
		})
	}
}

func TestRedisStore_NumbersAndBuffers(t *testing.T) {
	store, mr := newRedisStore(t, "SOL", DefaultOptions())
	ctx := context.Background()

	_, ok, err := store.LoadNumber(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.StoreNumber(ctx, "slot", 98765))
	value, ok, err := store.LoadNumber(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, float64(98765), value)

	stored, err := mr.Get("SOL-NUM-slot")
	require.NoError(t, err)
	assert.Equal(t, "98765", stored)

	_, ok, err = store.LoadBuffer(ctx, july1)
	require.NoError(t, err)
	assert.False(t, ok)

	snapshot := []byte{0x00, 0x01, 0xfe, 0xff}
	require.NoError(t, store.StoreBuffer(ctx, july1, snapshot))
	data, ok, err := store.LoadBuffer(ctx, july1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, snapshot, data)

	raw, err := mr.Get("SOL-1625097600000")
	require.NoError(t, err)
	assert.Equal(t, "AAH+/w==", raw)
}

func TestRedisStore_BackendDown(t *testing.T) {
	store, mr := newRedisStore(t, "SOL", DefaultOptions())
	mr.Close()

	_, err := store.LoadCandles(context.Background(), 1000, july1, july1+1000)
	assert.True(t, errors.ErrorCodeEquals(err, errors.BackendUnavailableError))
	assert.True(t, errors.ErrorCodeEquals(err, errors.RedisLRangeError))

	err = store.StorePrice(context.Background(), v1.Tick{Price: 1, Timestamp: july1})
	assert.True(t, errors.ErrorCodeEquals(err, errors.BackendUnavailableError))
}
