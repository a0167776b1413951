package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	candleMock "github.com/zetamarkets/pyth-history/internal/domain/candle/v1/mock"
	"github.com/zetamarkets/pyth-history/pkg/errors"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name     string
		symbols  []string
		assertFn func(t *testing.T, r *Registry, built []string, err error)
	}{
		{
			name:    "builds one store per symbol",
			symbols: []string{"SOL/USD", " BTC/USD "},
			assertFn: func(t *testing.T, r *Registry, built []string, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"SOL/USD", "BTC/USD"}, built)
				assert.Equal(t, []string{"SOL/USD", "BTC/USD"}, r.Symbols())
			},
		},
		{
			name:    "rejects blank and repeated symbols",
			symbols: []string{"SOL/USD", "", "SOL/USD"},
			assertFn: func(t *testing.T, r *Registry, built []string, err error) {
				assert.Nil(t, r)
				baseErr, ok := err.(*errors.BaseError)
				require.True(t, ok)
				assert.Len(t, baseErr.GetDetails(), 2)
				assert.True(t, baseErr.IsAllCodeEqual(string(errors.InvalidConfigError)))
			},
		},
		{
			name:    "rejects an empty list",
			symbols: nil,
			assertFn: func(t *testing.T, r *Registry, built []string, err error) {
				assert.Nil(t, r)
				baseErr, ok := err.(*errors.BaseError)
				require.True(t, ok)
				assert.True(t, baseErr.IsAllCodeEqual(string(errors.InvalidConfigError)))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var built []string
			r, err := New(tc.symbols, func(symbol string) v1.Store {
				built = append(built, symbol)
				return candleMock.NewMockStore(ctrl)
			})
			tc.assertFn(t, r, built, err)
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sol := candleMock.NewMockStore(ctrl)
	r, err := New([]string{"SOL/USD"}, func(string) v1.Store { return sol })
	require.NoError(t, err)

	store, err := r.Get("SOL/USD")
	require.NoError(t, err)
	assert.Same(t, sol, store)

	store, err = r.Get("ETH/USD")
	assert.Nil(t, store)
	assert.True(t, errors.ErrorCodeEquals(err, errors.UnknownSymbolError))
}

func TestRegistry_SymbolsIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, err := New([]string{"SOL/USD"}, func(string) v1.Store { return candleMock.NewMockStore(ctrl) })
	require.NoError(t, err)

	symbols := r.Symbols()
	symbols[0] = "mutated"
	assert.Equal(t, []string{"SOL/USD"}, r.Symbols())
}
