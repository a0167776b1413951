// Package registry holds the candle store of every configured symbol.
package registry

import (
	"strings"

	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	"github.com/zetamarkets/pyth-history/pkg/errors"
)

// Registry maps symbols to their stores. It is built once at startup and never
// modified afterwards, so it can be shared freely.
type Registry struct {
	stores  map[string]v1.Store
	symbols []string
}

// New builds a store for every symbol with newStore.
// Symbols are trimmed; blank or repeated symbols are rejected.
func New(symbols []string, newStore func(symbol string) v1.Store) (*Registry, error) {
	r := &Registry{
		stores:  make(map[string]v1.Store, len(symbols)),
		symbols: make([]string, 0, len(symbols)),
	}

	invalid := errors.NewBaseError()
	for _, symbol := range symbols {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			invalid.AddErrorDetails(errors.NewErrorDetails("Symbol is empty", string(errors.InvalidConfigError), "symbols"))
			continue
		}
		if _, ok := r.stores[symbol]; ok {
			invalid.AddErrorDetails(errors.NewErrorDetailsWithObject("Symbol is listed twice", string(errors.InvalidConfigError), "symbols", symbol))
			continue
		}
		r.stores[symbol] = newStore(symbol)
		r.symbols = append(r.symbols, symbol)
	}

	if len(r.symbols) == 0 && !invalid.HasDetails() {
		invalid.AddErrorDetails(errors.NewErrorDetails("No symbols configured", string(errors.InvalidConfigError), "symbols"))
	}
	if invalid.HasDetails() {
		return nil, invalid
	}
	return r, nil
}

// Get returns the store of symbol.
func (r *Registry) Get(symbol string) (v1.Store, error) {
	store, ok := r.stores[symbol]
	if !ok {
		return nil, errors.NewErrorDetailsWithObject("Unknown symbol", string(errors.UnknownSymbolError), "symbol", symbol)
	}
	return store, nil
}

// Symbols returns the registered symbols in configuration order.
func (r *Registry) Symbols() []string {
	return append([]string(nil), r.symbols...)
}
