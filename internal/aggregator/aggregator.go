// Package aggregator folds ticks into fixed-resolution OHLC candles.
package aggregator

import (
	"cmp"
	"slices"

	v1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
)

// Batch folds the ticks with start <= Timestamp < end into one candle.
// Ticks are taken in the given order: the first sets open and the last sets close.
// It reports false when no tick falls in the window.
func Batch(ticks []v1.Tick, start, end uint64) (v1.Candle, bool) {
	var (
		candle v1.Candle
		found  bool
	)
	for _, tick := range ticks {
		if tick.Timestamp < start || tick.Timestamp >= end {
			continue
		}
		if !found {
			candle = v1.Candle{Open: tick.Price, Close: tick.Price, High: tick.Price, Low: tick.Price, Start: start, End: end}
			found = true
			continue
		}
		fold(&candle, tick)
	}
	return candle, found
}

// BatchSeriesNaive calls Batch once per window, rescanning every tick each time.
// BatchSeries gives the same result for time-ordered input at a fraction of the cost.
func BatchSeriesNaive(ticks []v1.Tick, resolution, from, to uint64) []v1.Candle {
	candles := make([]v1.Candle, 0)
	if resolution == 0 || from >= to {
		return candles
	}

	for cursor := from; to-cursor >= resolution; cursor += resolution {
		if candle, ok := Batch(ticks, cursor, cursor+resolution); ok {
			candles = append(candles, candle)
		}
	}
	return candles
}

// BatchSeries returns the candles of every window [c, c+resolution) with
// c = from, from+resolution, ... and c+resolution <= to, skipping windows without ticks.
// A trailing window shorter than resolution is not emitted.
//
// Ticks are stably sorted by timestamp once and swept with two pointers, so close
// is the latest tick of a window and ticks sharing a timestamp keep their given order.
// The input slice is not modified.
func BatchSeries(ticks []v1.Tick, resolution, from, to uint64) []v1.Candle {
	candles := make([]v1.Candle, 0)
	if resolution == 0 || from >= to {
		return candles
	}

	sorted := slices.Clone(ticks)
	slices.SortStableFunc(sorted, func(a, b v1.Tick) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})

	i, _ := slices.BinarySearchFunc(sorted, from, func(tick v1.Tick, ts uint64) int {
		return cmp.Compare(tick.Timestamp, ts)
	})

	cursor := from
	for i < len(sorted) && cursor <= to && to-cursor >= resolution {
		// jump over empty windows
		if gap := sorted[i].Timestamp - cursor; gap >= resolution {
			cursor += gap / resolution * resolution
			continue
		}

		end := cursor + resolution
		j := i
		for j < len(sorted) && sorted[j].Timestamp < end {
			j++
		}

		candle := v1.Candle{Open: sorted[i].Price, Close: sorted[i].Price, High: sorted[i].Price, Low: sorted[i].Price, Start: cursor, End: end}
		for _, tick := range sorted[i+1 : j] {
			fold(&candle, tick)
		}
		candles = append(candles, candle)

		i = j
		cursor = end
	}
	return candles
}

func fold(candle *v1.Candle, tick v1.Tick) {
	candle.Close = tick.Price
	candle.High = max(candle.High, tick.Price)
	candle.Low = min(candle.Low, tick.Price)
}
