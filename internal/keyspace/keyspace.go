// Package keyspace derives the backend keys a symbol's data lives under.
package keyspace

import (
	"strconv"
	"time"
)

// DayMillis is the width of a day bucket in milliseconds.
const DayMillis = uint64(24 * time.Hour / time.Millisecond)

// DayKey returns the bucket key holding every tick of symbol on the UTC day of ts.
// The month is zero-based and nothing is zero-padded, e.g. "SOL-2021-6-1" for 2021-07-01.
func DayKey(symbol string, ts uint64) string {
	t := time.UnixMilli(int64(ts)).UTC()
	return symbol + "-" + strconv.Itoa(t.Year()) + "-" + strconv.Itoa(int(t.Month())-1) + "-" + strconv.Itoa(t.Day())
}

// BucketKeysForRange returns the day keys a candle query over [from, to) must read.
// It collects the day of every window start from, from+resolution, ... below to,
// plus the day of to itself. Keys are unique and in first-seen order.
// A zero resolution yields only the days of from and to.
func BucketKeysForRange(symbol string, resolution, from, to uint64) []string {
	keys := make([]string, 0, 2)
	seen := make(map[string]struct{}, 2)
	add := func(ts uint64) {
		key := DayKey(symbol, ts)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	if resolution == 0 {
		add(from)
		add(to)
		return keys
	}

	for cursor := from; cursor < to; {
		add(cursor)

		// steps up to the next UTC midnight land in the same bucket
		nextDay := (cursor/DayMillis + 1) * DayMillis
		steps := (nextDay-cursor-1)/resolution + 1
		if steps > (to-cursor-1)/resolution {
			break
		}
		cursor += steps * resolution
	}
	add(to)

	return keys
}

// CommonPrefixPattern returns the longest common prefix of a and b followed by "*".
// When neither key diverges from the other, a is returned unchanged.
func CommonPrefixPattern(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i] + "*"
		}
	}
	return a
}

// KeyMatchForRange returns a pattern matching the day buckets of from and from+resolution.
// Nothing on the read path uses it; LRANGE over exact keys is used instead.
func KeyMatchForRange(symbol string, resolution, from uint64) string {
	return CommonPrefixPattern(DayKey(symbol, from), DayKey(symbol, from+resolution))
}

// BufferKey returns the key of the raw snapshot stored for symbol at ts.
func BufferKey(symbol string, ts uint64) string {
	return symbol + "-" + strconv.FormatUint(ts, 10)
}

// BufferMatchForRange returns a pattern matching the buffer keys of from and from+resolution.
func BufferMatchForRange(symbol string, resolution, from uint64) string {
	return CommonPrefixPattern(BufferKey(symbol, from), BufferKey(symbol, from+resolution))
}

// NumberKey returns the key of the scalar named key for symbol.
func NumberKey(symbol, key string) string {
	return symbol + "-NUM-" + key
}
