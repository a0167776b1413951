package interval

import (
	"time"

	"github.com/zetamarkets/pyth-history/pkg/errors"
)

// Interval is a chart resolution.
type Interval struct {
	Name     string
	Duration time.Duration
}

// Supported intervals, named the way charting clients request them.
var (
	Interval1m   = Interval{Name: "1", Duration: time.Minute}
	Interval3m   = Interval{Name: "3", Duration: 3 * time.Minute}
	Interval5m   = Interval{Name: "5", Duration: 5 * time.Minute}
	Interval15m  = Interval{Name: "15", Duration: 15 * time.Minute}
	Interval30m  = Interval{Name: "30", Duration: 30 * time.Minute}
	Interval60m  = Interval{Name: "60", Duration: time.Hour}
	Interval120m = Interval{Name: "120", Duration: 2 * time.Hour}
	Interval240m = Interval{Name: "240", Duration: 4 * time.Hour}
	Interval1D   = Interval{Name: "1D", Duration: 24 * time.Hour}
)

// AllIntervals lists every supported interval, shortest first.
var AllIntervals = []Interval{
	Interval1m, Interval3m, Interval5m, Interval15m, Interval30m,
	Interval60m, Interval120m, Interval240m, Interval1D,
}

var intervalRegistry = make(map[string]Interval, len(AllIntervals))

func init() {
	for _, interval := range AllIntervals {
		intervalRegistry[interval.Name] = interval
	}
}

// GetInterval returns an interval by name
func GetInterval(name string) (Interval, error) {
	interval, exists := intervalRegistry[name]
	if !exists {
		return Interval{}, errors.NewErrorDetailsWithObject("Unsupported resolution", string(errors.InvalidResolutionError), "resolution", name)
	}
	return interval, nil
}

// Millis returns the interval width in milliseconds.
func (i Interval) Millis() uint64 {
	return uint64(i.Duration / time.Millisecond)
}

// Snap widens [from, to) outwards to whole intervals: from is floored and to
// is ceiled to a multiple of the interval. When both land on the same
// boundary, to is pushed one interval further so at least one candle fits.
func (i Interval) Snap(from, to uint64) (uint64, uint64) {
	res := i.Millis()
	if res == 0 {
		return from, to
	}

	from = from / res * res
	to = (to + res - 1) / res * res
	if from == to {
		to += res
	}
	return from, to
}
