package v1

import "strconv"

const (
	// TickRecordSize is the length of an encoded tick before base64.
	TickRecordSize = 15
	// CandleRecordSize is the length of an encoded candle before base64.
	CandleRecordSize = 36
	// MaxTimestamp is the largest millisecond timestamp a record can hold (48 bits).
	MaxTimestamp uint64 = 1<<48 - 1
)

// PriceStatus is the oracle status attached to a tick. Storage treats it as opaque.
type PriceStatus uint8

const (
	PriceStatusUnknown PriceStatus = iota
	PriceStatusTrading
	PriceStatusHalted
	PriceStatusAuction
)

func (s PriceStatus) String() string {
	switch s {
	case PriceStatusUnknown:
		return "unknown"
	case PriceStatusTrading:
		return "trading"
	case PriceStatusHalted:
		return "halted"
	case PriceStatusAuction:
		return "auction"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Tick represents a single price observation.
type Tick struct {
	Price      float32
	Confidence float32
	Timestamp  uint64 // milliseconds since epoch
	Status     PriceStatus
}

// Candle represents an OHLC summary over the half-open window [Start, End).
type Candle struct {
	Open  float32
	Close float32
	High  float32
	Low   float32
	Start uint64
	End   uint64
}

// HistoryRequest asks for the candles of Symbol at Resolution between From and To,
// both in seconds since epoch.
type HistoryRequest struct {
	Symbol     string
	Resolution string
	From       uint64
	To         uint64
}
