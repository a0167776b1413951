package v1

import (
	"math"
	"strings"

	candlev1 "github.com/zetamarkets/pyth-history/internal/domain/candle/v1"
	"github.com/zetamarkets/pyth-history/pkg/errors"
)

// PriceEvent represents one oracle price observation published on the price topic.
type PriceEvent struct {
	Symbol     string  `json:"symbol"`
	Price      float64 `json:"price"`
	Confidence float64 `json:"confidence"`
	Timestamp  uint64  `json:"timestamp"` // milliseconds since epoch
	Status     uint8   `json:"status"`

	// Raw is the oracle account data the price was parsed from, if the feed forwards it.
	Raw []byte `json:"raw,omitempty"`
}

// Validate reports every field that makes the event unusable.
func (e PriceEvent) Validate() error {
	invalid := errors.NewBaseError()

	if strings.TrimSpace(e.Symbol) == "" {
		invalid.AddErrorDetails(errors.NewErrorDetails("Symbol is empty", string(errors.GeneralBadRequestError), "symbol"))
	}
	if math.IsNaN(e.Price) || math.IsInf(e.Price, 0) {
		invalid.AddErrorDetails(errors.NewErrorDetails("Price is not finite", string(errors.GeneralBadRequestError), "price"))
	}
	if math.IsNaN(e.Confidence) || math.IsInf(e.Confidence, 0) {
		invalid.AddErrorDetails(errors.NewErrorDetails("Confidence is not finite", string(errors.GeneralBadRequestError), "confidence"))
	}
	if e.Timestamp == 0 {
		invalid.AddErrorDetails(errors.NewErrorDetails("Timestamp is missing", string(errors.GeneralBadRequestError), "timestamp"))
	}
	if e.Timestamp > candlev1.MaxTimestamp {
		invalid.AddErrorDetails(errors.NewErrorDetails("Timestamp does not fit 48 bits", string(errors.TimestampOverflowError), "timestamp"))
	}

	if invalid.HasDetails() {
		return invalid
	}
	return nil
}

// ToTick converts the event to a tick. Prices are narrowed to float32.
func (e PriceEvent) ToTick() candlev1.Tick {
	return candlev1.Tick{
		Price:      float32(e.Price),
		Confidence: float32(e.Confidence),
		Timestamp:  e.Timestamp,
		Status:     candlev1.PriceStatus(e.Status),
	}
}
