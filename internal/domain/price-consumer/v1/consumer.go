package v1

import (
	"context"
)

// PriceConsumer feeds price events into the candle stores.
type PriceConsumer interface {
	Start(ctx context.Context) error
	Stop() error
}
