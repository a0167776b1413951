package bootstrap

import (
	candleDomain "github.com/zetamarkets/pyth-history/internal/domain/candle"
	candleUc "github.com/zetamarkets/pyth-history/internal/usecase/candle"
	"github.com/zetamarkets/pyth-history/pkg/interval"
)

// Usecase is the usecase for the candle service.
type Usecase struct {
	CandleUsecase candleDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase(intervalConfig interval.Config) error {
	candleUsecase, err := candleUc.NewUsecase(b.Repository.Registry, intervalConfig, b.Logger)
	if err != nil {
		return err
	}
	b.Usecase.CandleUsecase = candleUsecase
	return nil
}
