package interval

import (
	"github.com/zetamarkets/pyth-history/pkg/errors"
)

// Config holds interval-related configuration
type Config struct {
	EnabledIntervals []string `env:"ENABLED" envSeparator:"," envDefault:"1,3,5,15,30,60,120,240,1D"`
	MaxPoints        int      `env:"MAX_POINTS" envDefault:"5000"`
}

// GetEnabledIntervals returns only the enabled intervals
func (c Config) GetEnabledIntervals() ([]Interval, error) {
	enabled := make([]Interval, 0, len(c.EnabledIntervals))

	invalid := errors.NewBaseError()
	for _, name := range c.EnabledIntervals {
		interval, err := GetInterval(name)
		if err != nil {
			invalid.AddErrorDetails(errors.NewErrorDetailsWithObject("Invalid interval in config", string(errors.InvalidConfigError), "enabled_intervals", name))
			continue
		}
		enabled = append(enabled, interval)
	}

	if invalid.HasDetails() {
		return nil, invalid
	}
	return enabled, nil
}
