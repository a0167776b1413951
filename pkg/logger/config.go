package logger

// Config holds the logger settings read from the environment.
type Config struct {
	Level       string   `env:"LEVEL" envDefault:"info"`
	OutputPaths []string `env:"OUTPUT_PATHS" envSeparator:"," envDefault:"stderr"`
	TimeKey     string   `env:"TIME_KEY" envDefault:"ts"`
	LevelKey    string   `env:"LEVEL_KEY" envDefault:"level"`
}

// Options converts c into NewLogger options. Empty settings keep the zap production defaults.
func (c Config) Options() []Options {
	opts := []Options{WithLoggingLevel(ParseLevel(c.Level))}
	if len(c.OutputPaths) > 0 {
		opts = append(opts, WithOutputPaths(c.OutputPaths))
	}
	if c.TimeKey != "" {
		opts = append(opts, WithTimeKey(c.TimeKey))
	}
	if c.LevelKey != "" {
		opts = append(opts, WithLevelKey(c.LevelKey))
	}
	return opts
}
