package jsondoc

import "log/slog"

// Config controls how documents are parsed, addressed and serialised.
type Config struct {
	// Delimiter separates address tokens. Empty means DefaultDelimiter.
	Delimiter string
	// Options is the initial serialisation bitmask for new documents.
	Options Options
	// AllowComments accepts // and /* */ comments and trailing commas in input.
	AllowComments bool
	// MaxJSONSize bounds the size of parsed text and read files in bytes.
	MaxJSONSize int64
	// Logger receives operation diagnostics. Nil means the package default.
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Delimiter:     DefaultDelimiter,
		Options:       0,
		AllowComments: false,
		MaxJSONSize:   DefaultMaxJSONSize,
	}
}

// Validate checks configuration values and applies defaults for unset ones
func (c *Config) Validate() error {
	if c == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrInvalidConfig)
	}
	if c.MaxJSONSize < 0 {
		return newOperationError("validate_config", "MaxJSONSize cannot be negative", ErrInvalidConfig)
	}
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
	if c.MaxJSONSize == 0 {
		c.MaxJSONSize = DefaultMaxJSONSize
	}
	return nil
}

// Clone returns a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}
	clone := *c
	return &clone
}

// resolveConfig picks the first non-nil config, copies and validates it.
func resolveConfig(cfgs ...*Config) (*Config, error) {
	for _, c := range cfgs {
		if c != nil {
			cfg := c.Clone()
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
	}
	return DefaultConfig(), nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return defaultLogger()
}
