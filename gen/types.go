// Package gen defines the generation configuration and its sentinel errors.
package gen

import "errors"

// Sentinel errors returned by Generate.
var (
	// ErrInsufficientEntropy indicates the byte stream was exhausted before
	// the expression tree was complete. The partial tree is discarded; the
	// caller skips the input.
	ErrInsufficientEntropy = errors.New("gen: byte stream exhausted mid-construction")

	// ErrBadMaxDepth indicates Config.MaxDepth is negative.
	ErrBadMaxDepth = errors.New("gen: MaxDepth must be non-negative")

	// ErrBadMaxVariables indicates Config.MaxVariables is less than one;
	// variable indices are drawn modulo this value.
	ErrBadMaxVariables = errors.New("gen: MaxVariables must be positive")
)

// Config bounds the shape of generated expressions and selects which
// operator variants may appear.
//
// MaxDepth      – maximum nesting from root to any leaf (0 forces a bare leaf).
// MaxVariables  – variable indices are drawn in [0, MaxVariables).
// AllowDivision – permit the Div operator.
// AllowPower    – permit the Pow operator.
// AllowLog      – permit the Log operator (off by default: log dominates the
//
//	non-finite corpus when enabled, drowning subtler divergences).
type Config struct {
	MaxDepth      int
	MaxVariables  int
	AllowDivision bool
	AllowPower    bool
	AllowLog      bool
}

// Option is a functional option for building a Config.
type Option func(*Config)

// WithMaxDepth caps nesting depth. Negative values panic; hand-built
// configs go through Validate instead.
func WithMaxDepth(d int) Option {
	return func(c *Config) {
		if d < 0 {
			panic(ErrBadMaxDepth.Error())
		}
		c.MaxDepth = d
	}
}

// WithMaxVariables sets the number of input slots expressions may reference.
// Values below one panic.
func WithMaxVariables(n int) Option {
	return func(c *Config) {
		if n < 1 {
			panic(ErrBadMaxVariables.Error())
		}
		c.MaxVariables = n
	}
}

// WithDivision toggles the Div operator.
func WithDivision(on bool) Option {
	return func(c *Config) { c.AllowDivision = on }
}

// WithPower toggles the Pow operator.
func WithPower(on bool) Option {
	return func(c *Config) { c.AllowPower = on }
}

// WithLog toggles the Log operator.
func WithLog(on bool) Option {
	return func(c *Config) { c.AllowLog = on }
}

// DefaultConfig returns the baseline generation bounds:
// depth ≤ 5, two variables, division and power on, log off.
func DefaultConfig() Config {
	return Config{
		MaxDepth:      5,
		MaxVariables:  2,
		AllowDivision: true,
		AllowPower:    true,
		AllowLog:      false,
	}
}

// NewConfig builds a Config from DefaultConfig plus the given options.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Validate checks a possibly hand-built Config against the sentinels.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return ErrBadMaxDepth
	}
	if c.MaxVariables < 1 {
		return ErrBadMaxVariables
	}

	return nil
}
