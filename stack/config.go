package stack

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/mo"
)

// Default growth parameters used when a Config field is left at its zero value.
const (
	DefaultInitialCapacity = 0
	DefaultGrowthFactor    = 2.0
)

// MaxGrowthFactor is the largest accepted GrowthFactor.
const MaxGrowthFactor = 16.0

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid stack config")

// Config holds the buffer management policy of a Stack.
type Config struct {
	// InitialCapacity is allocated eagerly by NewWithConfig.
	InitialCapacity int
	// GrowthFactor multiplies the capacity whenever the buffer is full. Must be in (1, MaxGrowthFactor].
	GrowthFactor float64
	// ShrinkThreshold enables shrinking once len drops below cap*threshold.
	ShrinkThreshold mo.Option[float64]
}

// DefaultConfig returns the policy used by New and by the zero value Stack.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		GrowthFactor:    DefaultGrowthFactor,
		ShrinkThreshold: mo.None[float64](),
	}
}

// Validate reports whether the policy can drive a Stack.
func (c Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("%w: initial capacity must be >= 0, got %d", ErrInvalidConfig, c.InitialCapacity)
	}

	if math.IsNaN(c.GrowthFactor) || c.GrowthFactor <= 1 || c.GrowthFactor > MaxGrowthFactor {
		return fmt.Errorf("%w: growth factor must be in (1, %v], got %v", ErrInvalidConfig, MaxGrowthFactor, c.GrowthFactor)
	}

	if threshold, ok := c.ShrinkThreshold.Get(); ok {
		if math.IsNaN(threshold) || threshold <= 0 || threshold > 0.5 {
			return fmt.Errorf("%w: shrink threshold must be in (0, 0.5], got %v", ErrInvalidConfig, threshold)
		}
	}

	return nil
}

// factor returns the growth factor, falling back to the default for the zero value.
func (c Config) factor() float64 {
	if c.GrowthFactor == 0 {
		return DefaultGrowthFactor
	}
	return c.GrowthFactor
}
