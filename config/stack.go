package config

import (
	"fmt"

	"github.com/dsbox/dsbox/key"
	"github.com/dsbox/dsbox/stack"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Stack assembles the buffer policy configured under the stack.* keys.
// A zero shrink threshold leaves shrinking disabled.
func Stack() (stack.Config, error) {
	cfg := stack.Config{
		InitialCapacity: viper.GetInt(key.StackInitialCapacity),
		GrowthFactor:    viper.GetFloat64(key.StackGrowthFactor),
		ShrinkThreshold: mo.None[float64](),
	}

	if threshold := viper.GetFloat64(key.StackShrinkThreshold); threshold != 0 {
		cfg.ShrinkThreshold = mo.Some(threshold)
	}

	if err := cfg.Validate(); err != nil {
		return stack.Config{}, fmt.Errorf("stack settings: %w", err)
	}

	return cfg, nil
}
