package session

import (
	"fmt"

	"github.com/abhisek/roshambo/internal/engine"
	"github.com/abhisek/roshambo/internal/game"
	"github.com/abhisek/roshambo/internal/strategy"
)

// Config is everything chosen before a session starts.
type Config struct {
	Variant  game.Variant
	Strategy strategy.Kind
	Mode     engine.Mode
	Target   int
}

// DefaultConfig returns the configuration the setup screen starts
// from: classic rules, predictive opponent, first to 3.
func DefaultConfig() Config {
	return Config{
		Variant:  game.Classic,
		Strategy: strategy.KindPredictive,
		Mode:     engine.FirstTo,
		Target:   3,
	}
}

// Validate rejects configurations the engine would refuse.
func (c Config) Validate() error {
	if c.Target <= 0 {
		return fmt.Errorf("target must be positive, got %d", c.Target)
	}
	return nil
}
