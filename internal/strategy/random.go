package strategy

import (
	"math/rand"

	"github.com/abhisek/roshambo/internal/game"
)

// Random picks uniformly from the valid actions. It keeps no memory
// of past rounds.
type Random[M game.Move] struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy. A nil rng falls back to a
// time-seeded source.
func NewRandom[M game.Move](rng *rand.Rand) *Random[M] {
	return &Random[M]{rng: newRand(rng)}
}

func (s *Random[M]) Name() string {
	return "Random"
}

func (s *Random[M]) SelectAction(valid []M) M {
	return valid[s.rng.Intn(len(valid))]
}

// UpdateContext is a no-op; Random ignores history.
func (s *Random[M]) UpdateContext(human, computer M) {}
