// Package strategy holds the move-selection policies available to the
// computer player.
package strategy

import (
	"math/rand"
	"time"

	"github.com/abhisek/roshambo/internal/game"
)

// Strategy picks the computer's move each round. SelectAction must
// return a member of valid. UpdateContext is called once per round
// after resolution, ties included; stateless strategies ignore it.
type Strategy[M game.Move] interface {
	Name() string
	SelectAction(valid []M) M
	UpdateContext(human, computer M)
}

// newRand returns rng unchanged, or a time-seeded source when rng is
// nil. Tests inject a fixed-seed source for determinism.
func newRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
