package strategy

import (
	"math/rand"

	"github.com/abhisek/roshambo/internal/game"
)

// History is the memory a Predictive strategy accumulates over a
// session: one entry per round, ties included. It is owned by a
// single strategy instance and discarded with it.
type History[M game.Move] struct {
	HumanMoves    []M
	ComputerMoves []M
	Rounds        int
}

// Record appends one resolved round.
func (h *History[M]) Record(human, computer M) {
	h.HumanMoves = append(h.HumanMoves, human)
	h.ComputerMoves = append(h.ComputerMoves, computer)
	h.Rounds++
}

// Predictive counters the opponent's most frequent move so far. With
// no history it behaves like Random.
//
// The counter lookup always consults the Extended victory table by
// ordinal, whatever rule set is in play: in the fire-water variant a
// Fire-heavy opponent reads as Lizard-heavy. If no valid action
// counters the favorite, it falls back to a random pick.
type Predictive[M game.Move] struct {
	rng *rand.Rand
	ctx History[M]
}

// NewPredictive creates a Predictive strategy with empty history. A
// nil rng falls back to a time-seeded source.
func NewPredictive[M game.Move](rng *rand.Rand) *Predictive[M] {
	return &Predictive[M]{rng: newRand(rng)}
}

func (s *Predictive[M]) Name() string {
	return "Predictive"
}

func (s *Predictive[M]) SelectAction(valid []M) M {
	if len(s.ctx.HumanMoves) == 0 {
		return valid[s.rng.Intn(len(valid))]
	}

	favorite := mostFrequent(s.ctx.HumanMoves)
	for _, a := range valid {
		if game.ExtendedDefeatsOrdinal(uint8(a), uint8(favorite)) {
			return a
		}
	}
	return valid[s.rng.Intn(len(valid))]
}

// UpdateContext records the round in the strategy's history.
func (s *Predictive[M]) UpdateContext(human, computer M) {
	s.ctx.Record(human, computer)
}

// History exposes the accumulated context, mainly for tests and the
// summary screen.
func (s *Predictive[M]) History() History[M] {
	return s.ctx
}

// mostFrequent returns the move with the highest count in moves.
// Ties break toward the move first observed, so repeated calls over a
// growing history are deterministic.
func mostFrequent[M game.Move](moves []M) M {
	counts := make(map[M]int, len(moves))
	var firstSeen []M
	for _, m := range moves {
		if counts[m] == 0 {
			firstSeen = append(firstSeen, m)
		}
		counts[m]++
	}

	best := firstSeen[0]
	for _, m := range firstSeen[1:] {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best
}
