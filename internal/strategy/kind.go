package strategy

import (
	"fmt"
	"math/rand"

	"github.com/abhisek/roshambo/internal/game"
)

// Kind identifies a strategy for configuration and display.
type Kind uint8

const (
	KindRandom Kind = iota
	KindPredictive
)

// Kinds lists the available strategies in menu order.
var Kinds = []Kind{KindRandom, KindPredictive}

func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindPredictive:
		return "predictive"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Label returns the strategy's display name.
func (k Kind) Label() string {
	switch k {
	case KindRandom:
		return "Random (picks any move)"
	case KindPredictive:
		return "Predictive (counters your favorite move)"
	}
	return k.String()
}

// ParseKind maps a flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "random":
		return KindRandom, nil
	case "predictive":
		return KindPredictive, nil
	}
	return 0, fmt.Errorf("unknown strategy %q (want random or predictive)", s)
}

// New builds a strategy of the given kind for move type M.
func New[M game.Move](k Kind, rng *rand.Rand) Strategy[M] {
	switch k {
	case KindPredictive:
		return NewPredictive[M](rng)
	default:
		return NewRandom[M](rng)
	}
}
