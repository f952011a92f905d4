package strategy

import (
	"math/rand"
	"testing"

	"github.com/abhisek/roshambo/internal/game"
)

func TestRandomSelectsFromValid(t *testing.T) {
	s := NewRandom[game.Action](rand.New(rand.NewSource(1)))
	valid := game.NewClassic().ValidActions()

	for i := 0; i < 100; i++ {
		got := s.SelectAction(valid)
		found := false
		for _, a := range valid {
			if a == got {
				found = true
			}
		}
		if !found {
			t.Fatalf("selected %s, not in valid actions", got)
		}
	}
}

func TestRandomUniformity(t *testing.T) {
	const draws = 10000
	s := NewRandom[game.Action](rand.New(rand.NewSource(42)))
	valid := game.NewClassic().ValidActions()

	counts := make(map[game.Action]int)
	for i := 0; i < draws; i++ {
		counts[s.SelectAction(valid)]++
	}

	// Expect each action near draws/3; 10% of the expectation is far
	// looser than the binomial spread at this sample size.
	expected := draws / len(valid)
	tolerance := expected / 10
	for _, a := range valid {
		if diff := counts[a] - expected; diff > tolerance || diff < -tolerance {
			t.Errorf("%s drawn %d times, want %d±%d", a, counts[a], expected, tolerance)
		}
	}
}
