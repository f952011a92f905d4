package strategy

import (
	"math/rand"
	"testing"

	"github.com/abhisek/roshambo/internal/game"
)

func TestPredictiveEmptyHistoryPicksFromValid(t *testing.T) {
	s := NewPredictive[game.Action](rand.New(rand.NewSource(1)))
	valid := game.NewClassic().ValidActions()

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

func TestPredictiveCountersFavorite(t *testing.T) {
	tests := []struct {
		name    string
		history []game.Action
		valid   []game.Action
		want    game.Action
	}{
		{
			name:    "rock favorite, classic actions",
			history: []game.Action{game.Rock, game.Rock, game.Paper},
			valid:   game.NewClassic().ValidActions(),
			want:    game.Paper,
		},
		{
			name:    "rock favorite, extended actions",
			history: []game.Action{game.Rock, game.Rock, game.Paper},
			valid:   game.NewExtended().ValidActions(),
			want:    game.Paper,
		},
		{
			name:    "paper favorite countered by scissors",
			history: []game.Action{game.Paper, game.Paper, game.Rock},
			valid:   game.NewClassic().ValidActions(),
			want:    game.Scissors,
		},
		{
			name:    "spock favorite countered by paper",
			history: []game.Action{game.Spock},
			valid:   game.NewExtended().ValidActions(),
			want:    game.Paper,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPredictive[game.Action](rand.New(rand.NewSource(1)))
			for _, h := range tt.history {
				s.UpdateContext(h, game.Rock)
			}
			if got := s.SelectAction(tt.valid); got != tt.want {
				t.Errorf("SelectAction = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPredictiveFireWaterUsesExtendedOrdinals(t *testing.T) {
	// Fire shares Lizard's ordinal, so the fixed Extended lookup
	// treats a Fire-heavy opponent as a Lizard-heavy one: the first
	// valid counter by ordinal is Rock.
	s := NewPredictive[game.FireWaterAction](rand.New(rand.NewSource(1)))
	s.UpdateContext(game.Fire, game.Water)

	got := s.SelectAction(game.NewFireWater().ValidActions())
	if got != game.FireWaterRock {
		t.Errorf("SelectAction = %s, want Rock", got)
	}
}

func TestMostFrequentTieBreaksFirstObserved(t *testing.T) {
	tests := []struct {
		name  string
		moves []game.Action
		want  game.Action
	}{
		{"single move", []game.Action{game.Rock}, game.Rock},
		{"clear favorite", []game.Action{game.Rock, game.Paper, game.Rock}, game.Rock},
		{"tie keeps first observed", []game.Action{game.Paper, game.Rock, game.Rock, game.Paper}, game.Paper},
		{"later majority wins", []game.Action{game.Paper, game.Rock, game.Rock}, game.Rock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mostFrequent(tt.moves); got != tt.want {
				t.Errorf("mostFrequent(%v) = %s, want %s", tt.moves, got, tt.want)
			}
		})
	}
}

func TestPredictiveHistoryGrowsPerRound(t *testing.T) {
	s := NewPredictive[game.Action](rand.New(rand.NewSource(1)))
	s.UpdateContext(game.Rock, game.Paper)
	s.UpdateContext(game.Scissors, game.Paper)

	h := s.History()
	if h.Rounds != 2 {
		t.Errorf("Rounds = %d, want 2", h.Rounds)
	}
	if len(h.HumanMoves) != 2 || len(h.ComputerMoves) != 2 {
		t.Errorf("history lengths = %d/%d, want 2/2", len(h.HumanMoves), len(h.ComputerMoves))
	}
	if h.HumanMoves[0] != game.Rock || h.ComputerMoves[1] != game.Paper {
		t.Error("history entries recorded out of order")
	}
}
