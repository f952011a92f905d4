package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/roshambo/internal/engine"
	"github.com/abhisek/roshambo/internal/game"
	"github.com/abhisek/roshambo/internal/strategy"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Target = 0
	assert.Error(t, cfg.Validate())

	cfg.Target = -3
	assert.Error(t, cfg.Validate())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target = 0
	_, err := New(cfg, nil)
	assert.Error(t, err)
}

func TestActionsPerVariant(t *testing.T) {
	tests := []struct {
		variant game.Variant
		want    []string
	}{
		{game.Classic, []string{"Rock", "Paper", "Scissors"}},
		{game.Extended, []string{"Rock", "Paper", "Scissors", "Lizard", "Spock"}},
		{game.FireWater, []string{"Rock", "Paper", "Scissors", "Fire", "Water"}},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Variant = tt.variant
		s, err := New(cfg, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.Actions(), "variant %s", tt.variant)
	}
}

func TestPlayRejectsOutOfRangeChoice(t *testing.T) {
	s, err := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = s.Play(-1)
	assert.Error(t, err)
	_, err = s.Play(3)
	assert.Error(t, err)
	assert.Empty(t, s.Rounds(), "failed plays must not enter the history")
}

func TestPlayThroughFixedGame(t *testing.T) {
	cfg := Config{
		Variant:  game.Classic,
		Strategy: strategy.KindRandom,
		Mode:     engine.FixedRounds,
		Target:   3,
	}
	s, err := New(cfg, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.False(t, s.IsOver())
		r, err := s.Play(0) // always Rock
		require.NoError(t, err)
		assert.Equal(t, i+1, r.Number)
		assert.Equal(t, "Rock", r.HumanMove)
	}
	assert.True(t, s.IsOver())
	assert.Len(t, s.Rounds(), 3)

	_, err = s.Play(0)
	assert.ErrorIs(t, err, engine.ErrGameOver)

	sum := s.Summary()
	assert.Equal(t, 3, sum.RoundsPlayed)
	assert.Equal(t, s.ID(), sum.ID)
	assert.LessOrEqual(t, sum.HumanScore+sum.ComputerScore, 3)
}

func TestPredictiveSessionCountersRepeatedMove(t *testing.T) {
	cfg := Config{
		Variant:  game.Classic,
		Strategy: strategy.KindPredictive,
		Mode:     engine.FixedRounds,
		Target:   5,
	}
	s, err := New(cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	// Round 1: no history, anything goes.
	_, err = s.Play(0)
	require.NoError(t, err)

	// From round 2 the computer counters the all-Rock human with Paper.
	for round := 2; round <= 5; round++ {
		r, err := s.Play(0)
		require.NoError(t, err)
		assert.Equal(t, "Paper", r.ComputerMove, "round %d", round)
		assert.Equal(t, engine.ComputerWin, r.Outcome, "round %d", round)
	}
}
