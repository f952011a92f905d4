package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/roshambo/internal/game"
)

var (
	// ErrGameOver is returned by PlayRound once the termination
	// condition has been met.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidTarget is returned when a game is constructed with a
	// non-positive target.
	ErrInvalidTarget = errors.New("target must be positive")
)

// RoundResult is the per-round event handed to output collaborators.
// Scores are the running totals after the round.
type RoundResult[M game.Move] struct {
	Round          int
	HumanAction    M
	ComputerAction M
	Outcome        Outcome
	HumanScore     int
	ComputerScore  int
}

// Summary is the end-of-game event.
type Summary struct {
	ID            uuid.UUID
	RoundsPlayed  int
	HumanName     string
	ComputerName  string
	HumanScore    int
	ComputerScore int
	Result        Result
}

// Game is one session: a rule set, two players, a termination rule,
// and the scores. It is exclusively owned by the loop driving it.
type Game[M game.Move] struct {
	id           uuid.UUID
	rules        *game.RuleSet[M]
	human        *HumanPlayer[M]
	computer     *ComputerPlayer[M]
	mode         Mode
	target       int
	roundsPlayed int
	scores       map[string]int
}

// New creates a game session with all scores at zero.
func New[M game.Move](rules *game.RuleSet[M], human *HumanPlayer[M], computer *ComputerPlayer[M], mode Mode, target int) (*Game[M], error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, target)
	}
	return &Game[M]{
		id:       uuid.New(),
		rules:    rules,
		human:    human,
		computer: computer,
		mode:     mode,
		target:   target,
		scores: map[string]int{
			human.Name():    0,
			computer.Name(): 0,
		},
	}, nil
}

// ID returns the session id.
func (g *Game[M]) ID() uuid.UUID {
	return g.id
}

// Rules returns the session's rule set.
func (g *Game[M]) Rules() *game.RuleSet[M] {
	return g.rules
}

// PlayRound runs one round: both moves are collected before
// resolution, so neither seat sees the other's move this round. The
// computer's strategy is updated unconditionally, ties included.
func (g *Game[M]) PlayRound() (RoundResult[M], error) {
	if g.IsOver() {
		return RoundResult[M]{}, ErrGameOver
	}

	valid := g.rules.ValidActions()
	humanAction := g.human.SelectAction(valid)
	computerAction := g.computer.SelectAction(valid)

	outcome := Tie
	switch {
	case humanAction == computerAction:
	case g.rules.Defeats(humanAction, computerAction):
		outcome = HumanWin
		g.scores[g.human.Name()]++
	default:
		outcome = ComputerWin
		g.scores[g.computer.Name()]++
	}

	g.computer.Update(humanAction, computerAction)
	g.roundsPlayed++

	return RoundResult[M]{
		Round:          g.roundsPlayed,
		HumanAction:    humanAction,
		ComputerAction: computerAction,
		Outcome:        outcome,
		HumanScore:     g.scores[g.human.Name()],
		ComputerScore:  g.scores[g.computer.Name()],
	}, nil
}

// IsOver reports whether the termination condition holds. It is
// computed from the scores and round count; the engine keeps no
// separate "over" flag.
func (g *Game[M]) IsOver() bool {
	switch g.mode {
	case FirstTo:
		for _, score := range g.scores {
			if score >= g.target {
				return true
			}
		}
		return false
	case FixedRounds:
		return g.roundsPlayed >= g.target
	}
	return false
}

// RoundsPlayed returns the number of completed rounds.
func (g *Game[M]) RoundsPlayed() int {
	return g.roundsPlayed
}

// Score returns the named player's win count.
func (g *Game[M]) Score(name string) int {
	return g.scores[name]
}

// Summary reports the final standing. Valid at any point, but meant
// to be read once IsOver is true.
func (g *Game[M]) Summary() Summary {
	humanScore := g.scores[g.human.Name()]
	computerScore := g.scores[g.computer.Name()]

	result := Draw
	switch {
	case humanScore > computerScore:
		result = Win
	case humanScore < computerScore:
		result = Loss
	}

	return Summary{
		ID:            g.id,
		RoundsPlayed:  g.roundsPlayed,
		HumanName:     g.human.Name(),
		ComputerName:  g.computer.Name(),
		HumanScore:    humanScore,
		ComputerScore: computerScore,
		Result:        result,
	}
}
