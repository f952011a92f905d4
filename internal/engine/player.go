// Package engine drives a single game session: two players, a rule
// set, and the round-by-round state machine.
package engine

import (
	"github.com/abhisek/roshambo/internal/game"
	"github.com/abhisek/roshambo/internal/strategy"
)

// Player is one seat at the table. SelectAction must return a member
// of valid; enforcing that (prompt loops, menu bounds) is the caller's
// job, not the engine's.
type Player[M game.Move] interface {
	Name() string
	SelectAction(valid []M) M
}

// ChooseFunc supplies the human's move for a round. The TUI backs it
// with the match screen's selection; simulate backs it with a script
// or a strategy.
type ChooseFunc[M game.Move] func(valid []M) M

// HumanPlayer is the human seat, fed by an external collaborator.
type HumanPlayer[M game.Move] struct {
	name   string
	choose ChooseFunc[M]
}

// NewHumanPlayer creates the human seat. An empty name defaults to
// "You".
func NewHumanPlayer[M game.Move](name string, choose ChooseFunc[M]) *HumanPlayer[M] {
	if name == "" {
		name = "You"
	}
	return &HumanPlayer[M]{name: name, choose: choose}
}

func (p *HumanPlayer[M]) Name() string {
	return p.name
}

func (p *HumanPlayer[M]) SelectAction(valid []M) M {
	return p.choose(valid)
}

// ComputerPlayer is the computer seat, backed by a Strategy.
type ComputerPlayer[M game.Move] struct {
	name     string
	strategy strategy.Strategy[M]
}

// NewComputerPlayer creates the computer seat. An empty name defaults
// to "Computer".
func NewComputerPlayer[M game.Move](name string, s strategy.Strategy[M]) *ComputerPlayer[M] {
	if name == "" {
		name = "Computer"
	}
	return &ComputerPlayer[M]{name: name, strategy: s}
}

func (p *ComputerPlayer[M]) Name() string {
	return p.name
}

func (p *ComputerPlayer[M]) SelectAction(valid []M) M {
	return p.strategy.SelectAction(valid)
}

// Update forwards the resolved round to the strategy's context.
func (p *ComputerPlayer[M]) Update(human, computer M) {
	p.strategy.UpdateContext(human, computer)
}
