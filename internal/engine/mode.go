package engine

import "fmt"

// Mode is a session's termination rule.
type Mode uint8

const (
	// FirstTo ends the game once either score reaches the target.
	FirstTo Mode = iota
	// FixedRounds ends the game after target rounds.
	FixedRounds
)

// Modes lists the modes in menu order.
var Modes = []Mode{FirstTo, FixedRounds}

func (m Mode) String() string {
	switch m {
	case FirstTo:
		return "first-to"
	case FixedRounds:
		return "fixed"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Label returns the mode's display name.
func (m Mode) Label() string {
	switch m {
	case FirstTo:
		return "First to N wins"
	case FixedRounds:
		return "Fixed number of rounds"
	}
	return m.String()
}

// ParseMode maps a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "first-to", "first_to", "firstto":
		return FirstTo, nil
	case "fixed":
		return FixedRounds, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want first-to or fixed)", s)
}

// Outcome is the resolution of a single round, from the human's side
// of the table.
type Outcome uint8

const (
	Tie Outcome = iota
	HumanWin
	ComputerWin
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case HumanWin:
		return "human"
	case ComputerWin:
		return "computer"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Result is the final standing of a finished game, from the human's
// perspective.
type Result uint8

const (
	Draw Result = iota
	Win
	Loss
)

func (r Result) String() string {
	switch r {
	case Draw:
		return "draw"
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return fmt.Sprintf("Result(%d)", uint8(r))
}
