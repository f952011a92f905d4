package game

import "fmt"

// Move is the constraint satisfied by every variant's action enum.
// Each variant defines its own uint8-backed type, so actions from
// different variants can never meet in the same RuleSet or Game.
type Move interface {
	~uint8
	fmt.Stringer
}

// Action is the move set shared by the Classic and Extended rule sets.
type Action uint8

const (
	Rock Action = iota
	Paper
	Scissors
	Lizard
	Spock
)

func (a Action) String() string {
	switch a {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	case Lizard:
		return "Lizard"
	case Spock:
		return "Spock"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// FireWaterAction is the move set of the Fire-Water variant.
type FireWaterAction uint8

const (
	FireWaterRock FireWaterAction = iota
	FireWaterPaper
	FireWaterScissors
	Fire
	Water
)

func (a FireWaterAction) String() string {
	switch a {
	case FireWaterRock:
		return "Rock"
	case FireWaterPaper:
		return "Paper"
	case FireWaterScissors:
		return "Scissors"
	case Fire:
		return "Fire"
	case Water:
		return "Water"
	}
	return fmt.Sprintf("FireWaterAction(%d)", uint8(a))
}
