package game

// Victory tables for the built-in variants. Keys are the variant's
// action domain; values are the actions each key defeats.

var classicVictories = map[Action][]Action{
	Rock:     {Scissors},
	Paper:    {Rock},
	Scissors: {Paper},
}

var extendedVictories = map[Action][]Action{
	Scissors: {Paper, Lizard},
	Paper:    {Spock, Rock},
	Rock:     {Scissors, Lizard},
	Lizard:   {Spock, Paper},
	Spock:    {Scissors, Rock},
}

var fireWaterVictories = map[FireWaterAction][]FireWaterAction{
	FireWaterRock:     {FireWaterScissors, Fire},
	FireWaterPaper:    {FireWaterRock, Water},
	FireWaterScissors: {FireWaterPaper, Water},
	Fire:              {FireWaterScissors, FireWaterPaper},
	Water:             {Fire, FireWaterRock},
}

var (
	classicRules   = mustRuleSet(classicVictories)
	extendedRules  = mustRuleSet(extendedVictories)
	fireWaterRules = mustRuleSet(fireWaterVictories)
)

// NewClassic returns the three-action rock-paper-scissors rule set.
func NewClassic() *RuleSet[Action] {
	return classicRules
}

// NewExtended returns the five-action rock-paper-scissors-lizard-Spock
// rule set.
func NewExtended() *RuleSet[Action] {
	return extendedRules
}

// NewFireWater returns the five-action fire-water variant rule set.
func NewFireWater() *RuleSet[FireWaterAction] {
	return fireWaterRules
}

func mustRuleSet[M Move](victories map[M][]M) *RuleSet[M] {
	rs, err := NewRuleSet(victories)
	if err != nil {
		panic(err)
	}
	return rs
}

// ExtendedDefeatsOrdinal reports whether the Extended table lists a
// victory of ordinal a over ordinal b. This is the fixed lookup the
// predictive strategy uses to counter the opponent's favorite move,
// whatever rule set is actually in play.
func ExtendedDefeatsOrdinal(a, b uint8) bool {
	return extendedRules.Defeats(Action(a), Action(b))
}

// Matchup is one "winner defeats loser" entry, in display terms.
type Matchup struct {
	Winner string
	Loser  string
}

// VariantMatchups lists every victory of a variant's table, winners in
// action order. Used by the rules reference screen and command.
func VariantMatchups(v Variant) []Matchup {
	switch v {
	case Extended:
		return matchups(extendedRules)
	case FireWater:
		return matchups(fireWaterRules)
	default:
		return matchups(classicRules)
	}
}

func matchups[M Move](rs *RuleSet[M]) []Matchup {
	var out []Matchup
	for _, a := range rs.ValidActions() {
		for _, b := range rs.victories[a] {
			out = append(out, Matchup{Winner: a.String(), Loser: b.String()})
		}
	}
	return out
}
