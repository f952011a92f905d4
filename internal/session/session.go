// Package session wraps the typed game core behind a display-oriented
// facade, so screens and commands can run any variant without carrying
// the move type parameter around.
package session

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/abhisek/roshambo/internal/engine"
	"github.com/abhisek/roshambo/internal/game"
	"github.com/abhisek/roshambo/internal/strategy"
)

// Round is one resolved round, in display terms.
type Round struct {
	Number        int
	HumanMove     string
	ComputerMove  string
	Outcome       engine.Outcome
	HumanScore    int
	ComputerScore int
}

// Summary is the final standing of a session.
type Summary struct {
	ID            uuid.UUID
	HumanName     string
	ComputerName  string
	HumanScore    int
	ComputerScore int
	RoundsPlayed  int
	Result        engine.Result
}

// Session is one interactive game. The human's move arrives as an
// index into Actions(); everything else stays inside the typed game
// behind the closures.
type Session struct {
	cfg     Config
	id      uuid.UUID
	actions []string
	rounds  []Round

	play    func(choice int) (Round, error)
	isOver  func() bool
	summary func() Summary
}

// New builds a session for the configured variant. A nil rng gives
// the computer a time-seeded source.
func New(cfg Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Variant {
	case game.Extended:
		return build(cfg, game.NewExtended(), rng)
	case game.FireWater:
		return build(cfg, game.NewFireWater(), rng)
	default:
		return build(cfg, game.NewClassic(), rng)
	}
}

// build pins the move type parameter and closes the typed game over
// non-generic accessors.
func build[M game.Move](cfg Config, rules *game.RuleSet[M], rng *rand.Rand) (*Session, error) {
	valid := rules.ValidActions()

	// The human seat replays whatever index Play was last given; Play
	// bounds-checks before the engine asks for it.
	var pending int
	human := engine.NewHumanPlayer("You", func(actions []M) M {
		return actions[pending]
	})
	computer := engine.NewComputerPlayer("Computer", strategy.New[M](cfg.Strategy, rng))

	g, err := engine.New(rules, human, computer, cfg.Mode, cfg.Target)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		id:      g.ID(),
		actions: make([]string, len(valid)),
	}
	for i, a := range valid {
		s.actions[i] = a.String()
	}

	s.play = func(choice int) (Round, error) {
		if choice < 0 || choice >= len(valid) {
			return Round{}, fmt.Errorf("choice %d out of range [0,%d)", choice, len(valid))
		}
		pending = choice
		rr, err := g.PlayRound()
		if err != nil {
			return Round{}, err
		}
		return Round{
			Number:        rr.Round,
			HumanMove:     rr.HumanAction.String(),
			ComputerMove:  rr.ComputerAction.String(),
			Outcome:       rr.Outcome,
			HumanScore:    rr.HumanScore,
			ComputerScore: rr.ComputerScore,
		}, nil
	}
	s.isOver = g.IsOver
	s.summary = func() Summary {
		sum := g.Summary()
		return Summary{
			ID:            sum.ID,
			HumanName:     sum.HumanName,
			ComputerName:  sum.ComputerName,
			HumanScore:    sum.HumanScore,
			ComputerScore: sum.ComputerScore,
			RoundsPlayed:  sum.RoundsPlayed,
			Result:        sum.Result,
		}
	}
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Config returns the configuration the session was built from.
func (s *Session) Config() Config {
	return s.cfg
}

// Actions returns the variant's move names in selection order. The
// order is stable for the life of the session.
func (s *Session) Actions() []string {
	return append([]string(nil), s.actions...)
}

// Play resolves one round with the human playing Actions()[choice].
func (s *Session) Play(choice int) (Round, error) {
	r, err := s.play(choice)
	if err != nil {
		return Round{}, err
	}
	s.rounds = append(s.rounds, r)
	return r, nil
}

// IsOver reports whether the session has reached its termination
// condition.
func (s *Session) IsOver() bool {
	return s.isOver()
}

// Rounds returns the rounds played so far, oldest first. The history
// lives only as long as the session.
func (s *Session) Rounds() []Round {
	return append([]Round(nil), s.rounds...)
}

// Summary returns the final standing.
func (s *Session) Summary() Summary {
	return s.summary()
}
