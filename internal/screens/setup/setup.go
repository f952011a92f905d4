package setup

import (
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/roshambo/internal/engine"
	"github.com/abhisek/roshambo/internal/game"
	"github.com/abhisek/roshambo/internal/router"
	"github.com/abhisek/roshambo/internal/screen"
	"github.com/abhisek/roshambo/internal/screens/match"
	"github.com/abhisek/roshambo/internal/session"
	"github.com/abhisek/roshambo/internal/strategy"
	"github.com/abhisek/roshambo/internal/ui/components"
	"github.com/abhisek/roshambo/internal/ui/layout"
	"github.com/abhisek/roshambo/internal/ui/theme"
)

// step is the wizard position.
type step int

const (
	stepVariant step = iota
	stepStrategy
	stepMode
	stepTarget
)

// SetupScreen walks through variant, opponent strategy, mode, and
// target before starting a match.
type SetupScreen struct {
	rng  *rand.Rand
	cfg  session.Config
	step step

	menu   components.Menu
	target components.TextInput
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)

// New creates the setup wizard with defaults preselected.
func New(rng *rand.Rand) *SetupScreen {
	s := &SetupScreen{
		rng: rng,
		cfg: session.DefaultConfig(),
	}
	s.menu = s.variantMenu()
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Game"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepTarget {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓ / 1-9", Description: "Choose"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

// wizard step messages; emitted by menu actions, handled in Update so
// the menu swap happens outside the menu's own update.
type variantChosenMsg struct{ v game.Variant }
type strategyChosenMsg struct{ k strategy.Kind }
type modeChosenMsg struct{ m engine.Mode }

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case variantChosenMsg:
		s.cfg.Variant = msg.v
		s.advance(stepStrategy)
		return s, nil
	case strategyChosenMsg:
		s.cfg.Strategy = msg.k
		s.advance(stepMode)
		return s, nil
	case modeChosenMsg:
		s.cfg.Mode = msg.m
		s.advance(stepTarget)
		return s, nil
	}

	if s.step == stepTarget {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return s, s.submitTarget()
		}
		var cmd tea.Cmd
		s.target, cmd = s.target.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetupScreen) variantMenu() components.Menu {
	items := make([]components.MenuItem, len(game.Variants))
	for i, v := range game.Variants {
		v := v
		items[i] = components.MenuItem{Label: v.Label(), Action: func() tea.Cmd {
			return func() tea.Msg { return variantChosenMsg{v} }
		}}
	}
	m := components.NewMenu(items)
	m.Numbered = true
	return m
}

func (s *SetupScreen) strategyMenu() components.Menu {
	items := make([]components.MenuItem, len(strategy.Kinds))
	for i, k := range strategy.Kinds {
		k := k
		items[i] = components.MenuItem{Label: k.Label(), Action: func() tea.Cmd {
			return func() tea.Msg { return strategyChosenMsg{k} }
		}}
	}
	m := components.NewMenu(items)
	m.Numbered = true
	return m
}

func (s *SetupScreen) modeMenu() components.Menu {
	items := make([]components.MenuItem, len(engine.Modes))
	for i, m := range engine.Modes {
		m := m
		items[i] = components.MenuItem{Label: m.Label(), Action: func() tea.Cmd {
			return func() tea.Msg { return modeChosenMsg{m} }
		}}
	}
	m := components.NewMenu(items)
	m.Numbered = true
	return m
}

func (s *SetupScreen) advance(next step) {
	s.step = next
	switch next {
	case stepStrategy:
		s.menu = s.strategyMenu()
	case stepMode:
		s.menu = s.modeMenu()
	case stepTarget:
		s.target = components.NewTextInput("3", true, 4)
	}
}

// submitTarget validates the target and starts the match. Bad input
// clears the field and re-prompts; it never leaves this screen.
func (s *SetupScreen) submitTarget() tea.Cmd {
	n, err := s.target.NumericValue()
	if err != nil || n <= 0 {
		s.target.Reject("Enter a number greater than zero.")
		return nil
	}
	s.cfg.Target = n

	sess, err := session.New(s.cfg, s.rng)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	matchScreen := match.New(sess)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: matchScreen}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	switch s.step {
	case stepVariant:
		b.WriteString(theme.Title.Render("Choose game type"))
	case stepStrategy:
		b.WriteString(theme.Title.Render("Choose your opponent"))
	case stepMode:
		b.WriteString(theme.Title.Render("Choose game mode"))
	case stepTarget:
		if s.cfg.Mode == engine.FirstTo {
			b.WriteString(theme.Title.Render("Play to how many wins?"))
		} else {
			b.WriteString(theme.Title.Render("How many rounds?"))
		}
	}
	b.WriteString("\n\n")

	if s.step == stepTarget {
		b.WriteString(s.target.View())
	} else {
		b.WriteString(s.menu.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.RoundLost.Render(s.errMsg))
	}

	return layout.Center(b.String(), width, height)
}
