package rules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/roshambo/internal/game"
	"github.com/abhisek/roshambo/internal/screen"
	"github.com/abhisek/roshambo/internal/ui/layout"
	"github.com/abhisek/roshambo/internal/ui/theme"
)

// RulesScreen shows the defeat table for each variant.
type RulesScreen struct {
	variant int
}

var _ screen.Screen = (*RulesScreen)(nil)
var _ screen.KeyHintProvider = (*RulesScreen)(nil)

// New creates the rules reference screen.
func New() *RulesScreen {
	return &RulesScreen{}
}

func (s *RulesScreen) Init() tea.Cmd {
	return nil
}

func (s *RulesScreen) Title() string {
	return "How to Win"
}

func (s *RulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Variant"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			s.variant = (s.variant + len(game.Variants) - 1) % len(game.Variants)
		case "right", "l", "tab":
			s.variant = (s.variant + 1) % len(game.Variants)
		}
	}
	return s, nil
}

func (s *RulesScreen) View(width, height int) string {
	v := game.Variants[s.variant]

	var b strings.Builder
	b.WriteString(theme.Title.Render(v.Label()))
	b.WriteString("\n\n")

	for _, m := range game.VariantMatchups(v) {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			theme.Body.Bold(true).Render(m.Winner),
			theme.Hint.Render("beats"),
			theme.Body.Render(m.Loser)))
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("‹ %d / %d ›", s.variant+1, len(game.Variants))))

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...))
	return layout.Center(card, width, height)
}
