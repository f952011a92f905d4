package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/roshambo/internal/engine"
	"github.com/abhisek/roshambo/internal/router"
	"github.com/abhisek/roshambo/internal/screen"
	"github.com/abhisek/roshambo/internal/session"
	"github.com/abhisek/roshambo/internal/ui/layout"
	"github.com/abhisek/roshambo/internal/ui/theme"
)

// maxLogRows bounds the round log so long matches still fit the frame.
const maxLogRows = 10

// SummaryScreen shows the final standing and the round log.
type SummaryScreen struct {
	sum    session.Summary
	rounds []session.Round
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary for a finished session.
func New(sess *session.Session) *SummaryScreen {
	return &SummaryScreen{
		sum:    sess.Summary(),
		rounds: sess.Rounds(),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.HomeScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	var headline string
	switch s.sum.Result {
	case engine.Win:
		headline = theme.RoundWon.Render("You won the game!")
	case engine.Loss:
		headline = theme.RoundLost.Render("Computer won the game!")
	default:
		headline = theme.RoundTied.Render("It's a draw!")
	}
	b.WriteString(headline)
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Final score: %s %d — %s %d over %d rounds",
		s.sum.HumanName, s.sum.HumanScore,
		s.sum.ComputerName, s.sum.ComputerScore,
		s.sum.RoundsPlayed,
	)))
	b.WriteString("\n\n")

	b.WriteString(s.renderLog())

	card := theme.Card.Render(b.String())
	return layout.Center(card, width, height)
}

func (s *SummaryScreen) renderLog() string {
	rounds := s.rounds
	skipped := 0
	if len(rounds) > maxLogRows {
		skipped = len(rounds) - maxLogRows
		rounds = rounds[skipped:]
	}

	var lines []string
	if skipped > 0 {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("… %d earlier rounds", skipped)))
	}
	for _, r := range rounds {
		mark := theme.RoundTied.Render("=")
		switch r.Outcome {
		case engine.HumanWin:
			mark = theme.RoundWon.Render("+")
		case engine.ComputerWin:
			mark = theme.RoundLost.Render("−")
		}
		lines = append(lines, fmt.Sprintf("%s  %2d. %s vs %s",
			mark, r.Number,
			theme.Body.Render(r.HumanMove),
			theme.Body.Render(r.ComputerMove)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
