package match

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/roshambo/internal/engine"
	"github.com/abhisek/roshambo/internal/router"
	"github.com/abhisek/roshambo/internal/screen"
	"github.com/abhisek/roshambo/internal/screens/summary"
	"github.com/abhisek/roshambo/internal/session"
	"github.com/abhisek/roshambo/internal/ui/components"
	"github.com/abhisek/roshambo/internal/ui/layout"
	"github.com/abhisek/roshambo/internal/ui/theme"
)

// MatchScreen plays one session round by round.
type MatchScreen struct {
	sess *session.Session
	menu components.Menu

	last            *session.Round
	showingFeedback bool
	errMsg          string
}

var _ screen.Screen = (*MatchScreen)(nil)
var _ screen.KeyHintProvider = (*MatchScreen)(nil)

// New creates a match screen over a fresh session.
func New(sess *session.Session) *MatchScreen {
	s := &MatchScreen{sess: sess}

	actions := sess.Actions()
	items := make([]components.MenuItem, len(actions))
	for i, name := range actions {
		i := i
		items[i] = components.MenuItem{Label: name, Action: func() tea.Cmd {
			return func() tea.Msg { return moveChosenMsg{choice: i} }
		}}
	}
	menu := components.NewMenu(items)
	menu.Numbered = true
	s.menu = menu
	return s
}

func (s *MatchScreen) Init() tea.Cmd {
	return nil
}

func (s *MatchScreen) Title() string {
	return "Match"
}

// Scoreboard feeds the header's running score.
func (s *MatchScreen) Scoreboard() layout.Scoreboard {
	board := layout.Scoreboard{Active: true, Round: len(s.sess.Rounds()) + 1}
	if s.last != nil {
		board.HumanScore = s.last.HumanScore
		board.ComputerScore = s.last.ComputerScore
		if s.showingFeedback {
			board.Round = s.last.Number
		}
	}
	return board
}

func (s *MatchScreen) KeyHints() []layout.KeyHint {
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓ / 1-9", Description: "Choose your move"},
		{Key: "Enter", Description: "Throw"},
		{Key: "Esc", Description: "Forfeit"},
	}
}

// moveChosenMsg carries the human's pick out of the action menu.
type moveChosenMsg struct {
	choice int
}

func (s *MatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(moveChosenMsg); ok {
		s.playRound(msg.choice)
		return s, nil
	}

	if s.showingFeedback {
		if _, ok := msg.(tea.KeyPressMsg); ok {
			return s.dismissFeedback()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *MatchScreen) playRound(choice int) {
	r, err := s.sess.Play(choice)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.last = &r
	s.errMsg = ""
	s.showingFeedback = true
}

func (s *MatchScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	if s.sess.IsOver() {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(s.sess)}
		}
	}
	return s, nil
}

func (s *MatchScreen) View(width, height int) string {
	if s.showingFeedback && s.last != nil {
		return s.renderFeedback(width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Choose your move"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.RoundLost.Render(s.errMsg))
	}

	return layout.Center(b.String(), width, height)
}

func (s *MatchScreen) renderFeedback(width, height int) string {
	r := s.last

	var verdict string
	switch r.Outcome {
	case engine.HumanWin:
		verdict = theme.RoundWon.Render("You win this round!")
	case engine.ComputerWin:
		verdict = theme.RoundLost.Render("Computer wins this round!")
	default:
		verdict = theme.RoundTied.Render("It's a tie!")
	}

	lines := []string{
		theme.Body.Render(fmt.Sprintf("You chose %s", r.HumanMove)),
		theme.Body.Render(fmt.Sprintf("Computer chose %s", r.ComputerMove)),
		"",
		verdict,
		"",
		theme.Hint.Render(fmt.Sprintf("Score: You %d — Computer %d", r.HumanScore, r.ComputerScore)),
	}

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return layout.Center(card, width, height)
}
