package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/roshambo/internal/router"
	"github.com/abhisek/roshambo/internal/screen"
	"github.com/abhisek/roshambo/internal/ui/layout"
	"github.com/abhisek/roshambo/internal/ui/theme"
)

const (
	tickInterval = 150 * time.Millisecond
	totalDur     = 1800 * time.Millisecond
)

// handFrames cycle through the shake-and-throw of a round.
var handFrames = []string{"✊", "✊", "✊", "✋", "✌️"}

const banner = ` ___  ___  ___ _  _   _   __  __ ___  ___
| _ \/ _ \/ __| || | /_\ |  \/  | _ )/ _ \
|   / (_) \__ \ __ |/ _ \| |\/| | _ \ (_) |
|_|_\\___/|___/_||_/_/ \_\_|  |_|___/\___/`

type tickMsg time.Time

// WelcomeScreen shows a short throw animation before the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced
// by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	frame := handFrames[min(w.tickCount/2, len(handFrames)-1)]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(banner))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(lipgloss.Width(banner)).
		Render(frame + "   vs   " + frame))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.
		Width(lipgloss.Width(banner)).
		Render("rock · paper · scissors — and friends"))

	return layout.Center(b.String(), width, height)
}
