// Package app hosts the root Bubble Tea model: window sizing, the
// header/footer frame, global keys, and the screen router.
package app

import (
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/roshambo/internal/router"
	"github.com/abhisek/roshambo/internal/screen"
	"github.com/abhisek/roshambo/internal/screens/home"
	"github.com/abhisek/roshambo/internal/screens/welcome"
	"github.com/abhisek/roshambo/internal/ui/layout"
)

// Options carries the dependencies screens need.
type Options struct {
	// Rand seeds the computer's strategies. Nil means time-seeded;
	// simulate and tests pass a fixed seed.
	Rand *rand.Rand

	// SkipSplash starts directly on the home screen.
	SkipSplash bool
}

// ScoreboardProvider is implemented by screens that want the running
// score shown in the header.
type ScoreboardProvider interface {
	Scoreboard() layout.Scoreboard
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen { return home.New(opts.Rand) }

	var root screen.Screen
	if opts.SkipSplash {
		root = homeFactory()
	} else {
		root = welcome.New(homeFactory)
	}
	return AppModel{router: router.New(root)}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var board layout.Scoreboard
	if sp, ok := active.(ScoreboardProvider); ok {
		board = sp.Scoreboard()
	}

	header := layout.RenderHeader(title, board, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
		if m.router.Depth() > 1 {
			footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
