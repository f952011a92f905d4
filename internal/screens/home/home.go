package home

import (
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/roshambo/internal/router"
	"github.com/abhisek/roshambo/internal/screen"
	"github.com/abhisek/roshambo/internal/screens/rules"
	"github.com/abhisek/roshambo/internal/screens/setup"
	"github.com/abhisek/roshambo/internal/ui/components"
	"github.com/abhisek/roshambo/internal/ui/layout"
	"github.com/abhisek/roshambo/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. rng seeds computer strategies for
// sessions started from here; nil means time-seeded.
func New(rng *rand.Rand) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(rng)}
			}
		}},
		{Label: "HOW TO WIN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: rules.New()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("ROSHAMBO"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("beat the machine"))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	return layout.Center(b.String(), width, height)
}
