package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/roshambo/internal/ui/layout"
)

// Screen is one view in the navigation stack.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
