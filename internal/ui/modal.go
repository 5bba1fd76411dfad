package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/songbook/internal/ui/modals"
)

// Modal states live in the modals package; these aliases let the app
// refer to them through ui like the rest of its components.
type (
	ModalState               = modals.ModalState
	ConfirmExitState         = modals.ConfirmExitState
	ExitLabels               = modals.ExitLabels
	HelpState                = modals.HelpState
	HelpSection              = modals.HelpSection
	HelpShortcut             = modals.HelpShortcut
	HelpShortcutTriggeredMsg = modals.HelpShortcutTriggeredMsg
	ThemeState               = modals.ThemeState
)

var (
	NewConfirmExitState      = modals.NewConfirmExitState
	NewHelpStateFromSections = modals.NewHelpStateFromSections
)

// NewThemeState builds the theme picker over the built-in themes.
func NewThemeState(current ThemeName) *ThemeState {
	names := ThemeNames()
	opts := make([]modals.ThemeOption, len(names))
	for i, name := range names {
		opts[i] = modals.ThemeOption{Key: string(name), Name: GetTheme(name).Name}
	}
	return modals.NewThemeState(opts, string(current))
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centred on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	width := ModalWidth
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		width = pw.PreferredWidth()
	}
	width = min(width, screenWidth-2)

	if sized, ok := m.State.(modals.ModalWithSize); ok {
		// Border and padding take 6 columns and 4 rows
		sized.SetSize(width-6, min(screenHeight-4, HelpModalMaxVisible+6))
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Width(width).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
