package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/songbook/internal/keys"
	"github.com/zhubert/songbook/internal/ui"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *ui.ConfirmExitState:
		return m.handleConfirmExitModal(key, msg, s)
	case *ui.ThemeState:
		return m.handleThemeModal(key, msg, s)
	case *ui.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleConfirmExitModal handles key events for the exit guard prompt.
func (m *Model) handleConfirmExitModal(key string, msg tea.KeyPressMsg, state *ui.ConfirmExitState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, "n":
		m.modal.Hide()
		return m, nil
	case "y", keys.CtrlC:
		m.log.Info("reading session ended", "confirmed", true)
		return m, tea.Quit
	case keys.Enter:
		if state.Leave() {
			m.log.Info("reading session ended", "confirmed", true)
			return m, tea.Quit
		}
		m.modal.Hide()
		return m, nil
	}
	// Forward choice keys (←/→, h/l, tab) to the form
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleThemeModal handles key events for the theme picker.
func (m *Model) handleThemeModal(key string, msg tea.KeyPressMsg, state *ui.ThemeState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !state.ThemeChanged() {
			return m, nil
		}
		selected := ui.ThemeName(state.GetSelectedTheme())
		ui.SetTheme(selected)
		m.config.SetTheme(string(selected))
		if err := m.config.Save(); err != nil {
			m.log.Warn("failed to save theme preference", "theme", selected, "error", err)
			return m, m.flashWarning("Theme applied but not saved: " + err.Error())
		}
		return m, m.flashSuccess("Theme changed to " + ui.CurrentTheme().Name)
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *ui.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		// Trigger the selected shortcut
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return ui.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	// Forward navigation keys to the modal
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It normalizes display keys and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return m, nil // Display-only shortcut, no action
	}

	result, cmd, _ := m.ExecuteShortcut(normalizedKey)
	return result, cmd
}
