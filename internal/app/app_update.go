package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/songbook/internal/keys"
	"github.com/zhubert/songbook/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled by handleKeyPress, let it fall through to focused panel

	case ui.SelectSongMsg:
		return m.handleSelectSong(msg)

	case ui.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case ui.FlashTickMsg:
		// Check if flash message has expired
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		// Flash still active, continue ticking
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	if m.coord.State().ShowWelcome {
		return m, nil
	}

	// Mouse wheel scrolls the lyrics wherever focus is
	if _, ok := msg.(tea.MouseWheelMsg); ok && m.lyricsVisible() {
		lyrics, cmd := m.lyrics.Update(msg)
		m.lyrics = lyrics
		return m, cmd
	}

	// Update focused panel for other messages
	if m.focus == FocusList {
		list, cmd := m.list.Update(msg)
		m.list = list
		cmds = append(cmds, cmd)
	} else {
		lyrics, cmd := m.lyrics.Update(msg)
		m.lyrics = lyrics
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused panel for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "focus", m.focus.String(), "modalVisible", m.modal.IsVisible())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// ctrl+c always reaches the exit guard, even from the filter input
	if key == keys.CtrlC {
		return shortcutQuit(m)
	}

	// The welcome layer only answers to its button
	if m.coord.State().ShowWelcome && key == keys.Enter {
		m.coord.Start()
		m.updateSizes()
		return m, nil
	}

	// Try executing from shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	// Key not handled - return nil to signal it should fall through to focused panel
	return nil, nil
}

// handleSelectSong hands a list activation to the coordinator
func (m *Model) handleSelectSong(msg ui.SelectSongMsg) (tea.Model, tea.Cmd) {
	if err := m.coord.SelectSong(msg.ID); err != nil {
		m.log.Warn("selection rejected", "songID", msg.ID, "error", err)
		return m, m.flashError(err)
	}
	return m, nil
}
