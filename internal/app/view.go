package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/songbook/internal/nav"
	"github.com/zhubert/songbook/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.list.SetSize(ctx.ListWidth, ctx.ContentHeight)
	m.lyrics.SetSize(ctx.DetailWidth, ctx.ContentHeight)

	// A single pane has nothing to tab to, so focus follows the visible pane
	if ctx.Narrow {
		if m.coord.State().MobileView == nav.ViewEditor {
			m.setFocus(FocusLyrics)
		} else {
			m.setFocus(FocusList)
		}
	}
}

// updateFooterContext picks the footer hints for the current state
func (m *Model) updateFooterContext() {
	state := m.coord.State()
	mode := ui.FooterList
	switch {
	case state.ShowWelcome:
		mode = ui.FooterWelcome
	case m.list.IsFilterMode():
		mode = ui.FooterFilter
	case m.focus == FocusLyrics:
		mode = ui.FooterEditor
	}
	m.footer.SetContext(mode, m.coord.EffectiveSong().HasAlternate(), m.twoPane())
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()
	ctx := ui.GetViewContext()
	state := m.coord.State()

	var body string
	switch {
	case state.ShowWelcome:
		body = m.welcome.View(ctx.TerminalWidth, ctx.ContentHeight)
	case ctx.Narrow && state.MobileView == nav.ViewEditor:
		body = m.lyrics.View()
	case ctx.Narrow:
		body = m.list.View()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.lyrics.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}
