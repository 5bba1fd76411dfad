package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/songbook/internal/ui"
)

// flash shows text in the footer until it expires. The returned command
// drives the expiry tick.
func (m *Model) flash(text string, kind ui.FlashType) tea.Cmd {
	m.log.Debug("flash", "type", int(kind), "text", text)
	m.footer.SetFlash(text, kind)
	return ui.FlashTick()
}

// flashError reports err in the footer. The reading session carries on.
func (m *Model) flashError(err error) tea.Cmd {
	return m.flash(err.Error(), ui.FlashError)
}

func (m *Model) flashWarning(text string) tea.Cmd {
	return m.flash(text, ui.FlashWarning)
}

func (m *Model) flashSuccess(text string) tea.Cmd {
	return m.flash(text, ui.FlashSuccess)
}
