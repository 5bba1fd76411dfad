package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/songbook/internal/locale"
	"github.com/zhubert/songbook/internal/song"
)

// Welcome is the landing layer shown until the songbook is opened.
type Welcome struct {
	tr   *locale.Translator
	meta song.BookletMetadata
}

// NewWelcome creates the landing layer for a booklet
func NewWelcome(tr *locale.Translator, meta song.BookletMetadata) *Welcome {
	return &Welcome{tr: tr, meta: meta}
}

// View renders the layer centred in a width x height area
func (w *Welcome) View(width, height int) string {
	snow := lipgloss.NewStyle().Foreground(ColorTextMuted).Render("*  .  *  .  *")

	lines := []string{
		snow,
		"",
		WelcomeTitleStyle.Render(strings.ToUpper(w.tr.T(locale.WelcomeHeading, map[string]any{"Title": w.meta.Title}))),
		WelcomeSubtitleStyle.Render(w.tr.T(locale.WelcomeSubheading)),
		"",
		WelcomeButtonStyle.Render(w.tr.T(locale.WelcomeOpen)),
		"",
		snow,
		WelcomeFooterStyle.Render(w.tr.T(locale.WelcomeFooter)),
	}
	if w.meta.Credits != "" {
		lines = append(lines, "", WelcomeFooterStyle.Italic(true).Render(w.meta.Credits))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
