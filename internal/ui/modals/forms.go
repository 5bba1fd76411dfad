package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/songbook/internal/keys"
)

// newForm wraps a single field in a themed, already-initialized form sized
// to the modal body.
func newForm(field huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(formTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)
	form.Init()
	return form
}

// updateForm forwards msg to form. Enter and Escape are decided by the
// app-layer modal handlers and never reach huh.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		if s := key.String(); s == keys.Enter || s == keys.Escape {
			return form, nil
		}
	}
	next, cmd := form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func button(text, background color.Color) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2).MarginRight(1).Foreground(text)
	if background != nil {
		s = s.Background(background)
	}
	return s
}

// formTheme maps the active palette onto huh. It is rebuilt for every form
// so a theme switch shows up in the next modal.
func formTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		focused := &t.Focused
		focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		focused.Card = focused.Base
		focused.Title = fg(ColorText).Bold(true)
		focused.Description = fg(ColorTextMuted).Italic(true)
		focused.ErrorIndicator = fg(ColorWarning).SetString(" *")
		focused.ErrorMessage = fg(ColorWarning)

		// Theme picker
		focused.SelectSelector = fg(ColorPrimary).SetString("❄ ")
		focused.Option = fg(ColorText)
		focused.SelectedOption = fg(ColorSecondary)

		// Exit prompt
		focused.FocusedButton = button(ColorTextInverse, ColorPrimary).Bold(true)
		focused.BlurredButton = button(ColorTextMuted, nil)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		t.Group.Title = fg(ColorSecondary).Bold(true)
		t.Group.Description = fg(ColorTextMuted)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}
