package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// ThemeState - theme picker
// =============================================================================

// ThemeOption is one selectable theme.
type ThemeOption struct {
	Key  string
	Name string
}

type ThemeState struct {
	selected string
	original string
	form     *huh.Form
}

func (*ThemeState) modalState() {}

func (s *ThemeState) Title() string { return "Select Theme" }

func (s *ThemeState) Help() string {
	return "↑/↓ to select, Enter to apply, Esc to cancel"
}

func (s *ThemeState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ThemeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// GetSelectedTheme returns the highlighted theme key.
func (s *ThemeState) GetSelectedTheme() string {
	return s.selected
}

// ThemeChanged reports whether the highlighted theme differs from the active one.
func (s *ThemeState) ThemeChanged() bool {
	return s.selected != s.original
}

// NewThemeState builds the picker with current highlighted.
func NewThemeState(options []ThemeOption, current string) *ThemeState {
	s := &ThemeState{selected: current, original: current}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		name := opt.Name
		if opt.Key == current {
			name += " (current)"
		}
		huhOptions[i] = huh.NewOption(name, opt.Key)
	}

	s.form = newForm(huh.NewSelect[string]().
		Options(huhOptions...).
		Height(len(huhOptions) + 1).
		Value(&s.selected))
	return s
}
