package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// ConfirmExitState - the exit guard prompt
// =============================================================================

// ExitLabels are the localized strings for the exit prompt.
type ExitLabels struct {
	Title   string
	Confirm string
	Cancel  string
}

type ConfirmExitState struct {
	labels ExitLabels
	leave  bool
	form   *huh.Form
}

func (*ConfirmExitState) modalState() {}

func (s *ConfirmExitState) Title() string { return s.labels.Title }

func (s *ConfirmExitState) Help() string {
	return "←/→ choose  y/n  Enter: confirm  Esc: stay"
}

func (s *ConfirmExitState) Render() string {
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, s.form.View(), help)
}

func (s *ConfirmExitState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// Leave reports whether the leave button is currently chosen.
func (s *ConfirmExitState) Leave() bool {
	return s.leave
}

// NewConfirmExitState builds the prompt with "stay" preselected.
func NewConfirmExitState(labels ExitLabels) *ConfirmExitState {
	s := &ConfirmExitState{labels: labels}

	s.form = newForm(huh.NewConfirm().
		Title(labels.Title).
		Affirmative(labels.Confirm).
		Negative(labels.Cancel).
		Value(&s.leave))
	return s
}
