package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// HelpState - keyboard shortcuts, backed by a bubbles list
// =============================================================================

const helpKeyColumn = 14

// helpRow is either a section heading (title set) or a shortcut.
type helpRow struct {
	title    string
	shortcut HelpShortcut
}

func (r helpRow) isHeading() bool { return r.title != "" }

func (r helpRow) FilterValue() string {
	if r.isHeading() {
		return ""
	}
	return r.shortcut.Key + " " + r.shortcut.Desc
}

type helpDelegate struct{}

func (helpDelegate) Height() int                             { return 1 }
func (helpDelegate) Spacing() int                            { return 0 }
func (helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(helpRow)
	if !ok {
		return
	}
	if row.isHeading() {
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(row.title))
		return
	}

	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(helpKeyColumn)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)
	prefix := "  "
	if index == m.Index() {
		keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
		descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
		prefix = "> "
	}
	fmt.Fprint(w, prefix+keyStyle.Render(row.shortcut.Key)+descStyle.Render(row.shortcut.Desc))
}

// HelpState wraps a list.Model of shortcuts grouped by section.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  ↑/↓: navigate  Enter: run  Esc: close"
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.list.View(), help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *HelpState) PreferredWidth() int { return ModalWidthWide }

// SetSize fits the list between the title and help lines.
func (s *HelpState) SetSize(width, height int) {
	const chrome = 4
	s.list.SetSize(width, max(height-chrome, 1))
}

// GetSelectedShortcut returns the highlighted shortcut, or nil on a heading.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	row, ok := s.list.SelectedItem().(helpRow)
	if !ok || row.isHeading() {
		return nil
	}
	return &row.shortcut
}

// IsFiltering reports whether the filter input has focus.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections flattens sections into list rows and puts the
// cursor on the first shortcut.
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var items []list.Item
	first := -1
	for _, section := range sections {
		items = append(items, helpRow{title: section.Title})
		for _, sc := range section.Shortcuts {
			if first < 0 {
				first = len(items)
			}
			items = append(items, helpRow{shortcut: sc})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidthWide, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)
	if first >= 0 {
		l.Select(first)
	}

	return &HelpState{list: l}
}
