package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/songbook/internal/keys"
	"github.com/zhubert/songbook/internal/song"
)

// SelectSongMsg is the list's select intent. The list never changes the
// selection itself; the app hands the id to the coordinator.
type SelectSongMsg struct {
	ID int
}

// SongList is the catalog index pane.
type SongList struct {
	songs    []song.Song
	filtered []song.Song // nil when no filter is applied

	cursor       int
	scrollOffset int
	selectedID   int // highlighted row; nav.NoSelection highlights nothing

	width   int
	height  int
	focused bool

	filterMode  bool
	filterInput textinput.Model

	title     string
	noMatches string
}

// NewSongList creates an empty list pane
func NewSongList() *SongList {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = FilterCharLimit

	return &SongList{
		filterInput: ti,
		title:       "Songs",
		noMatches:   "No matches.",
	}
}

// SetLabels sets the localized pane title, filter placeholder and empty-filter text
func (l *SongList) SetLabels(title, placeholder, noMatches string) {
	l.title = title
	l.filterInput.Placeholder = placeholder
	l.noMatches = noMatches
}

// SetSongs replaces the rows in catalog order
func (l *SongList) SetSongs(songs []song.Song) {
	l.songs = songs
	l.filtered = nil
	l.cursor = 0
	l.scrollOffset = 0
}

// SetSelectedID highlights the row for id and moves the cursor onto it
func (l *SongList) SetSelectedID(id int) {
	l.selectedID = id
	for i, s := range l.displaySongs() {
		if s.ID == id {
			l.cursor = i
			l.ensureVisible()
			return
		}
	}
}

// SelectedID returns the highlighted song id
func (l *SongList) SelectedID() int {
	return l.selectedID
}

// SetSize sets the pane dimensions
func (l *SongList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.ensureVisible()
}

// Width returns the pane width
func (l *SongList) Width() int {
	return l.width
}

// SetFocused sets whether keys go to this pane
func (l *SongList) SetFocused(focused bool) {
	l.focused = focused
}

// IsFocused returns whether the pane has focus
func (l *SongList) IsFocused() bool {
	return l.focused
}

// CursorSong returns the song under the cursor
func (l *SongList) CursorSong() (song.Song, bool) {
	display := l.displaySongs()
	if l.cursor < 0 || l.cursor >= len(display) {
		return song.Song{}, false
	}
	return display[l.cursor], true
}

// EnterFilterMode focuses the filter input
func (l *SongList) EnterFilterMode() tea.Cmd {
	l.filterMode = true
	l.filterInput.SetValue("")
	l.applyFilter("")
	return l.filterInput.Focus()
}

// ExitFilterMode clears the filter and returns to the full list
func (l *SongList) ExitFilterMode() {
	l.filterMode = false
	l.filterInput.Blur()
	l.filterInput.SetValue("")
	l.filtered = nil
	l.SetSelectedID(l.selectedID)
	l.cursor = min(max(l.cursor, 0), max(len(l.songs)-1, 0))
}

// IsFilterMode returns whether the filter input has focus
func (l *SongList) IsFilterMode() bool {
	return l.filterMode
}

// IsFiltered reports whether a filter is narrowing the rows
func (l *SongList) IsFiltered() bool {
	return l.filtered != nil
}

// FilterQuery returns the current filter text
func (l *SongList) FilterQuery() string {
	return l.filterInput.Value()
}

// applyFilter matches the query against titles and original titles
func (l *SongList) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		l.filtered = nil
		l.cursor = min(l.cursor, max(len(l.songs)-1, 0))
		return
	}

	l.filtered = []song.Song{}
	for _, s := range l.songs {
		if strings.Contains(strings.ToLower(s.Title), query) ||
			strings.Contains(strings.ToLower(s.OriginalTitle), query) ||
			strconv.Itoa(s.ID) == query {
			l.filtered = append(l.filtered, s)
		}
	}
	l.cursor = 0
	l.scrollOffset = 0
}

func (l *SongList) displaySongs() []song.Song {
	if l.filtered != nil {
		return l.filtered
	}
	return l.songs
}

// Update handles key messages while focused
func (l *SongList) Update(msg tea.Msg) (*SongList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !l.focused {
		return l, nil
	}

	if l.filterMode {
		switch keyMsg.String() {
		case keys.Escape:
			l.ExitFilterMode()
			return l, nil
		case keys.Enter:
			// Keep the filter applied, hand keys back to the list
			l.filterMode = false
			l.filterInput.Blur()
			return l, nil
		case keys.Up, keys.CtrlP:
			l.move(-1)
			return l, nil
		case keys.Down, keys.CtrlN:
			l.move(1)
			return l, nil
		default:
			var cmd tea.Cmd
			l.filterInput, cmd = l.filterInput.Update(msg)
			l.applyFilter(l.filterInput.Value())
			return l, cmd
		}
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		l.move(-1)
	case keys.Down, "j":
		l.move(1)
	case keys.Home, "g":
		l.move(-len(l.displaySongs()))
	case keys.End, "G":
		l.move(len(l.displaySongs()))
	case keys.PgUp:
		l.move(-l.visibleRows())
	case keys.PgDown:
		l.move(l.visibleRows())
	case keys.Enter:
		if s, ok := l.CursorSong(); ok {
			id := s.ID
			return l, func() tea.Msg { return SelectSongMsg{ID: id} }
		}
	}
	return l, nil
}

func (l *SongList) move(delta int) {
	n := len(l.displaySongs())
	if n == 0 {
		return
	}
	l.cursor = min(max(l.cursor+delta, 0), n-1)
	l.ensureVisible()
}

// visibleRows is the number of song rows that fit under the title line
func (l *SongList) visibleRows() int {
	rows := GetViewContext().InnerHeight(l.height) - TitleHeight
	if l.filterMode || l.filtered != nil {
		rows--
	}
	return max(rows, 1)
}

func (l *SongList) ensureVisible() {
	visible := l.visibleRows()
	if l.cursor < l.scrollOffset {
		l.scrollOffset = l.cursor
	} else if l.cursor >= l.scrollOffset+visible {
		l.scrollOffset = l.cursor - visible + 1
	}
	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// View renders the list pane
func (l *SongList) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if l.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(l.width)
	lines := []string{PanelTitleStyle.Render(" " + l.title)}

	if l.filterMode || l.filtered != nil {
		l.filterInput.SetWidth(max(innerWidth-3, 1)) // room for "/ "
		filterStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		lines = append(lines, filterStyle.Render("/")+" "+l.filterInput.View())
	}

	display := l.displaySongs()
	if len(display) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(" "+l.noMatches))
	}

	badgeWidth := 1
	for _, s := range l.songs {
		badgeWidth = max(badgeWidth, len(strconv.Itoa(s.ID)))
	}

	visible := l.visibleRows()
	end := min(l.scrollOffset+visible, len(display))
	for i := l.scrollOffset; i < end; i++ {
		lines = append(lines, l.renderRow(display[i], i == l.cursor, badgeWidth, innerWidth))
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(l.width).Height(l.height).Render(strings.Join(lines, "\n"))
}

// renderRow draws "> 3  Title · Original" truncated to the pane width
func (l *SongList) renderRow(s song.Song, isCursor bool, badgeWidth, width int) string {
	prefix := "  "
	if isCursor && l.focused {
		prefix = "> "
	}

	badge := fmt.Sprintf("%*d", badgeWidth, s.ID)
	// Row style pads one column each side
	avail := width - 2 - runewidth.StringWidth(prefix) - badgeWidth - 1
	title := runewidth.Truncate(s.Title, max(avail, 1), "…")

	var original string
	if s.ShowsOriginalTitle() {
		rest := avail - runewidth.StringWidth(title) - 3
		if rest > 2 {
			original = " · " + runewidth.Truncate(s.OriginalTitle, rest, "…")
		}
	}

	switch {
	case s.ID == l.selectedID:
		return SongSelectedStyle.Width(width).Render(prefix + badge + " " + title + original)
	case isCursor && l.focused:
		return SongCursorStyle.Width(width).Render(prefix + badge + " " + title + SongOriginalTitleStyle.Render(original))
	default:
		return SongItemStyle.Width(width).Render(prefix + SongBadgeStyle.Render(badge) + " " + title + SongOriginalTitleStyle.Render(original))
	}
}
