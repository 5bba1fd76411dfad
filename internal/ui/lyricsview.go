package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/songbook/internal/keys"
	"github.com/zhubert/songbook/internal/locale"
	"github.com/zhubert/songbook/internal/song"
)

// LyricsView is the detail pane for the effective song.
type LyricsView struct {
	viewport viewport.Model
	tr       *locale.Translator

	song    song.Song
	hasSong bool

	// showAlternate survives song changes, like a reader's language choice
	showAlternate bool

	width   int
	height  int
	focused bool
}

// NewLyricsView creates the detail pane
func NewLyricsView(tr *locale.Translator) *LyricsView {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &LyricsView{viewport: vp, tr: tr}
}

// SetSize sets the pane dimensions and re-wraps the lyrics
func (v *LyricsView) SetSize(width, height int) {
	v.width = width
	v.height = height

	ctx := GetViewContext()
	v.viewport.SetWidth(max(ctx.InnerWidth(width), 1))
	// Title line and variant line sit above the viewport
	v.viewport.SetHeight(max(ctx.InnerHeight(height)-TitleHeight-SeparatorHeight, 1))
	v.updateContent()
}

// SetFocused sets whether scroll keys go to this pane
func (v *LyricsView) SetFocused(focused bool) {
	v.focused = focused
}

// IsFocused returns whether the pane has focus
func (v *LyricsView) IsFocused() bool {
	return v.focused
}

// SetSong shows s. Scroll returns to the top whenever the song id changes.
func (v *LyricsView) SetSong(s song.Song) {
	changed := !v.hasSong || s.ID != v.song.ID
	v.song = s
	v.hasSong = true
	v.updateContent()
	if changed {
		v.viewport.GotoTop()
	}
}

// Song returns the song on display
func (v *LyricsView) Song() (song.Song, bool) {
	return v.song, v.hasSong
}

// ShowAlternate reports whether the transliteration is requested
func (v *LyricsView) ShowAlternate() bool {
	return v.showAlternate
}

// ToggleAlternate flips between primary and transliteration. Songs without
// a transliteration offer no toggle, so it reports false and does nothing.
func (v *LyricsView) ToggleAlternate() bool {
	if !v.hasSong || !v.song.HasAlternate() {
		return false
	}
	v.showAlternate = !v.showAlternate
	v.updateContent()
	return true
}

// DisplayedText returns the lyric text currently on screen, verbatim.
func (v *LyricsView) DisplayedText() string {
	if v.showAlternate && v.song.HasAlternate() {
		return v.song.LyricsManglish
	}
	return v.song.Lyrics
}

// DisplayedVariant returns the localized name of the variant on screen.
func (v *LyricsView) DisplayedVariant() string {
	if v.showAlternate && v.song.HasAlternate() {
		return v.tr.T(locale.VariantAlternate)
	}
	return v.tr.T(locale.VariantPrimary)
}

// AtTop reports whether the viewport is scrolled to the top
func (v *LyricsView) AtTop() bool {
	return v.viewport.AtTop()
}

func (v *LyricsView) updateContent() {
	if !v.hasSong {
		v.viewport.SetContent("")
		return
	}
	v.viewport.SetContent(v.renderBody(v.viewport.Width()))
}

// renderBody centres the title block and lyric lines. Wrapping only
// affects display; DisplayedText stays verbatim.
func (v *LyricsView) renderBody(width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	s := v.song

	var lines []string
	lines = append(lines, center.Render(LyricsTitleStyle.Render(s.Title)))
	if s.ShowsOriginalTitle() {
		lines = append(lines, center.Render(LyricsOriginalTitleStyle.Render(s.OriginalTitle)))
	}
	lines = append(lines, "")

	text := v.DisplayedText()
	textStyle := LyricsTextStyle
	if v.showAlternate && s.HasAlternate() {
		textStyle = LyricsAlternateStyle
	}

	var body []string
	notice := func(id string) {
		if len(body) > 0 {
			body = append(body, "")
		}
		body = append(body, center.Render(LyricsPlaceholderStyle.Render(v.tr.T(id))))
	}

	if strings.TrimSpace(text) != "" {
		for _, line := range strings.Split(wordwrap.String(text, width), "\n") {
			body = append(body, center.Render(textStyle.Render(line)))
		}
	}
	if v.showAlternate && !s.HasAlternate() {
		notice(locale.AlternateMissing)
	}
	// The primary-script notice follows the song, not the variant on screen.
	if !s.HasLyrics() || strings.TrimSpace(text) == "" {
		notice(locale.LyricsMissing)
	}

	return strings.Join(append(lines, body...), "\n")
}

// Update handles scroll keys while focused
func (v *LyricsView) Update(msg tea.Msg) (*LyricsView, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if !v.focused {
			return v, nil
		}
		switch keyMsg.String() {
		case keys.Home, "g":
			v.viewport.GotoTop()
			return v, nil
		case keys.End, "G":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the detail pane
func (v *LyricsView) View() string {
	style := PanelStyle
	if v.focused {
		style = PanelFocusedStyle
	}

	header := PanelTitleStyle.Render(" " + v.tr.T(locale.PaneLyrics))
	if v.hasSong {
		header += LyricsHintStyle.Render("  " + v.tr.T(locale.SongNumber, map[string]any{"ID": v.song.ID}))
	}

	content := strings.Join([]string{header, v.renderVariantLine(), v.viewport.View()}, "\n")

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(v.width).Height(v.height).Render(content)
}

// renderVariantLine shows the variant tabs, or nothing when there is
// nothing to switch to.
func (v *LyricsView) renderVariantLine() string {
	if !v.hasSong || !v.song.HasAlternate() {
		return ""
	}

	primary, alternate := LyricsVariantActiveStyle, LyricsVariantInactiveStyle
	if v.showAlternate {
		primary, alternate = alternate, primary
	}
	return " " + primary.Render(v.tr.T(locale.VariantPrimary)) +
		alternate.Render(v.tr.T(locale.VariantAlternate)) +
		LyricsHintStyle.Render("  m: switch")
}
