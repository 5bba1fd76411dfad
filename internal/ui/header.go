package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Header represents the top header bar
type Header struct {
	width     int
	title     string
	songLabel string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the booklet title shown on the left
func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetSongLabel sets the open song shown on the right; empty hides it
func (h *Header) SetSongLabel(label string) {
	h.songLabel = label
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + h.title
	var rightText string
	if h.songLabel != "" {
		rightText = h.songLabel + " "
	}

	// Malayalam titles are wider than their rune count
	titleWidth := ansi.StringWidth(titleText)
	rightWidth := ansi.StringWidth(rightText)
	if titleWidth+rightWidth > h.width && h.width > titleWidth+1 {
		rightText = ansi.Truncate(rightText, h.width-titleWidth-1, "…")
		rightWidth = ansi.StringWidth(rightText)
	}

	paddingLen := h.width - titleWidth - rightWidth
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	total := uniseg.GraphemeClusterCount(fullContent)
	return h.renderGradient(fullContent, uniseg.GraphemeClusterCount(titleText), total-uniseg.GraphemeClusterCount(rightText))
}

// parseHexColor parses a hex color string (e.g., "#B91C1C") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content over a primary-to-background gradient.
// Indexes count grapheme clusters so Malayalam conjuncts keep one style.
// Clusters before boldUntil are bold; clusters from mutedFrom on are muted.
func (h *Header) renderGradient(content string, boldUntil, mutedFrom int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	width := uniseg.GraphemeClusterCount(content)
	var result strings.Builder

	gr := uniseg.NewGraphemes(content)
	for i := 0; gr.Next(); i++ {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < boldUntil)

		if i >= mutedFrom {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(gr.Str()))
	}

	return result.String()
}
