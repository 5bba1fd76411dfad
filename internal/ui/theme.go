// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing readers
// to pick something that suits their terminal.
package ui

import (
	"sort"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/songbook/internal/ui/modals"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (key hints, badges)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected song background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused pane borders (defaults to Primary if empty)

	// Lyrics colors
	Alternate   string // Transliterated lyrics
	Placeholder string // "[Lyrics not available]" and friends
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName identifies a built-in theme
type ThemeName string

const (
	ThemeHolly   ThemeName = "holly"
	ThemeNord    ThemeName = "nord"
	ThemeDracula ThemeName = "dracula"
	ThemeSnow    ThemeName = "snow"
)

// DefaultTheme is used when no theme is configured
const DefaultTheme = ThemeHolly

// BuiltinThemes contains all available themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeHolly: {
		Name:        "Holly",
		Primary:     "#B91C1C",
		Secondary:   "#16A34A",
		Bg:          "#1C1917",
		BgSelected:  "#7F1D1D",
		Text:        "#FAFAF9",
		TextMuted:   "#A8A29E",
		TextInverse: "#1C1917",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#FBBF24",
		Success:     "#22C55E",
		Border:      "#44403C",
		BorderFocus: "#DC2626",
		Alternate:   "#86EFAC",
		Placeholder: "#78716C",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#5E81AC",
		Secondary:   "#88C0D0",
		Bg:          "#2E3440",
		BgSelected:  "#434C5E",
		Text:        "#ECEFF4",
		TextMuted:   "#9AA5B8",
		TextInverse: "#2E3440",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
		BorderFocus: "#88C0D0",
		Alternate:   "#8FBCBB",
		Placeholder: "#616E88",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		BgSelected:  "#44475A",
		Text:        "#F8F8F2",
		TextMuted:   "#A4A9C5",
		TextInverse: "#282A36",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Success:     "#50FA7B",
		Border:      "#44475A",
		Alternate:   "#FF79C6",
		Placeholder: "#6272A4",
	},
	ThemeSnow: {
		Name:        "Snow",
		Primary:     "#1D4ED8",
		Secondary:   "#B91C1C",
		Bg:          "#F8FAFC",
		BgSelected:  "#DBEAFE",
		Text:        "#0F172A",
		TextMuted:   "#475569",
		TextInverse: "#F8FAFC",
		Warning:     "#B45309",
		Error:       "#B91C1C",
		Info:        "#1D4ED8",
		Success:     "#15803D",
		Border:      "#CBD5E1",
		Alternate:   "#15803D",
		Placeholder: "#94A3B8",
	},
}

// ThemeNames returns the built-in theme names in display order, default first.
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		if name != DefaultTheme {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return append([]ThemeName{DefaultTheme}, names...)
}

// GetTheme returns a theme by name, or the default theme if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

func init() {
	regenerateStyles()
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorAlternate = lipgloss.Color(t.Alternate)
	ColorPlaceholder = lipgloss.Color(t.Placeholder)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	SongItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	SongSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SongCursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	SongBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	SongOriginalTitleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	LyricsTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	LyricsOriginalTitleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	LyricsTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	LyricsAlternateStyle = lipgloss.NewStyle().
		Foreground(ColorAlternate)

	LyricsPlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorPlaceholder).
		Italic(true)

	LyricsHintStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	LyricsVariantActiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	LyricsVariantInactiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	WelcomeTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	WelcomeSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	WelcomeButtonStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 3)

	WelcomeFooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	RefreshModalStyles()
}

// RefreshModalStyles pushes the current palette into the modals package.
func RefreshModalStyles() {
	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, SongItemStyle, SongSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalWidth, ModalWidthWide, HelpModalMaxVisible,
	)
}
