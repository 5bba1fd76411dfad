package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Set from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
	ColorAlternate   color.Color
	ColorPlaceholder color.Color
)

// Header styles
var HeaderStyle lipgloss.Style

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Song list styles
var (
	SongItemStyle          lipgloss.Style
	SongSelectedStyle      lipgloss.Style // row whose id is the selected song
	SongCursorStyle        lipgloss.Style // keyboard cursor row
	SongBadgeStyle         lipgloss.Style
	SongOriginalTitleStyle lipgloss.Style
)

// Lyrics styles
var (
	LyricsTitleStyle           lipgloss.Style
	LyricsOriginalTitleStyle   lipgloss.Style
	LyricsTextStyle            lipgloss.Style
	LyricsAlternateStyle       lipgloss.Style
	LyricsPlaceholderStyle     lipgloss.Style
	LyricsHintStyle            lipgloss.Style
	LyricsVariantActiveStyle   lipgloss.Style
	LyricsVariantInactiveStyle lipgloss.Style
)

// Welcome layer styles
var (
	WelcomeTitleStyle    lipgloss.Style
	WelcomeSubtitleStyle lipgloss.Style
	WelcomeButtonStyle   lipgloss.Style
	WelcomeFooterStyle   lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var StatusErrorStyle lipgloss.Style
