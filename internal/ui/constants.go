// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// ListWidthRatio is the denominator for the song list width in two-pane mode (1/3 of total width)
	ListWidthRatio = 3

	// MinListWidth keeps song titles readable on mid-sized terminals
	MinListWidth = 28

	// MinTerminalWidth and MinTerminalHeight clamp the layout on tiny terminals
	MinTerminalWidth  = 30
	MinTerminalHeight = 8

	// DefaultNarrowWidth is the single-pane breakpoint when none is configured
	DefaultNarrowWidth = 90

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// SeparatorHeight is the height of separators between sections
	SeparatorHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// FilterCharLimit is the character limit for the song list filter
	FilterCharLimit = 64
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by the help modal
	ModalWidthWide = 72

	// HelpModalMaxVisible is the number of help rows shown before scrolling
	HelpModalMaxVisible = 16
)

// Flash messages
const (
	// DefaultFlashDuration is how long a footer flash stays up
	DefaultFlashDuration = 3 * time.Second

	// flashTickInterval is how often expiry is checked
	flashTickInterval = 500 * time.Millisecond
)
