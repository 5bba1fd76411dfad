// Package ui provides the user interface components for the songbook TUI.
//
// # Overview
//
// The ui package implements the visual components of the songbook using the
// Bubble Tea framework and Lipgloss styling library. Components never change
// the selection themselves: they render a nav.State handed to them and emit
// intent messages (SelectSongMsg) that the app routes to the coordinator.
//
// # Layout System
//
// Wide terminals show both panes:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │                                   │
//	│   Song list     │         Lyrics                    │
//	│   (1/3 width)   │         (2/3 width)               │
//	│                 │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Below the narrow breakpoint (config narrow_width) only one pane is shown,
// chosen by nav.State.MobileView.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations,
// including the narrow/wide decision.
//
// Header: Booklet title on the left, the open song on the right, over a
// gradient of the theme's primary color.
//
// Footer: Context-aware key hints plus transient flash messages.
//
// SongList: Catalog rows with id badge, title and original title. The row
// matching the selected id is highlighted; a separate cursor follows the keys.
// "/" filters by title.
//
// LyricsView: Viewport over the effective song's lyrics with the
// primary/alternate toggle and placeholders for missing text. Scroll resets
// to the top whenever the song id changes.
//
// Welcome: The landing layer shown until the reader opens the songbook.
//
// Modal: Host for the states in the modals package (exit confirmation,
// help, theme picker).
//
// # Styles
//
// All styles are defined in styles.go and rebuilt from the active Theme by
// regenerateStyles. The default "holly" theme uses deep red and evergreen.
package ui
