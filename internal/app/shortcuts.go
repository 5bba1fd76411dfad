package app

import (
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/songbook/internal/booklet"
	"github.com/zhubert/songbook/internal/clipboard"
	"github.com/zhubert/songbook/internal/errors"
	"github.com/zhubert/songbook/internal/keys"
	"github.com/zhubert/songbook/internal/locale"
	"github.com/zhubert/songbook/internal/nav"
	"github.com/zhubert/songbook/internal/notification"
	"github.com/zhubert/songbook/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key            string                              // The key binding (e.g., "m", "ctrl+c")
	DisplayKey     string                              // Display name in help (e.g., "Esc"); defaults to Key
	Description    string                              // Human-readable description
	Category       string                              // Section for help modal grouping
	RequiresReader bool                                // Welcome layer must be dismissed
	RequiresSong   bool                                // Lyrics must be on screen
	Handler        func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition      func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryLyrics     = "Lyrics"
	CategoryBooklet    = "Booklet"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryLyrics,
	CategoryBooklet,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:            keys.Escape,
		DisplayKey:     "Esc",
		Description:    "Go back",
		Category:       CategoryNavigation,
		RequiresReader: true,
		Handler:        shortcutExternalBack,
	},
	{
		Key:            keys.Backspace,
		DisplayKey:     "Backspace",
		Description:    "Go back",
		Category:       CategoryNavigation,
		RequiresReader: true,
		Handler:        shortcutExternalBack,
	},
	{
		Key:            "b",
		Description:    "Back to song list",
		Category:       CategoryNavigation,
		RequiresReader: true,
		Handler:        shortcutBackToList,
		Condition:      func(m *Model) bool { return m.coord.State().MobileView == nav.ViewEditor },
	},
	{
		Key:            keys.Tab,
		DisplayKey:     "Tab",
		Description:    "Switch between list and lyrics",
		Category:       CategoryNavigation,
		RequiresReader: true,
		Handler:        shortcutToggleFocus,
		Condition:      func(m *Model) bool { return m.twoPane() },
	},
	{
		Key:            "/",
		Description:    "Filter songs",
		Category:       CategoryNavigation,
		RequiresReader: true,
		Handler:        shortcutFilter,
		Condition:      func(m *Model) bool { return m.focus == FocusList },
	},

	// Lyrics
	{
		Key:            "m",
		Description:    "Switch Malayalam / Manglish",
		Category:       CategoryLyrics,
		RequiresReader: true,
		RequiresSong:   true,
		Handler:        shortcutToggleAlternate,
		Condition:      func(m *Model) bool { return m.coord.EffectiveSong().HasAlternate() },
	},
	{
		Key:            "y",
		Description:    "Copy lyrics to clipboard",
		Category:       CategoryLyrics,
		RequiresReader: true,
		RequiresSong:   true,
		Handler:        shortcutCopyLyrics,
	},

	// Booklet
	{
		Key:            "p",
		Description:    "Export printable booklet",
		Category:       CategoryBooklet,
		RequiresReader: true,
		Handler:        shortcutExportBooklet,
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:         "t",
		Description: "Change theme",
		Category:    CategoryGeneral,
		Handler:     shortcutTheme,
	},
	{
		Key:         "q",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
	{
		Key:         keys.CtrlC,
		DisplayKey:  "ctrl-c",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Move through the song list", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Open songbook / Open song", Category: CategoryNavigation},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll lyrics", Category: CategoryLyrics},
	{DisplayKey: "g/G", Description: "Top / bottom of lyrics", Category: CategoryLyrics},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used both for execution guards and to filter the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	state := m.coord.State()
	if s.RequiresReader && state.ShowWelcome {
		return false
	}
	if s.RequiresSong && !m.lyricsVisible() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// lyricsVisible reports whether the lyrics pane is on screen
func (m *Model) lyricsVisible() bool {
	state := m.coord.State()
	if state.ShowWelcome {
		return false
	}
	return m.twoPane() || state.MobileView == nav.ViewEditor
}

// ExecuteShortcut finds and executes a shortcut by key.
// It checks all guards (RequiresReader, RequiresSong, Condition) before executing.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// While the filter has the keyboard, keys belong to the filter input
	if m.list.IsFilterMode() {
		m.log.Debug("shortcut skipped, filter input active", "key", key)
		return m, nil, false
	}

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == "?" {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "state", m.coord.State().String())
			// Another entry may bind the same key with different guards
			continue
		}
		m.log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)
	seen := make(map[string]bool)

	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		// Aliases like esc/backspace share a description; list each once per key
		if seen[displayKey] {
			continue
		}
		seen[displayKey] = true
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range displayOnly {
		if s.Category == CategoryLyrics && !m.lyricsVisible() {
			continue
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  s.DisplayKey,
			Desc: s.Description,
		})
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// normalizeHelpDisplayKey maps a help display key back to the key string
// ExecuteShortcut expects. Display-only entries map to "".
func normalizeHelpDisplayKey(displayKey string) string {
	for _, s := range DisplayOnlyShortcuts {
		if s.DisplayKey == displayKey {
			return ""
		}
	}
	for _, s := range append(ShortcutRegistry, helpShortcut) {
		if s.DisplayKey == displayKey && s.DisplayKey != "" {
			return s.Key
		}
	}
	return strings.ToLower(displayKey)
}

// =============================================================================
// Handlers
// =============================================================================

func shortcutExternalBack(m *Model) (tea.Model, tea.Cmd) {
	// A narrowed list clears its filter before anything leaves the list
	if m.focus == FocusList && m.list.IsFiltered() && m.coord.State().MobileView == nav.ViewList {
		m.list.ExitFilterMode()
		return m, nil
	}
	m.coord.ExternalBack()
	if m.takeExitRequest() {
		return m.requestExit()
	}
	return m, nil
}

func shortcutBackToList(m *Model) (tea.Model, tea.Cmd) {
	m.coord.BackToList()
	if m.takeExitRequest() {
		return m.requestExit()
	}
	return m, nil
}

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	if m.focus == FocusList {
		m.setFocus(FocusLyrics)
	} else {
		m.setFocus(FocusList)
	}
	return m, nil
}

func shortcutFilter(m *Model) (tea.Model, tea.Cmd) {
	return m, m.list.EnterFilterMode()
}

func shortcutToggleAlternate(m *Model) (tea.Model, tea.Cmd) {
	if !m.lyrics.ToggleAlternate() {
		return m, nil
	}
	m.log.Debug("lyrics variant toggled", "songID", m.coord.EffectiveSong().ID, "variant", m.lyrics.DisplayedVariant())
	return m, nil
}

func shortcutCopyLyrics(m *Model) (tea.Model, tea.Cmd) {
	s := m.coord.EffectiveSong()
	text := m.lyrics.DisplayedText()
	if text == "" {
		return m, m.flashWarning(m.tr.T(locale.LyricsMissing))
	}
	if err := clipboard.WriteText(text); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		return m, m.flashError(errors.E(errors.Op("app.copy"), errors.KindIO, "failed to copy to clipboard", err))
	}
	return m, m.flashSuccess(m.tr.T(locale.FlashCopied, map[string]any{
		"Variant": m.lyrics.DisplayedVariant(),
		"ID":      s.ID,
	}))
}

func shortcutExportBooklet(m *Model) (tea.Model, tea.Cmd) {
	doc := booklet.Build(m.book.Catalog, m.book.Metadata)

	f, err := os.Create(m.exportPath)
	if err != nil {
		m.log.Error("booklet export failed", "path", m.exportPath, "error", err)
		return m, m.flashError(errors.ExportFailed(m.exportPath, err))
	}
	defer f.Close()

	if err := booklet.WriteHTML(f, doc); err != nil {
		m.log.Error("booklet export failed", "path", m.exportPath, "error", err)
		return m, m.flashError(errors.ExportFailed(m.exportPath, err))
	}

	m.log.Info("booklet exported", "path", m.exportPath, "pages", doc.Len())
	if m.config.GetNotificationsEnabled() {
		_ = notification.BookletExported(m.exportPath, doc.Len())
	}
	return m, m.flashSuccess(m.tr.T(locale.FlashExported, map[string]any{"Path": m.exportPath}))
}

func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewThemeState(ui.CurrentThemeName()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m.requestExit()
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(ShortcutRegistry, helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(ui.NewHelpStateFromSections(sections))
	return m, nil
}

// requestExit runs the exit guard: quit at once while the welcome layer is
// up, otherwise ask first.
func (m *Model) requestExit() (tea.Model, tea.Cmd) {
	if !m.coord.ExitGuardActive() {
		m.log.Info("reading session ended")
		return m, tea.Quit
	}
	m.modal.Show(ui.NewConfirmExitState(ui.ExitLabels{
		Title:   m.tr.T(locale.ExitTitle),
		Confirm: m.tr.T(locale.ExitConfirm),
		Cancel:  m.tr.T(locale.ExitCancel),
	}))
	return m, nil
}
