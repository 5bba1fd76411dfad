package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/zhubert/songbook/internal/config"
	"github.com/zhubert/songbook/internal/locale"
	"github.com/zhubert/songbook/internal/logger"
	"github.com/zhubert/songbook/internal/nav"
	"github.com/zhubert/songbook/internal/song"
	"github.com/zhubert/songbook/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusList Focus = iota
	FocusLyrics
)

func (f Focus) String() string {
	if f == FocusLyrics {
		return "lyrics"
	}
	return "list"
}

// DefaultExportPath is where the export shortcut writes the booklet.
const DefaultExportPath = "songbook-booklet.html"

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	book    *song.Book

	coord   *nav.Coordinator
	history nav.History
	tr      *locale.Translator

	header  *ui.Header
	footer  *ui.Footer
	list    *ui.SongList
	lyrics  *ui.LyricsView
	welcome *ui.Welcome
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	sessionID  string
	exportPath string

	// exitRequested is set by the coordinator when a back step leaves the
	// history root; the key handler that caused it turns it into a command.
	exitRequested bool

	log *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithHistory replaces the default stack history.
func WithHistory(h nav.History) Option {
	return func(m *Model) { m.history = h }
}

// WithExportPath sets where the export shortcut writes the HTML booklet.
func WithExportPath(path string) Option {
	return func(m *Model) { m.exportPath = path }
}

// New creates a new app model over a loaded booklet.
func New(cfg *config.Config, book *song.Book, version string, opts ...Option) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}
	ui.GetViewContext().SetNarrowWidth(cfg.GetNarrowWidth())

	tr := locale.New(cfg.GetLocale())
	sessionID := uuid.New().String()

	m := &Model{
		config:     cfg,
		version:    version,
		book:       book,
		tr:         tr,
		header:     ui.NewHeader(),
		footer:     ui.NewFooter(),
		list:       ui.NewSongList(),
		lyrics:     ui.NewLyricsView(tr),
		welcome:    ui.NewWelcome(tr, book.Metadata),
		modal:      ui.NewModal(),
		focus:      FocusList,
		sessionID:  sessionID,
		exportPath: DefaultExportPath,
		log:        logger.WithSession(sessionID).With("component", "app"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.history == nil {
		m.history = nav.NewStackHistory()
	}

	m.coord = nav.NewCoordinator(book.Catalog, m.history).WithLogger(logger.WithSession(sessionID))
	m.coord.OnChange(m.syncState)
	m.coord.OnExitRequested(func() { m.exitRequested = true })

	m.header.SetTitle(book.Metadata.Title)
	m.list.SetLabels(tr.T(locale.PaneSongs), tr.T(locale.FilterPlaceholder), tr.T(locale.NoMatches))
	m.list.SetSongs(book.Catalog.Songs())
	m.list.SetFocused(true)
	m.lyrics.SetSong(m.coord.EffectiveSong())

	m.log.Info("reading session started", "songs", book.Catalog.Len(), "version", version)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// State returns the coordinator's selection state
func (m *Model) State() nav.State {
	return m.coord.State()
}

// SessionID returns the reading-session id used in logs
func (m *Model) SessionID() string {
	return m.sessionID
}

// twoPane reports whether list and lyrics are shown side by side
func (m *Model) twoPane() bool {
	return !ui.GetViewContext().IsNarrow()
}

// syncState pushes a new selection state into the views. Registered as
// the coordinator's change observer, so it runs inside the same update.
func (m *Model) syncState(state nav.State) {
	m.list.SetSelectedID(state.SelectedID)
	effective := m.coord.EffectiveSong()
	m.lyrics.SetSong(effective)

	if state.MobileView == nav.ViewEditor {
		m.header.SetSongLabel(m.tr.T(locale.SongNumber, map[string]any{"ID": effective.ID}) + " · " + effective.Title)
		m.setFocus(FocusLyrics)
	} else {
		m.header.SetSongLabel("")
		m.setFocus(FocusList)
	}
}

// setFocus moves keyboard focus between panes
func (m *Model) setFocus(f Focus) {
	if m.focus != f {
		m.log.Debug("focus changed", "from", m.focus.String(), "to", f.String())
	}
	m.focus = f
	m.list.SetFocused(f == FocusList)
	m.lyrics.SetFocused(f == FocusLyrics)
}

// takeExitRequest reports and clears a pending exit request
func (m *Model) takeExitRequest() bool {
	requested := m.exitRequested
	m.exitRequested = false
	return requested
}
