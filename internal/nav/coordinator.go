package nav

import (
	"log/slog"

	"github.com/zhubert/songbook/internal/errors"
	"github.com/zhubert/songbook/internal/logger"
	"github.com/zhubert/songbook/internal/song"
)

// Coordinator is the single writer of State and the only caller of History
// mutations. All methods are expected to run on one goroutine (the UI
// event loop); there is no locking.
type Coordinator struct {
	catalog *song.Catalog
	history History
	state   State

	onChange []func(State)
	onExit   func()

	log *slog.Logger
}

// NewCoordinator wires a coordinator to its catalog and history and
// registers the external back handler.
func NewCoordinator(catalog *song.Catalog, history History) *Coordinator {
	c := &Coordinator{
		catalog: catalog,
		history: history,
		state:   InitialState(),
		log:     logger.WithComponent("nav"),
	}
	history.OnPopped(c.handlePopped)
	return c
}

// WithLogger replaces the coordinator's logger, typically with a
// session-scoped one.
func (c *Coordinator) WithLogger(l *slog.Logger) *Coordinator {
	c.log = l.With(slog.String("component", "nav"))
	return c
}

// OnChange registers an observer called after every state change.
func (c *Coordinator) OnChange(fn func(State)) {
	c.onChange = append(c.onChange, fn)
}

// OnExitRequested registers the callback for a back step with nothing left
// to pop. The callback decides whether to confirm via ExitGuardActive.
func (c *Coordinator) OnExitRequested(fn func()) {
	c.onExit = fn
}

// State returns a copy of the current selection state.
func (c *Coordinator) State() State {
	return c.state
}

// Catalog returns the catalog the coordinator resolves ids against.
func (c *Coordinator) Catalog() *song.Catalog {
	return c.catalog
}

// EffectiveSong is the song the detail view shows.
func (c *Coordinator) EffectiveSong() song.Song {
	return c.catalog.Effective(c.state.SelectedID)
}

// Start dismisses the welcome layer. Only the first call has an effect.
func (c *Coordinator) Start() {
	if !c.state.ShowWelcome {
		return
	}
	c.set(State{SelectedID: c.state.SelectedID, MobileView: c.state.MobileView, ShowWelcome: false}, "start")
}

// SelectSong opens song id in the editor pane and pushes exactly one
// history entry. Unknown ids, and any selection while the welcome layer is
// up, are rejected without touching state or history.
func (c *Coordinator) SelectSong(id int) error {
	if c.state.ShowWelcome {
		c.log.Debug("ignoring selection during welcome", "songID", id)
		return errors.E(errors.Op("nav.SelectSong"), errors.KindInvalid, "songbook not opened yet")
	}
	if !c.catalog.Contains(id) {
		c.log.Warn("rejected selection", "songID", id)
		return errors.SongNotFound(id)
	}
	c.history.Push(Entry{View: EditorView, SongID: id})
	c.set(State{SelectedID: id, MobileView: ViewEditor, ShowWelcome: c.state.ShowWelcome}, "select")
	return nil
}

// BackToList returns to the list pane. When the top of history is an
// editor entry it steps history back and lets the popped handler reset
// state, so the two never diverge. Otherwise it resets state directly.
func (c *Coordinator) BackToList() {
	if top, ok := c.history.Current(); ok && top.IsEditor() {
		c.log.Debug("back to list via history", "songID", top.SongID)
		c.history.Back()
		return
	}
	c.log.Debug("back to list without history entry")
	c.resetToList("back-fallback")
}

// ExternalBack is the platform back signal (esc in the terminal). It
// simply steps history; the popped handler does the rest.
func (c *Coordinator) ExternalBack() {
	c.history.Back()
}

// ExitGuardActive reports whether leaving the session needs confirmation.
func (c *Coordinator) ExitGuardActive() bool {
	return !c.state.ShowWelcome
}

// handlePopped always lands on the list, whichever entry was restored.
// During welcome every back step is ignored, including one past the root.
func (c *Coordinator) handlePopped(restored Entry, ok bool, exited bool) {
	if c.state.ShowWelcome {
		c.log.Debug("ignoring back during welcome", "exited", exited)
		return
	}
	if exited {
		c.log.Debug("back past first entry")
		if c.onExit != nil {
			c.onExit()
		}
		return
	}
	c.resetToList("popped")
}

func (c *Coordinator) resetToList(reason string) {
	c.set(State{SelectedID: NoSelection, MobileView: ViewList, ShowWelcome: c.state.ShowWelcome}, reason)
}

func (c *Coordinator) set(next State, reason string) {
	prev := c.state
	c.state = next
	c.log.Info("state transition", "reason", reason, "from", prev.String(), "to", next.String())
	for _, fn := range c.onChange {
		fn(next)
	}
}
