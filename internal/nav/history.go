package nav

// EditorView is the only view tag ever pushed onto history.
const EditorView = "editor"

// Entry is a history entry. The coordinator only produces
// {View: EditorView, SongID: id}.
type Entry struct {
	View   string `json:"view"`
	SongID int    `json:"songId"`
}

// IsEditor reports whether the entry was pushed by a song selection.
func (e Entry) IsEditor() bool {
	return e.View == EditorView
}

// PoppedFunc is called after a back step. restored is the entry now on
// top, ok is false when no tagged entry remains. exited is true when back
// was requested with nothing left to pop, meaning the user is leaving.
type PoppedFunc func(restored Entry, ok bool, exited bool)

// History is the back/forward capability the coordinator drives. A terminal
// build uses StackHistory; anything with push, current and back semantics
// can stand in.
type History interface {
	// Push adds an entry on top of the history.
	Push(e Entry)
	// Current returns the top entry, if any.
	Current() (Entry, bool)
	// Back steps back once and notifies the popped handler.
	Back()
	// OnPopped registers the handler invoked after every back step.
	OnPopped(fn PoppedFunc)
}

// StackHistory is an in-memory History. Back runs the popped handler
// synchronously, so a back step completes within the event that caused it.
type StackHistory struct {
	entries []Entry
	onPop   PoppedFunc
}

// NewStackHistory returns an empty history.
func NewStackHistory() *StackHistory {
	return &StackHistory{entries: make([]Entry, 0)}
}

func (h *StackHistory) Push(e Entry) {
	h.entries = append(h.entries, e)
}

func (h *StackHistory) Current() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *StackHistory) Back() {
	exited := len(h.entries) == 0
	if !exited {
		h.entries = h.entries[:len(h.entries)-1]
	}
	if h.onPop == nil {
		return
	}
	top, ok := h.Current()
	h.onPop(top, ok, exited)
}

func (h *StackHistory) OnPopped(fn PoppedFunc) {
	h.onPop = fn
}

// Len returns the number of entries.
func (h *StackHistory) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, oldest first.
func (h *StackHistory) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}
