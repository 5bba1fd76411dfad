// Package nav owns the reader's selection state and keeps it in step with
// the back history. Views read State and send intents; only Coordinator
// writes.
package nav

import "fmt"

// MobileView is the active pane in single-pane layouts.
type MobileView int

const (
	ViewList MobileView = iota
	ViewEditor
)

func (v MobileView) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewEditor:
		return "editor"
	default:
		return "unknown"
	}
}

// NoSelection is the SelectedID value meaning nothing is selected. Song ids
// are positive, so zero never names a song.
const NoSelection = 0

// State is the selection state shared by every view.
type State struct {
	SelectedID  int
	MobileView  MobileView
	ShowWelcome bool
}

// InitialState is the state at session start.
func InitialState() State {
	return State{SelectedID: NoSelection, MobileView: ViewList, ShowWelcome: true}
}

// HasSelection reports whether a song was explicitly selected.
func (s State) HasSelection() bool {
	return s.SelectedID != NoSelection
}

func (s State) String() string {
	switch {
	case s.ShowWelcome:
		return "Welcome"
	case s.MobileView == ViewEditor && s.HasSelection():
		return fmt.Sprintf("Editor(%d)", s.SelectedID)
	case s.MobileView == ViewEditor:
		return "Editor(first)"
	default:
		return "List"
	}
}
