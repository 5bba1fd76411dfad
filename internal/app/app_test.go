package app

import (
	"testing"

	"github.com/google/uuid"

	"github.com/zhubert/songbook/internal/nav"
	"github.com/zhubert/songbook/internal/ui"
)

func TestNew_InitialState(t *testing.T) {
	m := testModel(t)

	state := m.State()
	if !state.ShowWelcome {
		t.Error("a session starts on the welcome layer")
	}
	if state.SelectedID != nav.NoSelection || state.MobileView != nav.ViewList {
		t.Errorf("unexpected initial state %s", state)
	}
	if m.focus != FocusList {
		t.Errorf("initial focus = %s, want list", m.focus)
	}
	if _, err := uuid.Parse(m.SessionID()); err != nil {
		t.Errorf("session id %q is not a uuid: %v", m.SessionID(), err)
	}
}

func TestNew_SessionIDsDiffer(t *testing.T) {
	a := testModel(t)
	b := testModel(t)
	if a.SessionID() == b.SessionID() {
		t.Error("each model should get its own reading session id")
	}
}

func TestNew_SavedThemeInitialization(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetTheme(string(ui.ThemeNord))
	defer ui.SetTheme(ui.ThemeHolly)

	_ = New(cfg, testBook(t), "test-version")

	if got := ui.CurrentTheme().Name; got != "Nord" {
		t.Errorf("Expected theme to be Nord, got %s", got)
	}
}

func TestNew_NarrowWidthFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.NarrowWidth = 150
	defer ui.GetViewContext().SetNarrowWidth(0)

	m := New(cfg, testBook(t), "test-version")
	m.Update(sizeMsg(120, 40))

	if m.twoPane() {
		t.Error("120 columns should be single-pane with a 150 breakpoint")
	}
}

func TestNew_LyricsShowFirstSongBeforeSelection(t *testing.T) {
	m := testModel(t)

	s, ok := m.lyrics.Song()
	if !ok || s.ID != 1 {
		t.Errorf("lyrics pane should fall back to the first song, got %d", s.ID)
	}
}

func TestInit(t *testing.T) {
	if cmd := testModel(t).Init(); cmd != nil {
		t.Error("Init should not schedule anything")
	}
}
