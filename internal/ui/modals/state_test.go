package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: key}
}

func testSections() []HelpSection {
	return []HelpSection{
		{Title: "Navigation", Shortcuts: []HelpShortcut{
			{Key: "enter", Desc: "Open song"},
			{Key: "esc", Desc: "Back"},
		}},
		{Title: "Lyrics", Shortcuts: []HelpShortcut{
			{Key: "m", Desc: "Toggle Manglish"},
		}},
	}
}

func TestHelpState_StartsOnFirstShortcut(t *testing.T) {
	s := NewHelpStateFromSections(testSections())

	sc := s.GetSelectedShortcut()
	if sc == nil || sc.Key != "enter" {
		t.Fatalf("selected = %+v, want enter", sc)
	}
}

func TestHelpState_Navigate(t *testing.T) {
	s := NewHelpStateFromSections(testSections())

	s.Update(keyPress("down"))
	if sc := s.GetSelectedShortcut(); sc == nil || sc.Key != "esc" {
		t.Fatalf("after down, selected = %+v", sc)
	}

	// Next row is the "Lyrics" heading
	s.Update(keyPress("down"))
	if sc := s.GetSelectedShortcut(); sc != nil {
		t.Errorf("heading should not be selectable as a shortcut, got %+v", sc)
	}
}

func TestHelpState_Render(t *testing.T) {
	s := NewHelpStateFromSections(testSections())
	out := ansi.Strip(s.Render())

	for _, want := range []string{"Keyboard Shortcuts", "Navigation", "Open song", "Toggle Manglish"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if s.IsFiltering() {
		t.Error("should not start in filter mode")
	}
}

func TestConfirmExitState_DefaultsToStay(t *testing.T) {
	s := NewConfirmExitState(ExitLabels{Title: "Leave the songbook?", Confirm: "Leave", Cancel: "Stay"})

	if s.Leave() {
		t.Error("exit prompt should default to staying")
	}
	if s.Title() != "Leave the songbook?" {
		t.Errorf("Title() = %q", s.Title())
	}

	out := ansi.Strip(s.Render())
	for _, want := range []string{"Leave the songbook?", "Leave", "Stay"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestConfirmExitState_EnterIsLeftToApp(t *testing.T) {
	s := NewConfirmExitState(ExitLabels{Title: "t", Confirm: "Leave", Cancel: "Stay"})

	_, cmd := s.Update(keyPress("enter"))
	if cmd != nil {
		t.Error("enter should be swallowed for the app-layer handler")
	}
	if s.Leave() {
		t.Error("enter must not change the choice")
	}
}

func TestThemeState(t *testing.T) {
	opts := []ThemeOption{
		{Key: "holly", Name: "Holly"},
		{Key: "nord", Name: "Nord"},
	}
	s := NewThemeState(opts, "holly")

	if s.GetSelectedTheme() != "holly" {
		t.Errorf("selected = %q", s.GetSelectedTheme())
	}
	if s.ThemeChanged() {
		t.Error("no change yet")
	}

	out := ansi.Strip(s.Render())
	if !strings.Contains(out, "Holly (current)") || !strings.Contains(out, "Nord") {
		t.Errorf("render:\n%s", out)
	}
}
