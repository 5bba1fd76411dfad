package ui

import (
	"strings"
	"testing"
)

func testExitLabels() ExitLabels {
	return ExitLabels{Title: "Leave the songbook?", Confirm: "Leave", Cancel: "Stay"}
}

func TestModal_ShowHide(t *testing.T) {
	modal := NewModal()
	if modal.IsVisible() {
		t.Error("New modal should not be visible")
	}

	modal.Show(NewConfirmExitState(testExitLabels()))
	if !modal.IsVisible() {
		t.Error("Modal should be visible after Show")
	}

	modal.Hide()
	if modal.IsVisible() || modal.State != nil {
		t.Error("Modal should be cleared after Hide")
	}
}

func TestModal_Error(t *testing.T) {
	modal := NewModal()
	modal.Show(NewConfirmExitState(testExitLabels()))

	modal.SetError("Something went wrong")
	if modal.GetError() != "Something went wrong" {
		t.Errorf("GetError() = %q", modal.GetError())
	}
	if view := stripANSI(modal.View(100, 30)); !strings.Contains(view, "Something went wrong") {
		t.Error("error should render below the modal content")
	}

	// Show resets the error
	modal.Show(NewConfirmExitState(testExitLabels()))
	if modal.GetError() != "" {
		t.Error("Show should clear the previous error")
	}
}

func TestModal_ViewHidden(t *testing.T) {
	if view := NewModal().View(80, 24); view != "" {
		t.Errorf("hidden modal should render nothing, got %q", view)
	}
}

func TestModal_ViewConfirmExit(t *testing.T) {
	modal := NewModal()
	modal.Show(NewConfirmExitState(testExitLabels()))

	view := stripANSI(modal.View(100, 30))
	for _, want := range []string{"Leave the songbook?", "Leave", "Stay"} {
		if !strings.Contains(view, want) {
			t.Errorf("modal view should contain %q", want)
		}
	}
}

func TestModal_ViewHelpUsesWideWidth(t *testing.T) {
	modal := NewModal()
	modal.Show(NewHelpStateFromSections([]HelpSection{
		{Title: "Navigation", Shortcuts: []HelpShortcut{{Key: "esc", Desc: "Back to list"}}},
	}))

	view := stripANSI(modal.View(120, 40))
	if !strings.Contains(view, "Keyboard Shortcuts") {
		t.Error("help modal should render its title")
	}
	if !strings.Contains(view, "Back to list") {
		t.Error("help modal should render shortcuts")
	}
}

func TestNewThemeState_ListsBuiltinThemes(t *testing.T) {
	state := NewThemeState(ThemeHolly)

	if got := state.GetSelectedTheme(); got != string(ThemeHolly) {
		t.Errorf("GetSelectedTheme() = %q, want %q", got, ThemeHolly)
	}
	if state.ThemeChanged() {
		t.Error("theme should not be changed before a selection")
	}

	view := stripANSI(state.Render())
	for _, name := range ThemeNames() {
		if !strings.Contains(view, GetTheme(name).Name) {
			t.Errorf("theme picker should list %q", GetTheme(name).Name)
		}
	}
}
