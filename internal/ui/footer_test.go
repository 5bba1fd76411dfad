package ui

import (
	"strings"
	"testing"
	"time"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if len(footer.bindings) == 0 {
		t.Error("Expected default bindings to be set")
	}
	if footer.HasFlash() {
		t.Error("Expected no flash message initially")
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(100)

	footer.SetFlash("Test error message", FlashError)

	if !footer.HasFlash() {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Duration != DefaultFlashDuration {
		t.Errorf("Expected duration %v, got %v", DefaultFlashDuration, footer.flashMessage.Duration)
	}

	view := stripANSI(footer.View())
	if !strings.Contains(view, "Test error message") {
		t.Errorf("flash should replace bindings, got %q", view)
	}
	if strings.Contains(view, "navigate") {
		t.Error("bindings should be hidden while a flash is showing")
	}
}

func TestFooter_FlashIcons(t *testing.T) {
	tests := []struct {
		flashType FlashType
		icon      string
	}{
		{FlashError, "✕"},
		{FlashWarning, "⚠"},
		{FlashInfo, "ℹ"},
		{FlashSuccess, "✓"},
	}

	for _, tt := range tests {
		footer := NewFooter()
		footer.SetWidth(80)
		footer.SetFlash("msg", tt.flashType)
		if view := stripANSI(footer.View()); !strings.Contains(view, tt.icon) {
			t.Errorf("flash type %d should show %q, got %q", tt.flashType, tt.icon, view)
		}
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	footer := NewFooter()

	footer.SetFlashWithDuration("short", FlashInfo, time.Millisecond)
	footer.flashMessage.CreatedAt = time.Now().Add(-time.Second)

	if !footer.ClearIfExpired() {
		t.Error("expired flash should be cleared")
	}
	if footer.HasFlash() {
		t.Error("flash should be gone")
	}

	footer.SetFlashWithDuration("long", FlashInfo, time.Hour)
	if footer.ClearIfExpired() {
		t.Error("fresh flash should not be cleared")
	}

	footer.ClearFlash()
	if footer.HasFlash() {
		t.Error("ClearFlash should remove the flash")
	}
}

func TestFooter_ContextBindings(t *testing.T) {
	tests := []struct {
		name         string
		mode         FooterMode
		hasAlternate bool
		twoPane      bool
		want         []string
		notWant      []string
	}{
		{name: "welcome", mode: FooterWelcome, want: []string{"open songbook", "quit"}, notWant: []string{"navigate"}},
		{name: "list two pane", mode: FooterList, twoPane: true, want: []string{"navigate", "filter", "switch pane"}},
		{name: "list single pane", mode: FooterList, want: []string{"navigate"}, notWant: []string{"switch pane"}},
		{name: "filter", mode: FooterFilter, want: []string{"keep filter", "clear"}},
		{name: "editor with alternate", mode: FooterEditor, hasAlternate: true, want: []string{"back", "manglish", "copy"}},
		{name: "editor without alternate", mode: FooterEditor, want: []string{"back", "copy"}, notWant: []string{"manglish", "switch pane"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(160)
			footer.SetContext(tt.mode, tt.hasAlternate, tt.twoPane)

			view := stripANSI(footer.View())
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("footer %q should contain %q", view, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(view, w) {
					t.Errorf("footer %q should not contain %q", view, w)
				}
			}
		})
	}
}

func TestFooter_SetBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(80)
	footer.SetContext(FooterList, false, true)
	footer.SetBindings([]KeyBinding{{Key: "x", Desc: "custom"}})

	if view := stripANSI(footer.View()); !strings.Contains(view, "custom") {
		t.Errorf("custom binding missing from %q", view)
	}
}
