package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/songbook/internal/keys"
	"github.com/zhubert/songbook/internal/notification"
	"github.com/zhubert/songbook/internal/ui"
)

func helpKeys(sections []ui.HelpSection) map[string]bool {
	found := make(map[string]bool)
	for _, s := range sections {
		for _, sc := range s.Shortcuts {
			found[sc.Key] = true
		}
	}
	return found
}

func TestShortcutRegistry_KeysHaveHandlers(t *testing.T) {
	for _, s := range ShortcutRegistry {
		if s.Handler == nil {
			t.Errorf("shortcut %q has no handler", s.Key)
		}
		if s.Description == "" {
			t.Errorf("shortcut %q has no description", s.Key)
		}
		found := false
		for _, c := range categoryOrder {
			if c == s.Category {
				found = true
			}
		}
		if !found {
			t.Errorf("shortcut %q has unknown category %q", s.Key, s.Category)
		}
	}
}

func TestHelpSections_FollowState(t *testing.T) {
	all := append(ShortcutRegistry, helpShortcut)

	m := testModelWithSize(t, 60, 24)
	welcome := helpKeys(m.getApplicableHelpSections(all, DisplayOnlyShortcuts))
	if welcome["Esc"] || welcome["m"] || welcome["p"] {
		t.Error("reader shortcuts should be hidden on the welcome layer")
	}
	if !welcome["q"] || !welcome["?"] {
		t.Error("quit and help should always be listed")
	}

	m = sendKey(m, keys.Enter)
	list := helpKeys(m.getApplicableHelpSections(all, DisplayOnlyShortcuts))
	if !list["Esc"] || !list["/"] || !list["p"] {
		t.Error("list shortcuts missing")
	}
	if list["y"] || list["m"] || list["b"] {
		t.Error("lyrics shortcuts should be hidden while only the list is visible")
	}

	m = sendKey(m, keys.Down)
	m = sendKeyRun(m, keys.Enter)
	editor := helpKeys(m.getApplicableHelpSections(all, DisplayOnlyShortcuts))
	if !editor["y"] || !editor["m"] || !editor["b"] {
		t.Error("lyrics shortcuts should be listed for a song with a transliteration")
	}
}

func TestHelpSections_NoToggleWithoutAlternate(t *testing.T) {
	m := openedModel(t, 60, 24)
	m = sendKeyRun(m, keys.Enter) // Silent Night has no transliteration

	found := helpKeys(m.getApplicableHelpSections(append(ShortcutRegistry, helpShortcut), DisplayOnlyShortcuts))
	if found["m"] {
		t.Error("toggle should not be offered without a transliteration")
	}

	m = sendKey(m, "m")
	if m.lyrics.ShowAlternate() {
		t.Error("m should do nothing without a transliteration")
	}
}

func TestNormalizeHelpDisplayKey(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"Esc", keys.Escape},
		{"Backspace", keys.Backspace},
		{"Tab", keys.Tab},
		{"ctrl-c", keys.CtrlC},
		{"m", "m"},
		{"?", "?"},
		{"↑/↓ or j/k", ""},
		{"PgUp/PgDn", ""},
	}
	for _, tt := range tests {
		if got := normalizeHelpDisplayKey(tt.display); got != tt.want {
			t.Errorf("normalizeHelpDisplayKey(%q) = %q, want %q", tt.display, got, tt.want)
		}
	}
}

func TestHelpShortcutTrigger(t *testing.T) {
	m := openedModel(t, 60, 24)
	m = sendKeyRun(m, keys.Enter)

	result, _ := m.Update(ui.HelpShortcutTriggeredMsg{Key: "b"})
	m = result.(*Model)

	if m.State().SelectedID != 0 {
		t.Error("b from the help modal should go back to the list")
	}
}

func TestCopyLyrics(t *testing.T) {
	fake := useFakeClipboard(t)
	m := openedModel(t, 60, 24)
	m = sendKey(m, keys.Down)
	m = sendKeyRun(m, keys.Enter)

	m = sendKey(m, "y")
	if fake.text != "Line C" {
		t.Errorf("copied %q, want primary text", fake.text)
	}

	m = sendKey(m, "m")
	m = sendKey(m, "y")
	if fake.text != "Line D" {
		t.Errorf("copied %q, want transliteration", fake.text)
	}
	if !m.footer.HasFlash() {
		t.Error("copy should confirm with a flash")
	}
}

func TestCopyLyrics_NotOnListOnly(t *testing.T) {
	fake := useFakeClipboard(t)
	m := openedModel(t, 60, 24)

	sendKey(m, "y")
	if fake.text != "" {
		t.Error("nothing should be copied while the lyrics are hidden")
	}
}

func TestExportBooklet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booklet.html")
	m := openedModel(t, 60, 24, WithExportPath(path))

	m = sendKey(m, "p")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("booklet not written: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Carols 2026", "Jingle Bells", "Line D"} {
		if !strings.Contains(html, want) {
			t.Errorf("booklet missing %q", want)
		}
	}
	if got := strings.Count(html, `class="page `); got != 4 {
		t.Errorf("booklet has %d pages, want 4", got)
	}
	if !m.footer.HasFlash() {
		t.Error("export should confirm with a flash")
	}
}

func TestExportBooklet_Notifies(t *testing.T) {
	var sent []string
	notification.SetNotifier(func(title, message string, icon any) error {
		sent = append(sent, message)
		return nil
	})
	defer notification.ResetNotifier()

	path := filepath.Join(t.TempDir(), "booklet.html")
	cfg := testConfig(t)
	cfg.SetNotificationsEnabled(true)
	m := New(cfg, testBook(t), "test", WithExportPath(path))
	m.Update(sizeMsg(60, 24))
	m = sendKey(m, keys.Enter)

	sendKey(m, "p")
	if len(sent) != 1 || !strings.Contains(sent[0], "4 pages") {
		t.Errorf("notifications = %v", sent)
	}
}

func TestExportBooklet_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "booklet.html")
	m := openedModel(t, 60, 24, WithExportPath(path))

	m = sendKey(m, "p")
	if !m.footer.HasFlash() {
		t.Fatal("failed export should flash")
	}
	if !strings.Contains(m.footer.View(), "✕") {
		t.Error("failed export should flash an error")
	}
}
