package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/songbook/internal/errors"
	"github.com/zhubert/songbook/internal/lyrics"
	"github.com/zhubert/songbook/internal/song"
)

// stubSource returns canned results keyed by title.
type stubSource struct {
	texts map[string]string
	calls []string
}

func (s *stubSource) Generate(ctx context.Context, displayTitle, alternateTitle string) (lyrics.Result, error) {
	s.calls = append(s.calls, displayTitle)
	text, ok := s.texts[displayTitle]
	if !ok {
		return lyrics.Result{}, errors.GenerationEmpty(displayTitle)
	}
	return lyrics.Result{Text: text, Provider: "stub"}, nil
}

func TestGenerateTargets(t *testing.T) {
	catalog := testBook(t).Catalog

	tests := []struct {
		name     string
		args     []string
		missing  bool
		wantIDs  []int
		wantKind errors.Kind
	}{
		{"explicit id", []string{"2"}, false, []int{2}, errors.KindUnknown},
		{"id wins over missing", []string{"1"}, true, []int{1}, errors.KindUnknown},
		{"missing only", nil, true, []int{3}, errors.KindUnknown},
		{"unknown id", []string{"99"}, false, nil, errors.KindNotFound},
		{"not a number", []string{"two"}, false, nil, errors.KindInvalid},
		{"nothing asked", nil, false, nil, errors.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generateTargets(catalog, tt.args, tt.missing)
			if tt.wantKind != errors.KindUnknown {
				if !errors.Is(err, tt.wantKind) {
					t.Errorf("err = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("targets = %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, s := range got {
				if s.ID != tt.wantIDs[i] {
					t.Errorf("target %d id = %d, want %d", i, s.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestGenerateLyrics(t *testing.T) {
	catalog := testBook(t).Catalog
	src := &stubSource{texts: map[string]string{"Gloria": "Gloria in excelsis Deo"}}
	all := catalog.Songs()

	var out bytes.Buffer
	report := generateLyrics(context.Background(), src, catalog, all[1:], time.Second, &out)

	if report.Succeeded != 1 || report.Failed != 1 {
		t.Errorf("succeeded/failed = %d/%d, want 1/1", report.Succeeded, report.Failed)
	}
	if len(src.calls) != 2 {
		t.Errorf("calls = %v, want two", src.calls)
	}

	gloria, _ := report.Catalog.Find(3)
	if gloria.Lyrics != "Gloria in excelsis Deo" {
		t.Errorf("Gloria lyrics = %q", gloria.Lyrics)
	}
	jingle, _ := report.Catalog.Find(2)
	if jingle.Lyrics != "Line C" {
		t.Errorf("failed generation must not touch existing lyrics, got %q", jingle.Lyrics)
	}
	if original, _ := catalog.Find(3); original.HasLyrics() {
		t.Error("source catalog should be unchanged")
	}

	if !strings.Contains(out.String(), "✗ 2 – Jingle Bells") {
		t.Errorf("output should report the failure:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "✓ 3 – Gloria (via stub)") {
		t.Errorf("output should report the success:\n%s", out.String())
	}
}

func TestGenerateLyricsThroughChain(t *testing.T) {
	catalog := testBook(t).Catalog
	s, _ := catalog.Find(3)

	// An empty chain always fails; no placeholder text may be written.
	var out bytes.Buffer
	report := generateLyrics(context.Background(), lyrics.NewChain(), catalog, []song.Song{s}, time.Second, &out)
	if report.Succeeded != 0 || report.Failed != 1 {
		t.Errorf("succeeded/failed = %d/%d, want 0/1", report.Succeeded, report.Failed)
	}
	if got, _ := report.Catalog.Find(3); got.HasLyrics() {
		t.Errorf("lyrics = %q, want none", got.Lyrics)
	}
}

func TestNewLyricsChain(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	cfg := testConfig(t)
	if got := newLyricsChain(cfg, time.Second).Len(); got != 1 {
		t.Errorf("providers without key = %d, want 1", got)
	}

	t.Setenv("GEMINI_API_KEY", "test-key")
	if got := newLyricsChain(cfg, time.Second).Len(); got != 2 {
		t.Errorf("providers with key = %d, want 2", got)
	}
}
