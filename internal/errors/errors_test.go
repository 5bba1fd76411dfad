package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindNetwork, "network error"},
		{KindConfig, "configuration error"},
		{KindGeneration, "generation failed"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "song.Load", Context: "bad file", Err: errors.New("eof")},
			expected: "song.Load: bad file: eof",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "song.Load", Err: errors.New("eof")},
			expected: "song.Load: eof",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("eof")},
			expected: "eof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		wantOp   Op
		wantKind Kind
	}{
		{"all args", []any{Op("a.B"), KindNotFound, "ctx", errors.New("x")}, "a.B", KindNotFound},
		{"context becomes error", []any{Op("a.B"), KindInvalid, "just a message"}, "a.B", KindInvalid},
		{"bare error", []any{errors.New("simple")}, "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}
			if e.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if e.Err == nil {
				t.Error("Err should never be nil")
			}
		})
	}
}

func TestIsAndGetKind(t *testing.T) {
	wrapped := fmt.Errorf("wrapped: %w", SongNotFound(99))

	if !Is(wrapped, KindNotFound) {
		t.Error("Is should see through fmt wrapping")
	}
	if Is(errors.New("plain"), KindNotFound) {
		t.Error("plain errors have no kind")
	}
	if Is(nil, KindNotFound) {
		t.Error("nil has no kind")
	}
	if GetKind(wrapped) != KindNotFound {
		t.Errorf("GetKind = %v, want not found", GetKind(wrapped))
	}
	if GetKind(nil) != KindUnknown {
		t.Error("GetKind(nil) should be unknown")
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name   string
		err    error
		kind   Kind
		op     Op
		substr string
	}{
		{"song not found", SongNotFound(99), KindNotFound, "nav.SelectSong", "song 99"},
		{"catalog invalid", CatalogInvalid("duplicate id 3"), KindInvalid, "song.Validate", "duplicate id 3"},
		{"catalog load", CatalogLoadFailed("/x.yaml", cause), KindIO, "song.Load", "/x.yaml"},
		{"config load", ConfigLoadFailed("/c.json", cause), KindConfig, "config.Load", "/c.json"},
		{"config save", ConfigSaveFailed("/c.json", cause), KindConfig, "config.Save", "/c.json"},
		{"config invalid", ConfigInvalid("bad theme"), KindInvalid, "config.Validate", "bad theme"},
		{"generation failed", GenerationFailed("Silent Night", cause), KindGeneration, "lyrics.Generate", "Silent Night"},
		{"generation empty", GenerationEmpty("Silent Night"), KindGeneration, "lyrics.Generate", "no lyrics"},
		{"generation timeout", GenerationTimeout("Silent Night", cause), KindTimeout, "lyrics.Generate", "timed out"},
		{"export failed", ExportFailed("/out.html", cause), KindIO, "booklet.Export", "/out.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("kind = %v, want %v", GetKind(tt.err), tt.kind)
			}
			var e *Error
			if !errors.As(tt.err, &e) {
				t.Fatal("expected *Error")
			}
			if e.Op != tt.op {
				t.Errorf("Op = %q, want %q", e.Op, tt.op)
			}
			if !strings.Contains(tt.err.Error(), tt.substr) {
				t.Errorf("message %q missing %q", tt.err.Error(), tt.substr)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	inner := errors.New("original error")
	middle := E(Op("middle.Op"), KindIO, inner)
	outer := E(Op("outer.Op"), KindConfig, middle)

	if !errors.Is(outer, inner) {
		t.Error("should find inner error through chain")
	}
	if GetKind(outer) != KindConfig {
		t.Error("GetKind should return the outer kind")
	}
}
