// Package errors provides structured error types for songbook.
// Errors carry the failing operation and a Kind so callers can branch on
// the category without string matching.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindNetwork
	KindConfig
	KindGeneration
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindGeneration:
		return "generation failed"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for songbook.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Catalog errors
func SongNotFound(id int) error {
	return E(Op("nav.SelectSong"), KindNotFound, fmt.Sprintf("song %d not found in catalog", id))
}

func CatalogInvalid(reason string) error {
	return E(Op("song.Validate"), KindInvalid, reason)
}

func CatalogLoadFailed(path string, err error) error {
	return E(Op("song.Load"), KindIO, fmt.Sprintf("failed to load catalog from %s", path), err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Lyrics generation errors
func GenerationFailed(title string, err error) error {
	return E(Op("lyrics.Generate"), KindGeneration, fmt.Sprintf("could not generate lyrics for %q", title), err)
}

func GenerationEmpty(title string) error {
	return E(Op("lyrics.Generate"), KindGeneration, fmt.Sprintf("provider returned no lyrics for %q", title))
}

func GenerationTimeout(title string, err error) error {
	return E(Op("lyrics.Generate"), KindTimeout, fmt.Sprintf("timed out generating lyrics for %q", title), err)
}

// Export errors
func ExportFailed(path string, err error) error {
	return E(Op("booklet.Export"), KindIO, fmt.Sprintf("failed to write booklet to %s", path), err)
}
