// Package clipboard copies lyric text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/songbook/internal/logger"
)

// Backend is the minimal clipboard surface songbook needs.
type Backend interface {
	Init() error
	WriteText(text string)
}

type systemBackend struct{}

func (systemBackend) Init() error {
	return clipboard.Init()
}

func (systemBackend) WriteText(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}

var (
	mu          sync.Mutex
	backend     Backend = systemBackend{}
	initialized bool
)

// SetBackend replaces the clipboard backend. Tests use an in-memory one.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(systemBackend{})
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := backend.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	return nil
}

// WriteText puts text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	backend.WriteText(text)
	logger.WithComponent("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}
