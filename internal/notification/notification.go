// Package notification sends desktop notifications through beeep.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/songbook/internal/logger"
)

// AppName is the notification title.
const AppName = "Songbook"

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier swaps the notification backend. Tests use it to capture calls.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	if err := notify(title, message, ""); err != nil {
		log.Warn("notification failed", "error", err)
		return err
	}
	return nil
}

// BookletExported announces a finished booklet export.
func BookletExported(path string, pages int) error {
	return Send(AppName, fmt.Sprintf("Booklet ready: %d pages written to %s", pages, path))
}

// LyricsGenerated announces the end of a generation run.
func LyricsGenerated(succeeded, failed int) error {
	return Send(AppName, fmt.Sprintf("Lyrics generation finished: %d added, %d failed", succeeded, failed))
}
