package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/songbook/internal/logger"
	"github.com/zhubert/songbook/internal/song"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// stripANSI removes escape codes so tests can assert on visible text
func stripANSI(s string) string {
	return ansi.Strip(s)
}

func testSongs() []song.Song {
	return []song.Song{
		{ID: 1, Title: "Joy to the World", Lyrics: "Joy to the world\nthe Lord is come"},
		{ID: 2, Title: "Silent Night", OriginalTitle: "Stille Nacht", Lyrics: "Silent night\nholy night"},
		{ID: 3, Title: "Rakshakan", OriginalTitle: "രക്ഷകൻ", Lyrics: "രക്ഷകൻ പിറന്നു", LyricsManglish: "rakshakan pirannu"},
		{ID: 4, Title: "Gloria"},
	}
}
