// Package booklet lays the catalog out as a printable document: a cover,
// a contents page, then one page per song. Build is pure; the writers in
// text.go and html.go turn the result into bytes.
package booklet

import (
	"fmt"

	"github.com/zhubert/songbook/internal/song"
)

// Placeholder texts shown in place of missing lyric blocks.
const (
	MissingLyrics    = "[Lyrics not available]"
	MissingAlternate = "[Manglish version not available for this song]"
)

// PageKind identifies what a page holds.
type PageKind int

const (
	PageCover PageKind = iota
	PageContents
	PageSong
)

func (k PageKind) String() string {
	switch k {
	case PageCover:
		return "cover"
	case PageContents:
		return "contents"
	case PageSong:
		return "song"
	default:
		return "unknown"
	}
}

// Block is one run of lyric text. Placeholder blocks carry the notice text.
type Block struct {
	Text        string
	Placeholder bool
}

// ContentsEntry is one line of the contents page.
type ContentsEntry struct {
	SongID int
	Label  string
}

// Page is one logical page. Which fields are set depends on Kind.
type Page struct {
	Kind PageKind

	// Cover
	Title    string
	Subtitle string
	Credits  string

	// Contents
	Entries []ContentsEntry

	// Song
	SongID        int
	Heading       string
	OriginalTitle string
	Primary       Block
	Alternate     *Block
}

// Document is the full booklet, pages in print order.
type Document struct {
	Pages []Page
}

// Len returns the number of logical pages.
func (d Document) Len() int {
	return len(d.Pages)
}

// SongPages returns the song pages only.
func (d Document) SongPages() []Page {
	var out []Page
	for _, p := range d.Pages {
		if p.Kind == PageSong {
			out = append(out, p)
		}
	}
	return out
}

// Build renders a catalog to 2+N pages. It never looks at selection state.
func Build(catalog *song.Catalog, meta song.BookletMetadata) Document {
	songs := catalog.Songs()
	pages := make([]Page, 0, len(songs)+2)

	pages = append(pages, Page{
		Kind:     PageCover,
		Title:    meta.Title,
		Subtitle: meta.Subtitle,
		Credits:  meta.Credits,
	})

	entries := make([]ContentsEntry, 0, len(songs))
	for _, s := range songs {
		entries = append(entries, ContentsEntry{SongID: s.ID, Label: s.Label()})
	}
	pages = append(pages, Page{Kind: PageContents, Title: "Contents", Entries: entries})

	for _, s := range songs {
		pages = append(pages, songPage(s))
	}
	return Document{Pages: pages}
}

func songPage(s song.Song) Page {
	p := Page{
		Kind:    PageSong,
		SongID:  s.ID,
		Heading: fmt.Sprintf("Song %d – %s", s.ID, s.Title),
		Primary: Block{Text: s.Lyrics},
	}
	if s.ShowsOriginalTitle() {
		p.OriginalTitle = s.OriginalTitle
	}
	if !s.HasLyrics() {
		p.Primary = Block{Text: MissingLyrics, Placeholder: true}
	}
	if s.HasAlternate() {
		p.Alternate = &Block{Text: s.LyricsManglish}
	}
	return p
}
