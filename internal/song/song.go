// Package song holds the carol catalog: the Song record, the ordered
// read-only Catalog built from it, and the booklet cover metadata.
package song

import (
	"fmt"
	"slices"

	"github.com/zhubert/songbook/internal/errors"
)

// Song is one carol entry. Lyric text is kept verbatim, including line breaks.
type Song struct {
	ID             int    `yaml:"id" toml:"id" json:"id"`
	Title          string `yaml:"title" toml:"title" json:"title"`
	OriginalTitle  string `yaml:"original_title,omitempty" toml:"original_title,omitempty" json:"originalTitle,omitempty"`
	Lyrics         string `yaml:"lyrics,omitempty" toml:"lyrics,omitempty" json:"lyrics,omitempty"`
	LyricsManglish string `yaml:"lyrics_manglish,omitempty" toml:"lyrics_manglish,omitempty" json:"lyricsManglish,omitempty"`
}

// HasLyrics reports whether the primary-script text is present.
func (s Song) HasLyrics() bool {
	return s.Lyrics != ""
}

// HasAlternate reports whether the transliterated text is present.
func (s Song) HasAlternate() bool {
	return s.LyricsManglish != ""
}

// ShowsOriginalTitle reports whether OriginalTitle should be displayed
// alongside Title.
func (s Song) ShowsOriginalTitle() bool {
	return s.OriginalTitle != "" && s.OriginalTitle != s.Title
}

// Label is the "id – title" form used by the contents page.
func (s Song) Label() string {
	return fmt.Sprintf("%d – %s", s.ID, s.Title)
}

// BookletMetadata is the cover text of the booklet.
type BookletMetadata struct {
	Title    string `yaml:"title" toml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Credits  string `yaml:"credits,omitempty" toml:"credits,omitempty" json:"credits,omitempty"`
}

// DefaultSubtitle is used when a catalog file leaves subtitle empty.
const DefaultSubtitle = "Christmas Carols"

// Catalog is the ordered, immutable list of songs for a session.
// Accessors hand out copies so callers cannot mutate it.
type Catalog struct {
	songs []Song
	index map[int]int
}

// NewCatalog validates songs and builds a Catalog from them. The input
// slice is copied.
func NewCatalog(songs []Song) (*Catalog, error) {
	if err := Validate(songs); err != nil {
		return nil, err
	}
	c := &Catalog{
		songs: slices.Clone(songs),
		index: make(map[int]int, len(songs)),
	}
	for i, s := range c.songs {
		c.index[s.ID] = i
	}
	return c, nil
}

// Validate checks the load-time invariants: at least one song, positive
// ids in strictly ascending (and therefore distinct) order, and a title
// on every entry.
func Validate(songs []Song) error {
	if len(songs) == 0 {
		return errors.CatalogInvalid("catalog has no songs")
	}
	seen := make(map[int]bool, len(songs))
	prev := 0
	for i, s := range songs {
		if s.ID <= 0 {
			return errors.CatalogInvalid(fmt.Sprintf("entry %d: id must be positive, got %d", i+1, s.ID))
		}
		if seen[s.ID] {
			return errors.CatalogInvalid(fmt.Sprintf("entry %d: duplicate id %d", i+1, s.ID))
		}
		seen[s.ID] = true
		if s.ID < prev {
			return errors.CatalogInvalid(fmt.Sprintf("entry %d: id %d is out of order after %d", i+1, s.ID, prev))
		}
		prev = s.ID
		if s.Title == "" {
			return errors.CatalogInvalid(fmt.Sprintf("song %d: title is required", s.ID))
		}
	}
	return nil
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Songs returns a copy of the songs in catalog order.
func (c *Catalog) Songs() []Song {
	return slices.Clone(c.songs)
}

// At returns the song at position i in catalog order.
func (c *Catalog) At(i int) Song {
	return c.songs[i]
}

// Find looks a song up by id.
func (c *Catalog) Find(id int) (Song, bool) {
	i, ok := c.index[id]
	if !ok {
		return Song{}, false
	}
	return c.songs[i], true
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// First returns the first song in catalog order.
func (c *Catalog) First() Song {
	return c.songs[0]
}

// Effective resolves the song shown in the detail pane: the selected song
// when selectedID names one, the first song otherwise.
func (c *Catalog) Effective(selectedID int) Song {
	if s, ok := c.Find(selectedID); ok {
		return s
	}
	return c.First()
}

// IndexOf returns the catalog position of id, or -1.
func (c *Catalog) IndexOf(id int) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// MissingLyrics returns the songs without primary lyric text.
func (c *Catalog) MissingLyrics() []Song {
	var out []Song
	for _, s := range c.songs {
		if !s.HasLyrics() {
			out = append(out, s)
		}
	}
	return out
}

// WithLyrics returns a new Catalog where song id carries the given primary
// lyrics. The receiver is unchanged.
func (c *Catalog) WithLyrics(id int, lyrics string) (*Catalog, error) {
	i, ok := c.index[id]
	if !ok {
		return nil, errors.E(errors.Op("song.WithLyrics"), errors.KindNotFound, fmt.Sprintf("song %d not found in catalog", id))
	}
	songs := c.Songs()
	songs[i].Lyrics = lyrics
	return NewCatalog(songs)
}
