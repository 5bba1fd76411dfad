package booklet

import (
	"bufio"
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

// PageBreak ends every page in text output. Printers and pagers treat a
// form feed as the start of a new sheet.
const PageBreak = "\f"

// DefaultTextWidth is the column width used to centre cover text.
const DefaultTextWidth = 64

// WriteText writes doc as plain text, one form-feed terminated page per
// logical page. Lyric text is copied verbatim.
func WriteText(w io.Writer, doc Document, width int) error {
	if width <= 0 {
		width = DefaultTextWidth
	}
	bw := bufio.NewWriter(w)
	for _, p := range doc.Pages {
		writeTextPage(bw, p, width)
		bw.WriteString(PageBreak)
	}
	return bw.Flush()
}

func writeTextPage(w *bufio.Writer, p Page, width int) {
	switch p.Kind {
	case PageCover:
		w.WriteString(strings.Repeat("\n", 6))
		w.WriteString(center(strings.ToUpper(p.Title), width) + "\n\n")
		w.WriteString(center(p.Subtitle, width) + "\n")
		if p.Credits != "" {
			w.WriteString(strings.Repeat("\n", 10))
			w.WriteString(center(p.Credits, width) + "\n")
		}
	case PageContents:
		w.WriteString(center(p.Title, width) + "\n\n")
		for _, e := range p.Entries {
			w.WriteString("Song " + e.Label + "\n")
		}
	case PageSong:
		w.WriteString(p.Heading + "\n")
		if p.OriginalTitle != "" {
			w.WriteString(p.OriginalTitle + "\n")
		}
		w.WriteString("\n")
		w.WriteString(p.Primary.Text + "\n")
		if p.Alternate != nil {
			w.WriteString("\n" + separator(width) + "\n\n")
			w.WriteString(p.Alternate.Text + "\n")
		}
	}
}

func separator(width int) string {
	return strings.Repeat("─", width/2)
}

// center pads s on the left so it sits in the middle of width columns.
// Width is measured in grapheme clusters so Malayalam titles line up.
func center(s string, width int) string {
	sw := uniseg.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", (width-sw)/2) + s
}
