package booklet

import (
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("booklet").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 0; }
body { margin: 0; font-family: Georgia, "Noto Serif Malayalam", serif; color: #111; }
.page { width: 210mm; min-height: 297mm; box-sizing: border-box; padding: 20mm; page-break-after: always; break-after: page; }
.cover { display: flex; flex-direction: column; justify-content: center; align-items: center; text-align: center; }
.cover h1 { font-size: 32pt; margin: 0 0 8mm; }
.cover h2 { font-size: 20pt; font-weight: normal; margin: 0; }
.cover .credits { margin-top: auto; font-size: 10pt; }
.contents ol { list-style: none; padding: 0; }
.contents li { padding: 1.5mm 0; border-bottom: 1px dotted #999; }
.song h3 { margin: 0 0 2mm; }
.song .original { font-style: italic; margin: 0 0 6mm; }
.lyrics { white-space: pre-wrap; line-height: 1.5; }
.placeholder { font-style: italic; color: #777; }
.alternate { border-top: 1px solid #999; margin-top: 8mm; padding-top: 8mm; }
</style>
</head>
<body>
{{range .Pages}}{{if eq .Kind 0}}<section class="page cover" data-page="cover">
<h1>{{.Title}}</h1>
<h2>{{.Subtitle}}</h2>
{{if .Credits}}<p class="credits">{{.Credits}}</p>{{end}}
</section>
{{else if eq .Kind 1}}<section class="page contents" data-page="contents">
<h2>{{.Title}}</h2>
<ol>{{range .Entries}}
<li>Song {{.Label}}</li>{{end}}
</ol>
</section>
{{else}}<section class="page song" data-page="song" data-song-id="{{.SongID}}">
<h3>{{.Heading}}</h3>
{{if .OriginalTitle}}<p class="original">{{.OriginalTitle}}</p>
{{end}}<div class="lyrics{{if .Primary.Placeholder}} placeholder{{end}}">{{.Primary.Text}}</div>
{{with .Alternate}}<div class="lyrics alternate">{{.Text}}</div>
{{end}}</section>
{{end}}{{end}}</body>
</html>
`))

type htmlData struct {
	Title string
	Pages []Page
}

// WriteHTML writes doc as a standalone HTML page sized for A4 printing with
// zero margins. Every page section forces a break after itself; the two
// lyric variants of a song share one section.
func WriteHTML(w io.Writer, doc Document) error {
	title := "Songbook"
	if len(doc.Pages) > 0 && doc.Pages[0].Kind == PageCover && doc.Pages[0].Title != "" {
		title = doc.Pages[0].Title
	}
	return htmlTemplate.Execute(w, htmlData{Title: title, Pages: doc.Pages})
}
