package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/songbook/internal/booklet"
	"github.com/zhubert/songbook/internal/config"
	"github.com/zhubert/songbook/internal/errors"
	"github.com/zhubert/songbook/internal/notification"
)

var (
	bookletFormat string
	bookletOutput string
	bookletWidth  int
)

var bookletCmd = &cobra.Command{
	Use:   "booklet",
	Short: "Render the catalog as a printable booklet",
	Long: `Renders the whole catalog as a booklet: a cover page, a contents page,
then one page per song in catalog order.

Examples:
  songbook booklet                          # Plain text to stdout
  songbook booklet -o carols.html           # HTML, format taken from the extension
  songbook booklet --format text -o out.txt # Form-feed separated text pages`,
	RunE: runBooklet,
}

func init() {
	bookletCmd.Flags().StringVar(&bookletFormat, "format", "", "Output format: text or html (default from the output extension, else text)")
	bookletCmd.Flags().StringVarP(&bookletOutput, "output", "o", "", "Output file (default stdout)")
	bookletCmd.Flags().IntVar(&bookletWidth, "width", booklet.DefaultTextWidth, "Column width for centred text output")
	rootCmd.AddCommand(bookletCmd)
}

func runBooklet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	book, err := loadBook(cfg)
	if err != nil {
		return err
	}

	format, err := resolveBookletFormat(bookletFormat, bookletOutput)
	if err != nil {
		return err
	}

	doc := booklet.Build(book.Catalog, book.Metadata)
	if bookletOutput == "" || bookletOutput == "-" {
		return writeBooklet(cmd.OutOrStdout(), doc, format, bookletWidth)
	}

	if err := exportBooklet(bookletOutput, doc, format, bookletWidth); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages to %s\n", doc.Len(), bookletOutput)
	if cfg.GetNotificationsEnabled() {
		_ = notification.BookletExported(bookletOutput, doc.Len())
	}
	return nil
}

// resolveBookletFormat picks the output format from the flag, falling back
// to the output file extension.
func resolveBookletFormat(format, output string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".html", ".htm":
			return "html", nil
		default:
			return "text", nil
		}
	}
	switch format {
	case "text", "txt":
		return "text", nil
	case "html":
		return "html", nil
	}
	return "", errors.E(errors.Op("cmd.booklet"), errors.KindInvalid, fmt.Sprintf("unknown booklet format %q (want text or html)", format))
}

func writeBooklet(w io.Writer, doc booklet.Document, format string, width int) error {
	if format == "html" {
		return booklet.WriteHTML(w, doc)
	}
	return booklet.WriteText(w, doc, width)
}

func exportBooklet(path string, doc booklet.Document, format string, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.ExportFailed(path, err)
	}
	if err := writeBooklet(f, doc, format, width); err != nil {
		f.Close()
		return errors.ExportFailed(path, err)
	}
	if err := f.Close(); err != nil {
		return errors.ExportFailed(path, err)
	}
	return nil
}

