package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/spf13/cobra"

	"github.com/zhubert/songbook/internal/config"
	"github.com/zhubert/songbook/internal/song"
)

var (
	catalogFormat  string
	catalogNoColor bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the song catalog",
	Long:  `Commands for printing, converting and validating catalog files.`,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the catalog",
	Long: `Prints the active catalog with syntax highlighting. Use --format to
convert it to another encoding.

Examples:
  songbook catalog show                   # YAML, highlighted
  songbook catalog show --format toml     # Convert to TOML
  songbook catalog show --format json --no-color > carols.json`,
	RunE: runCatalogShow,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file",
	Long:  `Loads a catalog file (or the active catalog) and reports whether it is valid.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogValidate,
}

func init() {
	catalogShowCmd.Flags().StringVar(&catalogFormat, "format", string(song.FormatYAML), "Output encoding: yaml, toml or json")
	catalogShowCmd.Flags().BoolVar(&catalogNoColor, "no-color", false, "Disable syntax highlighting")
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	book, err := loadBook(cfg)
	if err != nil {
		return err
	}
	return showCatalog(cmd.OutOrStdout(), book, song.Format(strings.ToLower(catalogFormat)), !catalogNoColor)
}

func showCatalog(w io.Writer, book *song.Book, format song.Format, color bool) error {
	data, err := song.Encode(book, format)
	if err != nil {
		return err
	}
	out := string(data)
	if color {
		out = highlight(out, string(format))
	}
	_, err = io.WriteString(w, out)
	return err
}

// highlight applies terminal syntax highlighting using chroma. On any
// failure the input is returned unchanged.
func highlight(source, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return buf.String()
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if catalogPath != "" {
			cfg.SetCatalogPath(catalogPath)
		}
		path = cfg.GetCatalogPath()
	}
	return validateCatalog(cmd.OutOrStdout(), path)
}

func validateCatalog(w io.Writer, path string) error {
	book, err := song.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "✓ %s is valid\n", book.Source)
	fmt.Fprintf(w, "  Title: %s\n", book.Metadata.Title)
	fmt.Fprintf(w, "  Songs: %d\n", book.Catalog.Len())

	alternates := 0
	for _, s := range book.Catalog.Songs() {
		if s.HasAlternate() {
			alternates++
		}
	}
	fmt.Fprintf(w, "  With Manglish version: %d\n", alternates)

	if missing := book.Catalog.MissingLyrics(); len(missing) > 0 {
		fmt.Fprintf(w, "  Missing lyrics: %d\n", len(missing))
		for _, s := range missing {
			fmt.Fprintf(w, "      %s\n", s.Label())
		}
	}
	return nil
}
