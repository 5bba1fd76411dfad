package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/songbook/internal/config"
	"github.com/zhubert/songbook/internal/errors"
	"github.com/zhubert/songbook/internal/logger"
	"github.com/zhubert/songbook/internal/lyrics"
	"github.com/zhubert/songbook/internal/notification"
	"github.com/zhubert/songbook/internal/song"
)

var (
	generateMissing bool
	generateWrite   string
	generateTimeout time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate [song-id]",
	Short: "Fetch lyrics for catalog songs",
	Long: `Asks the lyrics providers (Gemini, then LRCLIB) for the text of one song,
or of every song without lyrics when --missing is given. Results are printed;
with --write the updated catalog is saved to the given file.

Gemini needs an API key, read from gemini_api_key in the config or from the
GEMINI_API_KEY environment variable. Without one only LRCLIB is asked.

Examples:
  songbook generate 4                         # Print lyrics for song 4
  songbook generate --missing                 # Try every song without lyrics
  songbook generate --missing --write out.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateMissing, "missing", false, "Generate for every song without lyrics")
	generateCmd.Flags().StringVar(&generateWrite, "write", "", "Save the updated catalog to this file (.yaml, .toml or .json)")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", lyrics.DefaultTimeout, "Time limit per song")
	rootCmd.AddCommand(generateCmd)
}

// lyricsSource is satisfied by *lyrics.Chain.
type lyricsSource interface {
	Generate(ctx context.Context, displayTitle, alternateTitle string) (lyrics.Result, error)
}

// generateReport summarizes one generation run.
type generateReport struct {
	Catalog   *song.Catalog
	Succeeded int
	Failed    int
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	book, err := loadBook(cfg)
	if err != nil {
		return err
	}

	targets, err := generateTargets(book.Catalog, args, generateMissing)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Every song already has lyrics.")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := generateLyrics(ctx, newLyricsChain(cfg, generateTimeout), book.Catalog, targets, generateTimeout, cmd.OutOrStdout())

	if generateWrite != "" && report.Succeeded > 0 {
		updated := *book
		updated.Catalog = report.Catalog
		if err := song.Save(&updated, generateWrite); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved catalog to %s\n", generateWrite)
	}
	if cfg.GetNotificationsEnabled() {
		_ = notification.LyricsGenerated(report.Succeeded, report.Failed)
	}

	if report.Succeeded == 0 {
		return errors.E(errors.Op("cmd.generate"), errors.KindGeneration, fmt.Sprintf("no lyrics generated (%d failed)", report.Failed))
	}
	return nil
}

// newLyricsChain orders the providers: Gemini when a key is available,
// then LRCLIB.
func newLyricsChain(cfg *config.Config, timeout time.Duration) *lyrics.Chain {
	var generators []lyrics.Generator
	if key := cfg.GeminiKey(); key != "" {
		generators = append(generators, lyrics.NewGeminiGenerator(key, cfg.GetGeminiModel(), timeout))
	}
	generators = append(generators, lyrics.NewLRCLIBProvider(timeout))
	return lyrics.NewChain(generators...)
}

// generateTargets resolves which songs to generate for. An explicit id
// wins over --missing.
func generateTargets(catalog *song.Catalog, args []string, missing bool) ([]song.Song, error) {
	op := errors.Op("cmd.generate")
	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, errors.E(op, errors.KindInvalid, fmt.Sprintf("song id %q is not a number", args[0]))
		}
		s, ok := catalog.Find(id)
		if !ok {
			return nil, errors.SongNotFound(id)
		}
		return []song.Song{s}, nil
	}
	if !missing {
		return nil, errors.E(op, errors.KindInvalid, "give a song id or --missing")
	}
	return catalog.MissingLyrics(), nil
}

// generateLyrics asks src for each target in turn. Failures are reported
// and skipped; only successful text reaches the returned catalog.
func generateLyrics(ctx context.Context, src lyricsSource, catalog *song.Catalog, targets []song.Song, timeout time.Duration, out io.Writer) generateReport {
	log := logger.WithComponent("generate")
	report := generateReport{Catalog: catalog}

	for _, s := range targets {
		songCtx, cancel := context.WithTimeout(ctx, timeout)
		result, err := src.Generate(songCtx, s.Title, s.OriginalTitle)
		cancel()
		if err != nil {
			log.Warn("generation failed", "songID", s.ID, "title", s.Title, "error", err)
			fmt.Fprintf(out, "✗ %s: %v\n", s.Label(), err)
			report.Failed++
			continue
		}

		updated, err := report.Catalog.WithLyrics(s.ID, result.Text)
		if err != nil {
			fmt.Fprintf(out, "✗ %s: %v\n", s.Label(), err)
			report.Failed++
			continue
		}
		report.Catalog = updated
		report.Succeeded++
		fmt.Fprintf(out, "✓ %s (via %s)\n\n%s\n\n", s.Label(), result.Provider, result.Text)
	}
	return report
}
