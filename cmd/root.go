package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/songbook/internal/app"
	"github.com/zhubert/songbook/internal/config"
	"github.com/zhubert/songbook/internal/logger"
	"github.com/zhubert/songbook/internal/song"
)

var (
	debugMode             bool
	quietMode             bool
	catalogPath           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "songbook",
	Short: "Terminal songbook for carol singing",
	Long: `Songbook is a terminal reader for a catalog of Christmas carols.
Pick a song from the list to read its lyrics, switch to the transliterated
version where one exists, and print the whole catalog as a booklet.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (.yaml, .toml or .json); defaults to the built-in carols")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("songbook %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("songbook %s\n", version)
}

// loadBook resolves the catalog from --catalog, then the config, then the
// embedded default.
func loadBook(cfg *config.Config) (*song.Book, error) {
	if catalogPath != "" {
		cfg.SetCatalogPath(catalogPath)
	}
	book, err := song.Load(cfg.GetCatalogPath())
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	logger.WithComponent("cmd").Debug("catalog loaded", "source", book.Source, "songs", book.Catalog.Len())
	return book, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	book, err := loadBook(cfg)
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	// Create and run the app
	m := app.New(cfg, book, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w (log: %s)", err, logger.Path())
	}
	return nil
}
