package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/songbook/internal/config"
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

const testCatalogYAML = `title: Carols 2026
songs:
  - id: 1
    title: Silent Night
    lyrics: |-
      Line A
      Line B
  - id: 2
    title: Jingle Bells
    lyrics: Line C
    lyrics_manglish: Line D
  - id: 3
    title: Gloria
`

// writeCatalog writes the three-song test catalog and returns its path.
func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carols.yaml")
	if err := os.WriteFile(path, []byte(testCatalogYAML), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func testBook(t *testing.T) *song.Book {
	t.Helper()
	book, err := song.Load(writeCatalog(t))
	if err != nil {
		t.Fatalf("song.Load: %v", err)
	}
	return book
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	return cfg
}

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestCatalogFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("catalog")
	if flag == nil {
		t.Fatal("--catalog flag not found")
	}
	if flag.DefValue != "" {
		t.Errorf("--catalog default = %q, want empty", flag.DefValue)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"booklet", "serve", "generate", "catalog", "clean"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			if err != nil || cmd == rootCmd {
				t.Errorf("subcommand %q not registered", name)
			}
		})
	}
}

func TestInitConfig_DefaultDebugEnabled(t *testing.T) {
	// Save and restore package state
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = false

	// Should not panic
	initConfig()
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer SetVersionInfo(origVersion, origCommit, origDate)

	tests := []struct {
		name   string
		commit string
		want   []string
	}{
		{"release build", "abc123", []string{"songbook 1.2.3", "commit: abc123", "built:  2026-12-01"}},
		{"no commit", "none", []string{"songbook 1.2.3\n"}},
		{"empty commit", "", []string{"songbook 1.2.3\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersionInfo("1.2.3", tt.commit, "2026-12-01")
			got := versionTemplate()
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("versionTemplate() = %q, missing %q", got, want)
				}
			}
			if tt.commit == "none" && strings.Contains(got, "commit") {
				t.Errorf("versionTemplate() = %q, should omit commit", got)
			}
		})
	}
}

func TestLoadBook(t *testing.T) {
	origCatalog := catalogPath
	defer func() { catalogPath = origCatalog }()

	t.Run("flag overrides config", func(t *testing.T) {
		cfg := testConfig(t)
		catalogPath = writeCatalog(t)
		book, err := loadBook(cfg)
		if err != nil {
			t.Fatalf("loadBook: %v", err)
		}
		if book.Catalog.Len() != 3 {
			t.Errorf("songs = %d, want 3", book.Catalog.Len())
		}
		if cfg.GetCatalogPath() != catalogPath {
			t.Errorf("config catalog path = %q, want %q", cfg.GetCatalogPath(), catalogPath)
		}
	})

	t.Run("embedded default", func(t *testing.T) {
		catalogPath = ""
		book, err := loadBook(testConfig(t))
		if err != nil {
			t.Fatalf("loadBook: %v", err)
		}
		if book.Source != "embedded" {
			t.Errorf("source = %q, want embedded", book.Source)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		catalogPath = filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := loadBook(testConfig(t)); err == nil {
			t.Error("expected an error for a missing catalog")
		}
	})
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		cmd   string
		flag  string
		value string
	}{
		{"serve", "addr", ""},
		{"booklet", "format", ""},
		{"booklet", "output", ""},
		{"booklet", "width", "64"},
		{"generate", "missing", "false"},
		{"generate", "timeout", "30s"},
		{"clean", "yes", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd+" --"+tt.flag, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.cmd})
			if err != nil {
				t.Fatalf("Find(%q): %v", tt.cmd, err)
			}
			flag := cmd.Flags().Lookup(tt.flag)
			if flag == nil {
				t.Fatalf("--%s not found on %s", tt.flag, tt.cmd)
			}
			if flag.DefValue != tt.value {
				t.Errorf("--%s default = %q, want %q", tt.flag, flag.DefValue, tt.value)
			}
		})
	}
}
