package song

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zhubert/songbook/internal/errors"
)

//go:embed data/carols.yaml
var defaultData embed.FS

const defaultCatalogFile = "data/carols.yaml"

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.E(errors.Op("song.Load"), errors.KindInvalid, fmt.Sprintf("unsupported catalog format %q", filepath.Ext(path)))
	}
}

// file is the on-disk shape of a catalog.
type file struct {
	BookletMetadata `yaml:",inline"`
	Songs           []Song `yaml:"songs" toml:"songs" json:"songs"`
}

// Book is a loaded catalog plus its cover metadata.
type Book struct {
	Metadata BookletMetadata
	Catalog  *Catalog
	Source   string
}

// LoadDefault loads the catalog compiled into the binary.
func LoadDefault() (*Book, error) {
	data, err := defaultData.ReadFile(defaultCatalogFile)
	if err != nil {
		return nil, errors.CatalogLoadFailed("embedded catalog", err)
	}
	book, err := Parse(data, FormatYAML)
	if err != nil {
		return nil, err
	}
	book.Source = "embedded"
	return book, nil
}

// Load reads a catalog file. An empty path loads the embedded catalog.
func Load(path string) (*Book, error) {
	if path == "" {
		return LoadDefault()
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.CatalogLoadFailed(path, err)
	}
	book, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	book.Source = path
	return book, nil
}

// Parse decodes and validates catalog data.
func Parse(data []byte, format Format) (*Book, error) {
	var f file
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		_, err = toml.Decode(string(data), &f)
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		return nil, errors.E(errors.Op("song.Parse"), errors.KindInvalid, fmt.Sprintf("unsupported catalog format %q", format))
	}
	if err != nil {
		return nil, errors.E(errors.Op("song.Parse"), errors.KindInvalid, fmt.Sprintf("failed to parse %s catalog", format), err)
	}

	catalog, err := NewCatalog(f.Songs)
	if err != nil {
		return nil, err
	}
	meta := f.BookletMetadata
	if meta.Subtitle == "" {
		meta.Subtitle = DefaultSubtitle
	}
	return &Book{Metadata: meta, Catalog: catalog}, nil
}

// Encode serializes a book in the given format.
func Encode(b *Book, format Format) ([]byte, error) {
	f := file{BookletMetadata: b.Metadata, Songs: b.Catalog.Songs()}
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(f, "", "  ")
	default:
		return nil, errors.E(errors.Op("song.Encode"), errors.KindInvalid, fmt.Sprintf("unsupported catalog format %q", format))
	}
}

// Save writes a book to path, choosing the format from the extension.
func Save(b *Book, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(b, format)
	if err != nil {
		return errors.E(errors.Op("song.Save"), errors.KindIO, "failed to encode catalog", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.E(errors.Op("song.Save"), errors.KindIO, fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
