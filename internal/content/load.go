package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a content file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Parse decodes and validates a document.
func Parse(data []byte, format Format) (Document, error) {
	var doc Document
	switch format {
	case FormatYAML, FormatJSON:
		// JSON is a subset of YAML.
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decode %s content: %w", format, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decode toml content: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Load reads a content file from disk.
func Load(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read content: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

//go:embed sample.yaml
var sampleYAML []byte

var (
	sampleOnce sync.Once
	sampleDoc  Document
	sampleErr  error
)

// Sample returns the built-in page used when no content file is given.
func Sample() (Document, error) {
	sampleOnce.Do(func() {
		sampleDoc, sampleErr = Parse(sampleYAML, FormatYAML)
	})
	return sampleDoc, sampleErr
}

// LoadOrSample loads path, or the sample page when path is empty.
func LoadOrSample(path string) (Document, error) {
	if strings.TrimSpace(path) == "" {
		return Sample()
	}
	return Load(path)
}
