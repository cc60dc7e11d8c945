package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported catalog format %q (want yaml, json or toml)", name)
	}
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("catalog file %s has no extension", path)
	}
	return ParseFormat(ext)
}

// Load reads, decodes and validates a catalog file.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, format Format) (*Catalog, error) {
	var c Catalog
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &c)
	case FormatJSON:
		err = json.Unmarshal(data, &c)
	case FormatTOML:
		err = toml.Unmarshal(data, &c)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s catalog: %w", format, err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Encode serialises the catalog in the given format.
func Encode(c *Catalog, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return buf.Bytes(), nil
}
