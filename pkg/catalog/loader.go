package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a catalog document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FormatFromPath detects the document format from the file extension.
// Extensions are matched case-insensitively; .yml is treated as YAML.
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %w: %q", ErrParse, ErrUnsupportedFormat, name)
	}
}

// LoadFile reads and parses the catalog stored at filePath.
func LoadFile(filePath string) (*Catalog, error) {
	format, err := FormatFromPath(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, wrapReadError(filePath, err)
	}

	return Parse(data, format)
}

// LoadFS reads and parses the catalog stored at name inside fsys.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, wrapReadError(name, err)
	}

	return Parse(data, format)
}

// Decode reads the whole of r and parses it as the given format.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes data into a Catalog. The document must be valid UTF-8 and
// its root must be a mapping.
func Parse(data []byte, format Format) (*Catalog, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrInvalidEncoding)
	}

	var (
		root Value
		err  error
	)
	switch format {
	case FormatJSON:
		root, err = decodeJSON(data)
	case FormatYAML:
		root, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrParse, ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	node, ok := root.(Node)
	if !ok {
		return nil, fmt.Errorf("%w: document root must be a mapping", ErrParse)
	}

	return New(node), nil
}

func decodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	return FromYAML(&doc)
}

func decodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrParse)
	}

	return FromAny(raw), nil
}

func wrapReadError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return fmt.Errorf("reading %q: %w", name, err)
}
