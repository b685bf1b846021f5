package itembuilder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Section is a structured key/value config section, such as one item entry
// of a YAML or TOML document.
type Section map[string]any

// Has returns true if the key is present.
func (s Section) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the keys of the section, sorted.
func (s Section) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Sub returns the nested section at a dotted path, e.g. "items.sword".
func (s Section) Sub(path string) (Section, bool) {
	cur := s
	for key := range strings.SplitSeq(path, ".") {
		next, ok := asSection(cur[key])
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// asSection converts the map types produced by the YAML and TOML decoders.
func asSection(v any) (Section, bool) {
	switch m := v.(type) {
	case Section:
		return m, true
	case map[string]any:
		return Section(m), true
	case map[any]any:
		sec := make(Section, len(m))
		for k, val := range m {
			sec[fmt.Sprint(k)] = val
		}
		return sec, true
	default:
		return nil, false
	}
}

// Format is a config document format.
type Format string

const (
	// YAML documents, .yml or .yaml.
	YAML Format = "yaml"
	// TOML documents, .toml.
	TOML Format = "toml"
)

// FormatOf returns the format matching a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadFile reads a YAML or TOML document, picked by extension, into a
// section.
func LoadFile(path string) (Section, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	sec, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return sec, nil
}

// Decode reads a document of the format passed into a section. An empty
// document produces an empty section.
func Decode(r io.Reader, format Format) (Section, error) {
	m := make(map[string]any)
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return Section(m), nil
}
