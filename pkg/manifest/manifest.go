// Package manifest loads declarative lists of idempotent filesystem steps.
//
// A manifest names a root directory and an ordered list of steps, each an
// operation name and a path:
//
//	root: build
//	steps:
//	  - op: create-directory-with-parents
//	    path: out/logs
//	  - op: remove-path
//	    path: out/stale
//
// The same structure can be written in TOML with [[steps]] tables.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/user/idemfs/pkg/idemfs"
)

var (
	// ErrUnknownOp is returned for a step whose op is not an idemfs operation.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrEmptyPath is returned for a step without a path.
	ErrEmptyPath = errors.New("empty path")
)

// Format identifies a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported manifest extension %q", filepath.Ext(path))
	}
}

// Step is a single operation applied to a path.
type Step struct {
	Op   string `yaml:"op" toml:"op"`
	Path string `yaml:"path" toml:"path"`
}

// Manifest is an ordered list of steps.
type Manifest struct {
	// Root is joined in front of relative step paths. When the manifest is
	// loaded from a file, a relative Root is taken relative to that file.
	Root  string `yaml:"root" toml:"root"`
	Steps []Step `yaml:"steps" toml:"steps"`

	// Source is the file the manifest was loaded from, if any.
	Source string `yaml:"-" toml:"-"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Source = path
	if !filepath.IsAbs(m.Root) {
		m.Root = filepath.Join(filepath.Dir(path), m.Root)
	}
	return m, nil
}

// Parse decodes and validates a manifest.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every step.
func (m *Manifest) Validate() error {
	for i, s := range m.Steps {
		if _, err := idemfs.ParseOp(s.Op); err != nil {
			return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownOp, s.Op)
		}
		if s.Path == "" {
			return fmt.Errorf("step %d (%s): %w", i+1, s.Op, ErrEmptyPath)
		}
	}
	return nil
}

// Resolve returns the path a step acts on.
func (m *Manifest) Resolve(s Step) string {
	if filepath.IsAbs(s.Path) || m.Root == "" {
		return filepath.Clean(s.Path)
	}
	return filepath.Join(m.Root, s.Path)
}
