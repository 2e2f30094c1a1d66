// Package manifest describes versioned prompt compositions.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest describes how a full prompt is assembled from stored templates.
// CompositionOrder lists template names in assembly order; entries may
// themselves contain {{var}} markers resolved against the merged variables
// before lookup ("modes/{{mode}}" picks the fragment for the active mode).
type Manifest struct {
	Version          string         `yaml:"version"`
	Description      string         `yaml:"description"`
	Models           []string       `yaml:"models"`
	CompositionOrder []string       `yaml:"composition_order"`
	Variables        map[string]any `yaml:"variables"`
}

// Sentinel errors for manifest validation.
var (
	// ErrNoVersion indicates a manifest without a version.
	ErrNoVersion = errors.New("manifest version is required")

	// ErrNoCompositionOrder indicates a manifest with nothing to compose.
	ErrNoCompositionOrder = errors.New("manifest composition order is empty")
)

// FromYAML parses a manifest from YAML bytes.
// The result is not validated; call Validate before composing.
func FromYAML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// FromFile reads a manifest from a YAML file.
func FromFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return FromYAML(data)
}

// Validate checks that the manifest can be composed.
func (m *Manifest) Validate() error {
	if m.Version == "" {
		return ErrNoVersion
	}
	if len(m.CompositionOrder) == 0 {
		return ErrNoCompositionOrder
	}
	return nil
}

// Compatible reports whether a model ID matches any entry in Models.
// Entries use a simple suffix wildcard: "claude-*" matches any ID starting
// with "claude-". An empty model ID never matches.
func (m *Manifest) Compatible(modelID string) bool {
	if modelID == "" {
		return false
	}
	for _, pattern := range m.Models {
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(modelID, prefix) {
				return true
			}
		} else if pattern == modelID {
			return true
		}
	}
	return false
}
