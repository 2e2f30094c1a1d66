package vars

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads a variable context from a file, auto-detecting format by
// extension. Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Vars, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vars{}, fmt.Errorf("read vars file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Vars{}, fmt.Errorf("unsupported vars file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Vars.
func FromYAML(data []byte) (Vars, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Vars{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m), nil
}

// FromJSON parses JSON data into a Vars.
func FromJSON(data []byte) (Vars, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Vars{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}
