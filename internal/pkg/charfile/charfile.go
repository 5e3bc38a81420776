// Package charfile reads loose character records from JSON or YAML files
package charfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
)

// Read decodes the file at path by extension: .yaml and .yml as YAML,
// anything else as JSON
func Read(path string) (*dnd5e.PartialCharacter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// DecodeJSON decodes a JSON character record
func DecodeJSON(data []byte) (*dnd5e.PartialCharacter, error) {
	var record dnd5e.PartialCharacter
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse character: %w", err)
	}
	return &record, nil
}

// DecodeYAML decodes a YAML character record. It is routed through JSON so
// the record's json field names apply to both formats.
func DecodeYAML(data []byte) (*dnd5e.PartialCharacter, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse character: %w", err)
	}
	converted, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert character: %w", err)
	}
	return DecodeJSON(converted)
}
