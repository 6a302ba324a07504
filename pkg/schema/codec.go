package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a schema document from JSON.
func DecodeJSON(data []byte) (Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("schema: decode json: %w", err)
	}
	return s, nil
}

// EncodeJSON serializes the schema as indented JSON. Custom rule predicates
// are not serialized; only the declarative rule data survives the round trip.
func EncodeJSON(s Schema) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode json: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a schema document from YAML.
func DecodeYAML(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("schema: decode yaml: %w", err)
	}
	return s, nil
}

// EncodeYAML serializes the schema as YAML.
func EncodeYAML(s Schema) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("schema: encode yaml: %w", err)
	}
	return data, nil
}

// Decode sniffs the format from the file name extension and parses
// accordingly. Unknown extensions fall back to JSON.
func Decode(name string, data []byte) (Schema, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}
