/*
Copyright © 2026 Provstack
SPDX-License-Identifier: Apache-2.0
*/

// Package content decodes structured file contents into generic values.
//
// Files are dispatched by an explicit content type tag, never by sniffing.
// Decoded values are generic mappings (map[string]any) or sequences ([]any)
// suitable for scheme validation.
package content

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Type identifies the structured-text encoding of a file's contents.
type Type string

// Supported content types.
const (
	TypeYAML Type = "yaml"
	TypeJSON Type = "json"

	// DefaultType is used when a manifest leaves content_type unset.
	DefaultType = TypeYAML
)

// IsValid reports whether t is a supported content type.
func (t Type) IsValid() bool {
	switch t {
	case TypeYAML, TypeJSON:
		return true
	}
	return false
}

// Decode parses raw bytes under the given content type into a generic value.
func Decode(data []byte, contentType Type) (any, error) {
	var value any
	switch contentType {
	case TypeYAML:
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case TypeJSON:
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported content type: %q", contentType)
	}
	return value, nil
}

// Load reads the file at path and decodes it under the given content type.
func Load(path string, contentType Type) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return Decode(data, contentType)
}
