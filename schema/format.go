package schema

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported schema file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// YAML indicates a YAML schema file.
	YAML
	// JSON indicates a JSON schema file.
	JSON
	// TOML indicates a TOML schema file.
	TOML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case JSON:
		return "JSON"
	case TOML:
		return "TOML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case YAML:
		return ".yaml"
	case JSON:
		return ".json"
	case TOML:
		return ".toml"
	default:
		return ""
	}
}

// ParseFormat parses a format name such as "yaml" or "json".
func ParseFormat(name string) Format {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "yaml", "yml":
		return YAML
	case "json":
		return JSON
	case "toml":
		return TOML
	default:
		return Unknown
	}
}

// DetectFormat determines the format from the filename extension.
func DetectFormat(filename string) Format {
	return ParseFormat(filepath.Ext(filename))
}

// DetectFromContent guesses the format from the document itself. It is used
// when the extension is missing or unrecognized.
func DetectFromContent(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Unknown
	}
	if trimmed[0] == '{' {
		return JSON
	}

	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// TOML tables and key = value pairs
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") && !strings.Contains(line, ",") {
			return TOML
		}
		if key, _, ok := strings.Cut(line, "="); ok && !strings.Contains(key, ":") {
			return TOML
		}
		if strings.Contains(line, ":") {
			return YAML
		}
	}
	return Unknown
}
