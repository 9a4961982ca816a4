package output

import (
	"fmt"
	"strings"
)

// Format selects how command results are printed.
type Format string

const (
	// FormatText prints styled, human-readable lines.
	FormatText Format = "text"

	// FormatYAML prints a YAML document.
	FormatYAML Format = "yaml"

	// FormatJSON prints a JSON document.
	FormatJSON Format = "json"
)

// ParseFormat parses a format name. The empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns the valid format names.
func ValidFormats() []string {
	return []string{"text", "yaml", "json"}
}
