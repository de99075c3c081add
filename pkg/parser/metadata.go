package parser

import (
	"strings"

	"github.com/yaklabco/aglint/pkg/ast"
)

// metadataHeaders is the closed allow-list of recognized metadata header
// names (spec §4.3 "Metadata"), matched case-insensitively.
var metadataHeaders = map[string]bool{
	"title":          true,
	"homepage":       true,
	"expires":        true,
	"version":        true,
	"last modified":  true,
	"timeupdated":    true,
	"checksum":       true,
	"license":        true,
	"description":    true,
	"redirect":       true,
	"diff-path":      true,
	"diff-name":      true,
	"diff-url":       true,
}

func isKnownMetadataHeader(header string) bool {
	return metadataHeaders[strings.ToLower(header)]
}

// TryParseMetadata attempts to parse a line as a `! Header: Value`
// metadata comment (spec §4.3).
func TryParseMetadata(raw string, lineNo int) (*ast.Metadata, bool, error) {
	start, end := trimBounds(raw)
	trimmed := raw[start:end]

	if trimmed == "" {
		return nil, false, nil
	}

	marker := trimmed[0]
	if marker != '!' && marker != '#' {
		return nil, false, nil
	}

	rest := trimmed[1:]
	colonIdx := strings.IndexByte(rest, ':')
	if colonIdx == -1 {
		return nil, false, nil
	}

	header := strings.TrimSpace(rest[:colonIdx])
	if !isKnownMetadataHeader(header) {
		return nil, false, nil
	}

	value := strings.TrimSpace(rest[colonIdx+1:])

	base := baseAt(lineNo, start, end)
	return &ast.Metadata{Base: base, Marker: marker, Header: header, Value: value}, true, nil
}

// GenerateMetadata renders a Metadata comment back to text, normalizing
// to exactly one space after the marker and after the colon (spec §6).
func GenerateMetadata(m *ast.Metadata) string {
	return string(m.Marker) + " " + m.Header + ": " + m.Value
}
