// Package schedfile reads schedule manifests: line-based text files naming
// one natural-language schedule per line ("backup: every day at 2am").
package schedfile

import (
	"strings"

	"github.com/cronverse/cronverse/pkg/parser"
)

// ParseLine parses a single manifest line
func ParseLine(raw string, lineNumber int) *Line {
	line := &Line{
		LineNumber: lineNumber,
		Raw:        raw,
	}

	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		line.Type = LineTypeEmpty
		return line
	}

	if strings.HasPrefix(trimmed, "#") {
		line.Type = LineTypeComment
		return line
	}

	name, text, found := strings.Cut(trimmed, ":")
	if !found || strings.TrimSpace(name) == "" || strings.TrimSpace(text) == "" {
		line.Type = LineTypeInvalid
		return line
	}

	entry := &Entry{
		LineNumber: lineNumber,
		Name:       strings.TrimSpace(name),
		Text:       strings.TrimSpace(text),
		Valid:      true,
	}

	// Validate the schedule text with the codec's parser
	if _, err := parser.Parse(entry.Text); err != nil {
		entry.Valid = false
		entry.Error = err.Error()
	}

	line.Type = LineTypeEntry
	line.Entry = entry
	return line
}
