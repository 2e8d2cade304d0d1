package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// OutputFormat selects a writer.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
	OutputHTML   OutputFormat = "html"
)

// ErrUnsupportedFormat is returned for unknown output format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// SupportedFormats returns the format names accepted by ParseFormat.
func SupportedFormats() []string {
	return []string{string(OutputTable), string(OutputJSON), string(OutputNDJSON), string(OutputHTML)}
}

// ParseFormat parses a case-insensitive format name. An empty name selects table.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return OutputTable, nil
	case OutputTable, OutputJSON, OutputNDJSON, OutputHTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnsupportedFormat, s, strings.Join(SupportedFormats(), ", "))
	}
}

// Render writes page to w in the given format.
func Render(w io.Writer, format OutputFormat, page Page) error {
	switch format {
	case OutputTable:
		return RenderTable(w, page)
	case OutputJSON:
		return RenderJSON(w, page)
	case OutputNDJSON:
		return RenderNDJSON(w, page)
	case OutputHTML:
		return RenderHTML(w, page)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
