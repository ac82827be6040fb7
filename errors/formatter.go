// Package errors provides formatting infrastructure for lexical diagnostics.
// It separates presentation from the scanner itself, so the same collected
// errors render as plain text for the CLI or as structured JSON for the web
// playground.
package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"golox/scanner"
)

// Formatter renders lexical diagnostics for output.
type Formatter interface {
	// Format formats a single diagnostic.
	Format(e *scanner.Error) string

	// FormatAll formats multiple diagnostics, ordered by line.
	FormatAll(errs []*scanner.Error) string
}

// TextFormatter renders diagnostics for command-line output in the classic
// "[line N] Error: message" shape, optionally followed by the source line.
type TextFormatter struct {
	filename string
	source   []byte
}

// TextFormatterOption configures a TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithFilename prefixes each diagnostic with the file it came from.
func WithFilename(name string) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.filename = name
	}
}

// WithSource enables source-line context under each diagnostic.
func WithSource(source []byte) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.source = source
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single diagnostic.
func (tf *TextFormatter) Format(e *scanner.Error) string {
	var buf bytes.Buffer

	if tf.filename != "" {
		fmt.Fprintf(&buf, "%s:%d: %s", tf.filename, e.Line, e.Message)
	} else {
		fmt.Fprintf(&buf, "[line %d] Error: %s", e.Line, e.Message)
	}

	if line, ok := tf.sourceLine(e.Line); ok {
		buf.WriteByte('\n')
		buf.WriteString("   ")
		buf.WriteString(line)
	}

	return buf.String()
}

// FormatAll formats multiple diagnostics in line order, one per block.
func (tf *TextFormatter) FormatAll(errs []*scanner.Error) string {
	if len(errs) == 0 {
		return ""
	}

	sorted := slices.Clone(errs)
	slices.SortStableFunc(sorted, func(a, b *scanner.Error) int {
		return a.Line - b.Line
	})

	var buf strings.Builder
	for i, e := range sorted {
		buf.WriteString(tf.Format(e))
		if i < len(sorted)-1 {
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

// sourceLine returns the 1-based line from the configured source.
func (tf *TextFormatter) sourceLine(n int) (string, bool) {
	if tf.source == nil || n < 1 {
		return "", false
	}
	lines := strings.Split(string(tf.source), "\n")
	if n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}

// Diagnostic is the wire representation of a lexical error.
type Diagnostic struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// JSONFormatter renders diagnostics as structured JSON for APIs.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats a single diagnostic as a JSON object.
func (jf *JSONFormatter) Format(e *scanner.Error) string {
	data, _ := json.Marshal(Diagnostic{Line: e.Line, Message: e.Message})
	return string(data)
}

// FormatAll formats diagnostics as a JSON array, ordered by line.
func (jf *JSONFormatter) FormatAll(errs []*scanner.Error) string {
	data, _ := json.Marshal(Diagnostics(errs))
	return string(data)
}

// Diagnostics converts scanner errors to their wire representation,
// sorted by line. It never returns nil, so JSON callers get [] not null.
func Diagnostics(errs []*scanner.Error) []Diagnostic {
	sorted := slices.Clone(errs)
	slices.SortStableFunc(sorted, func(a, b *scanner.Error) int {
		return a.Line - b.Line
	})

	out := make([]Diagnostic, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, Diagnostic{Line: e.Line, Message: e.Message})
	}
	return out
}
