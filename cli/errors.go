package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"golang.org/x/exp/slices"

	"golox/scanner"
)

var errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})

// ErrorRenderer renders lexical diagnostics with terminal styling and
// surrounding source context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single diagnostic with styling and context.
func (r *ErrorRenderer) Render(e *scanner.Error) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(e.Error()))

	if r.source == nil {
		return buf.String()
	}

	sourceLines := strings.Split(string(r.source), "\n")

	startLine := e.Line - 3
	endLine := e.Line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(sourceLines) {
		endLine = len(sourceLines) - 1
	}

	if startLine <= endLine {
		buf.WriteString("\n")
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(sourceLines) {
			break
		}
		buf.WriteString("\n   ")
		if i == e.Line-1 {
			buf.WriteString(sourceLines[i])
		} else {
			buf.WriteString(errContextStyle.Render(sourceLines[i]))
		}
	}

	return buf.String()
}

// RenderAll formats multiple diagnostics in line order, separating them
// with blank lines.
func (r *ErrorRenderer) RenderAll(errs []*scanner.Error) string {
	if len(errs) == 0 {
		return ""
	}

	sorted := slices.Clone(errs)
	slices.SortStableFunc(sorted, func(a, b *scanner.Error) int {
		return a.Line - b.Line
	})

	var buf strings.Builder
	for i, e := range sorted {
		buf.WriteString(r.Render(e))

		if i < len(sorted)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}
