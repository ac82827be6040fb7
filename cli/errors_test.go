package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"golox/scanner"
)

func TestErrorRendererWithoutSource(t *testing.T) {
	r := NewErrorRenderer(nil)
	got := r.Render(&scanner.Error{Line: 2, Message: "Unexpected character."})

	assert.Contains(t, got, "line 2: Unexpected character.")
	assert.False(t, strings.Contains(got, "\n"), "no context block without source")
}

func TestErrorRendererWithSource(t *testing.T) {
	source := []byte("var a = 1;\nvar b = @;\nvar c = 3;")
	r := NewErrorRenderer(source)

	got := r.Render(&scanner.Error{Line: 2, Message: "Unexpected character."})

	assert.Contains(t, got, "line 2: Unexpected character.")
	assert.Contains(t, got, "var a = 1;")
	assert.Contains(t, got, "var b = @;")
	assert.Contains(t, got, "var c = 3;")
}

func TestErrorRendererFirstLine(t *testing.T) {
	source := []byte("@\nok")
	r := NewErrorRenderer(source)

	// Context window clamps at the start of the file.
	got := r.Render(&scanner.Error{Line: 1, Message: "Unexpected character."})
	assert.Contains(t, got, "@")
}

func TestErrorRendererRenderAll(t *testing.T) {
	source := []byte("line one\nline two\nline three")
	r := NewErrorRenderer(source)

	errs := []*scanner.Error{
		{Line: 3, Message: "Unterminated string."},
		{Line: 1, Message: "Unexpected character."},
	}

	got := r.RenderAll(errs)

	// Ordered by line, blank line between blocks.
	first := strings.Index(got, "Unexpected character.")
	second := strings.Index(got, "Unterminated string.")
	assert.True(t, first >= 0 && second > first)
	assert.Contains(t, got, "\n\n")

	assert.Equal(t, "", r.RenderAll(nil))
}
