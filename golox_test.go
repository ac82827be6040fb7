package golox

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"golox/scanner"
)

func TestScan(t *testing.T) {
	tokens, errs := ScanString(`print "hello";`)

	assert.Equal(t, 0, len(errs))

	want := []scanner.Type{scanner.PRINT, scanner.STRING, scanner.SEMICOLON, scanner.EOF}
	assert.Equal(t, len(want), len(tokens))
	for i, tok := range tokens {
		assert.Equal(t, want[i], tok.Type)
	}
}

func TestScanReportsErrorsWithoutAborting(t *testing.T) {
	tokens, errs := ScanString("var @ = 1;")

	assert.Equal(t, 1, len(errs))
	assert.Equal(t, "Unexpected character.", errs[0].Message)

	// The valid tokens around the bad byte are still produced.
	want := []scanner.Type{scanner.VAR, scanner.EQUAL, scanner.NUMBER, scanner.SEMICOLON, scanner.EOF}
	assert.Equal(t, len(want), len(tokens))
}

func TestScanEmpty(t *testing.T) {
	tokens, errs := Scan(nil)

	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, scanner.EOF, tokens[0].Type)
	assert.Equal(t, 1, tokens[0].Line)
}
