package scanner

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenLexeme(t *testing.T) {
	source := []byte(`var answer = 42;`)

	tok := Token{Type: IDENT, Start: 4, End: 10, Line: 1}
	assert.Equal(t, "answer", tok.Lexeme(source))
	assert.Equal(t, "answer", string(tok.Bytes(source)))
	assert.Equal(t, 6, tok.Len())
}

func TestTokenLexemeOutOfRange(t *testing.T) {
	source := []byte("ab")

	tests := []struct {
		name string
		tok  Token
	}{
		{"StartPastEnd", Token{Start: 2, End: 1}},
		{"EndPastSource", Token{Start: 0, End: 5}},
		{"StartPastSource", Token{Start: 9, End: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", tt.tok.Lexeme(source))
			assert.Zero(t, tt.tok.Bytes(source))
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "(", LPAREN.String())
	assert.Equal(t, "!=", BANG_EQUAL.String())
	assert.Equal(t, "STRING", STRING.String())
	assert.Equal(t, "while", WHILE.String())
	assert.Equal(t, "UNKNOWN", Type(255).String())
}

func TestKeywordTableCoversAllKeywordTypes(t *testing.T) {
	seen := map[Type]string{}
	for word, typ := range keywords {
		prev, dup := seen[typ]
		assert.False(t, dup, "%q and %q map to the same type", prev, word)
		seen[typ] = word

		// Keyword types render as their reserved word.
		assert.Equal(t, word, typ.String())
	}
	assert.Equal(t, 16, len(keywords))
}
