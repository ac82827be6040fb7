package scanner

// Scanner implements a single-pass lexer for Lox source code.
//
// The zero-copy approach:
// - Tokens store byte offsets, not string values
// - Literal values are decoded once, during scanning
// - String interning for repeated literal values
// - Pre-allocated token buffer
//
// Lexical errors never abort the scan. Each one is handed to the injected
// ErrorReporter and scanning resumes past the offending input, so a single
// pass can surface every independent problem in the file.

import (
	"strconv"
)

// Scanner tokenizes Lox source code.
type Scanner struct {
	source   []byte    // Source buffer, never mutated
	start    int       // Offset of the lexeme currently being scanned
	pos      int       // Offset of the next unread byte
	line     int       // Current line (1-indexed)
	tokens   []Token   // Token buffer (pre-allocated)
	reporter ErrorReporter
	interner *Interner // String interning pool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithReporter sets the diagnostic sink for lexical errors.
// Without it, errors are accumulated in an internal Collector
// reachable through Errors.
func WithReporter(r ErrorReporter) Option {
	return func(s *Scanner) {
		s.reporter = r
	}
}

// WithInterner shares a string interning pool between scanners.
func WithInterner(i *Interner) Option {
	return func(s *Scanner) {
		s.interner = i
	}
}

// New creates a scanner for the given source.
func New(source []byte, opts ...Option) *Scanner {
	// Estimate token count: empirically ~1 token per 6 bytes of Lox
	estimatedTokens := len(source)/6 + 16

	s := &Scanner{
		source: source,
		line:   1,
		tokens: make([]Token, 0, estimatedTokens),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.reporter == nil {
		s.reporter = &Collector{}
	}
	if s.interner == nil {
		s.interner = NewInterner(64)
	}

	return s
}

// Errors returns the diagnostics accumulated by the default Collector.
// It returns nil when a custom reporter was injected.
func (s *Scanner) Errors() []*Error {
	if c, ok := s.reporter.(*Collector); ok {
		return c.Errors
	}
	return nil
}

// Interner returns the string interner, useful for downstream consumers.
func (s *Scanner) Interner() *Interner {
	return s.interner
}

// ScanTokens lexes the entire source and returns all tokens.
// This is a single forward pass with one byte of lookahead; the returned
// sequence always ends with exactly one EOF token whose line is the final
// line count. A Scanner is good for one pass only.
func (s *Scanner) ScanTokens() []Token {
	for s.pos < len(s.source) {
		s.start = s.pos
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{
		Type:  EOF,
		Start: s.pos,
		End:   s.pos,
		Line:  s.line,
	})

	return s.tokens
}

// scanToken recognizes a single lexeme starting at s.start. It appends at
// most one token; whitespace, comments and invalid input produce none.
func (s *Scanner) scanToken() {
	ch := s.advance()

	switch ch {
	case '(':
		s.addToken(LPAREN)
	case ')':
		s.addToken(RPAREN)
	case '{':
		s.addToken(LBRACE)
	case '}':
		s.addToken(RBRACE)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case '-':
		s.addToken(MINUS)
	case '+':
		s.addToken(PLUS)
	case ';':
		s.addToken(SEMICOLON)
	case '*':
		s.addToken(ASTERISK)

	// Maximal munch: prefer the two-character operator whenever the
	// next byte is '='.
	case '!':
		if s.match('=') {
			s.addToken(BANG_EQUAL)
		} else {
			s.addToken(BANG)
		}
	case '=':
		if s.match('=') {
			s.addToken(EQUAL_EQUAL)
		} else {
			s.addToken(EQUAL)
		}
	case '<':
		if s.match('=') {
			s.addToken(LESS_EQUAL)
		} else {
			s.addToken(LESS)
		}
	case '>':
		if s.match('=') {
			s.addToken(GREATER_EQUAL)
		} else {
			s.addToken(GREATER)
		}

	case '/':
		if s.match('/') {
			// A line comment runs to the end of the line.
			for s.pos < len(s.source) && s.source[s.pos] != '\n' {
				s.pos++
			}
		} else {
			s.addToken(SLASH)
		}

	case ' ', '\r', '\t':
		// Ignore whitespace.
	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(ch):
			s.scanNumber()
		case isAlpha(ch):
			s.scanIdent()
		default:
			s.reporter.Report(s.line, "Unexpected character.")
		}
	}
}

// scanString consumes a string literal. The opening quote has already been
// consumed. Strings may span lines; no escape sequences are recognized, the
// literal value is the exact text between the quotes.
func (s *Scanner) scanString() {
	startLine := s.line

	for s.pos < len(s.source) && s.source[s.pos] != '"' {
		if s.source[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}

	if s.pos >= len(s.source) {
		// Reported at the line where scanning ran out of input, not the
		// opening line. The partial literal produces no token.
		s.reporter.Report(s.line, "Unterminated string.")
		return
	}

	// The closing quote.
	s.pos++

	value := s.interner.InternBytes(s.source[s.start+1 : s.pos-1])
	s.tokens = append(s.tokens, Token{
		Type:    STRING,
		Start:   s.start,
		End:     s.pos,
		Line:    startLine,
		Literal: value,
	})
}

// scanNumber consumes a number literal: [0-9]+(\.[0-9]+)?
// A trailing dot not followed by a digit belongs to the next lexeme.
func (s *Scanner) scanNumber() {
	for s.pos < len(s.source) && isDigit(s.source[s.pos]) {
		s.pos++
	}

	if s.pos < len(s.source) && s.source[s.pos] == '.' {
		if s.pos+1 < len(s.source) && isDigit(s.source[s.pos+1]) {
			s.pos++ // consume '.'
			for s.pos < len(s.source) && isDigit(s.source[s.pos]) {
				s.pos++
			}
		}
	}

	// The grammar admits no malformed numbers, so this cannot fail.
	value, _ := strconv.ParseFloat(string(s.source[s.start:s.pos]), 64)
	s.tokens = append(s.tokens, Token{
		Type:    NUMBER,
		Start:   s.start,
		End:     s.pos,
		Line:    s.line,
		Literal: value,
	})
}

// scanIdent consumes the maximal run of alphanumeric-or-underscore bytes
// and classifies it against the keyword table.
func (s *Scanner) scanIdent() {
	for s.pos < len(s.source) && isAlphaNumeric(s.source[s.pos]) {
		s.pos++
	}

	typ, ok := keywords[string(s.source[s.start:s.pos])]
	if !ok {
		typ = IDENT
	}

	s.addToken(typ)
}

// addToken appends a token for the current lexeme with no literal value.
func (s *Scanner) addToken(typ Type) {
	s.tokens = append(s.tokens, Token{
		Type:  typ,
		Start: s.start,
		End:   s.pos,
		Line:  s.line,
	})
}

// advance consumes and returns the next byte.
func (s *Scanner) advance() byte {
	ch := s.source[s.pos]
	s.pos++
	return ch
}

// match conditionally consumes the next byte when it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.pos >= len(s.source) {
		return false
	}
	if s.source[s.pos] != expected {
		return false
	}
	s.pos++
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
