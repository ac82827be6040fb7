// Package golox implements the lexical front end for the Lox scripting
// language. The heavy lifting lives in the scanner package; this package
// is the one-call facade over it.
package golox

import (
	"golox/scanner"
)

// Scan tokenizes the given source in a single pass. It returns the complete
// token sequence, always terminated by an EOF token, together with every
// lexical diagnostic encountered along the way. Invalid input never aborts
// the scan, so one call can surface multiple independent errors.
func Scan(source []byte) ([]scanner.Token, []*scanner.Error) {
	s := scanner.New(source)
	tokens := s.ScanTokens()
	return tokens, s.Errors()
}

// ScanString tokenizes a source string. See Scan.
func ScanString(source string) ([]scanner.Token, []*scanner.Error) {
	return Scan([]byte(source))
}
