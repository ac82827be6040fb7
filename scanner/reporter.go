package scanner

import "fmt"

// ErrorReporter is the diagnostic sink for lexical errors.
// The scanner expects nothing about how reports are displayed or stored;
// that policy belongs to the caller. Reports never affect control flow.
type ErrorReporter interface {
	Report(line int, message string)
}

// ReporterFunc adapts a plain function to an ErrorReporter.
type ReporterFunc func(line int, message string)

// Report implements ErrorReporter.
func (f ReporterFunc) Report(line int, message string) {
	f(line, message)
}

// Error is a single recoverable lexical error.
type Error struct {
	Line    int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// GetLine returns the 1-based line the error was reported on.
func (e *Error) GetLine() int {
	return e.Line
}

// Collector is an ErrorReporter that accumulates every report in order.
// It is the scanner's default sink and the one the CLI renders from.
type Collector struct {
	Errors []*Error
}

// Report implements ErrorReporter.
func (c *Collector) Report(line int, message string) {
	c.Errors = append(c.Errors, &Error{Line: line, Message: message})
}

// HasErrors reports whether any diagnostics were collected.
func (c *Collector) HasErrors() bool {
	return len(c.Errors) > 0
}
