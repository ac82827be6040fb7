// Package loader reads Lox source files and runs them through the scanner.
// It wraps the file I/O and scanning into a single context-aware call and
// carries telemetry timers for both stages.
//
// Example usage:
//
//	ldr := loader.New()
//	result, err := ldr.Load(ctx, "program.lox")
//	if err != nil { ... }                   // I/O failure
//	for _, e := range result.Errors { ... } // lexical diagnostics
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golox/scanner"
	"golox/telemetry"
)

// Result is the outcome of loading one source file. The token sequence is
// always present and EOF-terminated, even when Errors is non-empty.
type Result struct {
	Filename string
	Source   []byte
	Tokens   []scanner.Token
	Errors   []*scanner.Error
}

// HasErrors reports whether any lexical diagnostics were produced.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Loader scans Lox files. Scanners created by one Loader share a string
// interning pool, so literals repeated across files are pooled once.
type Loader struct {
	interner *scanner.Interner
}

// Option configures a Loader.
type Option func(*Loader)

// WithInterner shares an existing interning pool.
func WithInterner(i *scanner.Interner) Option {
	return func(l *Loader) {
		l.interner = i
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}

	for _, opt := range opts {
		opt(l)
	}

	if l.interner == nil {
		l.interner = scanner.NewInterner(256)
	}

	return l
}

// Load reads and scans a single file.
func (l *Loader) Load(ctx context.Context, filename string) (*Result, error) {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("load %s", filepath.Base(filename)))
	defer timer.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	readTimer := timer.Child("read")
	data, err := os.ReadFile(filename)
	readTimer.End()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return l.scan(timer, filename, data), nil
}

// LoadBytes scans already-materialized source, e.g. from stdin.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*Result, error) {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("load %s", filepath.Base(filename)))
	defer timer.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return l.scan(timer, filename, data), nil
}

func (l *Loader) scan(timer telemetry.Timer, filename string, data []byte) *Result {
	scanTimer := timer.Child("scan")
	s := scanner.New(data, scanner.WithInterner(l.interner))
	tokens := s.ScanTokens()
	scanTimer.End()

	return &Result{
		Filename: filename,
		Source:   data,
		Tokens:   tokens,
		Errors:   s.Errors(),
	}
}
