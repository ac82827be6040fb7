package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-runewidth"

	"golox/output"
	"golox/scanner"
	"golox/telemetry"
)

// TokensCmd shows the token stream scanned from a Lox source file.
type TokensCmd struct {
	File FileOrStdin `help:"Lox input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Dump bool        `help:"Dump the raw token structs instead of the formatted listing."`
}

// Run executes the tokens command.
func (cmd *TokensCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		timer := collector.Start(fmt.Sprintf("tokens %s", filepath.Base(cmd.File.Filename)))
		defer func() {
			timer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	result, err := loadFile(runCtx, &cmd.File)
	if err != nil {
		return err
	}

	if cmd.Dump {
		repr.Println(result.Tokens)
		return nil
	}

	styles := output.NewStyles(ctx.Stdout)

	// Lexeme column width: widest lexeme, measured in display cells since
	// string literals may contain wide characters.
	width := 0
	for _, tok := range result.Tokens {
		if w := runewidth.StringWidth(tok.Lexeme(result.Source)); w > width {
			width = w
		}
	}

	for _, tok := range result.Tokens {
		lexeme := tok.Lexeme(result.Source)
		pad := width - runewidth.StringWidth(lexeme)

		line := fmt.Sprintf("%4d  %-14s %q%*s", tok.Line, tok.Type, lexeme, pad, "")
		if lit := formatLiteral(tok); lit != "" {
			line += "  " + styles.Literal(lit)
		}
		_, _ = fmt.Fprintln(ctx.Stdout, line)
	}

	if result.HasErrors() {
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d lexical error(s) found", len(result.Errors)))
		return NewCommandError(1)
	}

	return nil
}

// formatLiteral renders a token's decoded literal value, or "" when the
// token carries none.
func formatLiteral(tok scanner.Token) string {
	switch v := tok.Literal.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return ""
	}
}
