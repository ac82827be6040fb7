package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"golox/loader"
	"golox/output"
	"golox/telemetry"
)

type CheckCmd struct {
	File FileOrStdin `help:"Lox input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	var checkTimer telemetry.Timer
	var once sync.Once

	reportTelemetry := func() {
		once.Do(func() {
			if collector != nil {
				checkTimer.End()
				_, _ = fmt.Fprintln(ctx.Stderr)
				collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
			}
		})
	}

	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		checkTimer = collector.Start(fmt.Sprintf("check %s", filepath.Base(cmd.File.Filename)))

		defer reportTelemetry()
	}

	result, err := loadFile(runCtx, &cmd.File)
	if err != nil {
		return err
	}

	if result.HasErrors() {
		renderer := NewErrorRenderer(result.Source)
		formatted := renderer.RenderAll(result.Errors)
		_, _ = fmt.Fprintln(ctx.Stderr, formatted)

		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, fmt.Sprintf("%d lexical error(s) found", len(result.Errors)))

		reportTelemetry()
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Scanned %d token(s)", len(result.Tokens)))

	return nil
}

// loadFile scans a FileOrStdin through the loader, using the in-memory
// contents for stdin and the file path otherwise.
func loadFile(ctx context.Context, f *FileOrStdin) (*loader.Result, error) {
	ldr := loader.New()

	if f.Filename == "<stdin>" {
		return ldr.LoadBytes(ctx, f.Filename, f.Contents)
	}
	return ldr.Load(ctx, f.GetAbsoluteFilename())
}
