package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContextDefaultsToNoOp(t *testing.T) {
	collector := FromContext(context.Background())

	// Must be safe to use without panicking or writing anything.
	timer := collector.Start("noop")
	timer.Child("child").End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, 0, buf.Len())
}

func TestWithCollectorRoundTrip(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	got := FromContext(ctx)
	assert.Equal[Collector](t, collector, got)
}

func TestTimingCollectorReport(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("load test.lox")
	read := root.Child("read")
	read.End()
	scan := root.Child("scan")
	scan.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "load test.lox: "))
	assert.Contains(t, lines[1], "├─ read: ")
	assert.Contains(t, lines[2], "└─ scan: ")
}

func TestTimingCollectorNesting(t *testing.T) {
	collector := NewTimingCollector()

	// Start while another timer is open nests under it.
	outer := collector.Start("outer")
	inner := collector.Start("inner")
	inner.End()
	outer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Contains(t, buf.String(), "└─ inner: ")
}

func TestEmptyCollectorReportsNothing(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, 0, buf.Len())
}
