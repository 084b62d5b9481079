// Package format renders captured records for humans, e.g. when dumping
// everything a failed test logged.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	goerrors "github.com/go-errors/errors"

	"github.com/usefultoys/slogmock/capture"
)

var (
	levelColor  = color.New(color.Bold)
	loggerColor = color.New(color.FgHiBlue)
	attrColor   = color.New(color.Faint)
	errColor    = color.New(color.FgRed)
)

// Records renders all records captured by the handler, one per line, with a
// leading summary line.
func Records(h *capture.Handler) string {
	if h == nil {
		return "  (no handler)\n"
	}

	records := h.Records()
	if len(records) == 0 {
		return "  (no records captured)\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  handler %s: %d record(s)\n", h.ID(), len(records))

	for _, rec := range records {
		b.WriteString("  ")
		b.WriteString(Record(rec))
		b.WriteByte('\n')

		if rec.Err != nil {
			fmt.Fprintf(&b, "        %s\n", errColor.Sprintf("error: %T: %v", rec.Err, rec.Err))
			writeStack(&b, rec.Err)
		}
	}

	return b.String()
}

// Record renders a single record as "[index] LEVEL | logger | message attrs".
func Record(rec capture.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%d] %s", rec.Index, levelColor.Sprintf("%-7s", rec.Level.String()))

	logger := rec.Logger
	if logger == "" {
		logger = "-"
	}
	fmt.Fprintf(&b, " | %s", loggerColor.Sprintf("%-20s", logger))

	b.WriteString(" | ")
	b.WriteString(rec.Message)

	for _, a := range rec.Attrs {
		b.WriteByte(' ')
		b.WriteString(attrColor.Sprintf("%s=%s", a.Key, a.Value.String()))
	}

	return b.String()
}

// writeStack appends the error's stack trace when the error carries one.
func writeStack(b *strings.Builder, err error) {
	var stackErr *goerrors.Error
	if !errors.As(err, &stackErr) {
		return
	}

	for _, line := range strings.Split(strings.TrimRight(string(stackErr.Stack()), "\n"), "\n") {
		b.WriteString("        ")
		b.WriteString(attrColor.Sprint(line))
		b.WriteByte('\n')
	}
}
