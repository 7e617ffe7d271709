package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/healang/healex/internal/scan"
)

// TextReporter formats scan results as plain text for terminals
type TextReporter struct{}

// NewTextReporter creates a new text reporter
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// Format renders a scan result as plain text and writes to the writer
func (r *TextReporter) Format(res *scan.Result, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "healex scan report\n"); err != nil {
		return err
	}
	if !res.GeneratedAt.IsZero() {
		if _, err := fmt.Fprintf(writer, "generated: %s\n", res.GeneratedAt.Format(time.RFC1123)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "root: %s\n\n", res.Root); err != nil {
		return err
	}

	// Files are already in discovery order, no sorting needed.
	width := 0
	for _, fr := range res.Files {
		if len(fr.Path) > width {
			width = len(fr.Path)
		}
	}

	for _, fr := range res.Files {
		if err := r.formatFile(&fr, width, writer); err != nil {
			return err
		}
	}

	s := res.Summary
	_, err := fmt.Fprintf(writer, "\nfiles: %d (%d passed, %d failed)\ntokens: %d\n",
		s.Files, s.Passed, s.Failed, s.Tokens)
	return err
}

// formatFile renders a single file's outcome as one line
func (r *TextReporter) formatFile(fr *scan.FileResult, width int, writer io.Writer) error {
	if fr.OK() {
		_, err := fmt.Fprintf(writer, "  %-*s  ok    %s\n", width, fr.Path, describeCounts(fr))
		return err
	}
	_, err := fmt.Fprintf(writer, "  %-*s  FAIL  %s\n", width, fr.Path, describeFailure(fr.Failure))
	return err
}

// describeCounts summarizes a clean file's token tally
func describeCounts(fr *scan.FileResult) string {
	c := fr.Counts
	return fmt.Sprintf("%d tokens (ident %d, num %d, str %d, delim %d, op %d)",
		fr.Tokens, c.Identifiers, c.Numbers, c.Strings, c.Delimiters, c.Operators)
}

// describeFailure renders a failure with its position when one was recorded
func describeFailure(f *scan.Failure) string {
	if f.Row > 0 {
		return fmt.Sprintf("%d:%d: %s", f.Row, f.Col, f.Message)
	}
	return f.Message
}

// FormatString returns a scan result as a plain text string
func (r *TextReporter) FormatString(res *scan.Result) (string, error) {
	var buf strings.Builder
	if err := r.Format(res, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *TextReporter) Name() string {
	return "text"
}
