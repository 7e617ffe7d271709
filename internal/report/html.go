package report

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/healang/healex/internal/lexer"
	"github.com/healang/healex/internal/scan"
)

// HTMLReporter formats scan results as a self-contained HTML page
// with token-highlighted source listings.
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// Format renders a scan result as HTML and writes to the writer
func (r *HTMLReporter) Format(res *scan.Result, writer io.Writer) error {
	// Write HTML header
	if err := r.writeHeader(res, writer); err != nil {
		return err
	}

	// Write summary section
	if err := r.writeSummary(res, writer); err != nil {
		return err
	}

	// Write file details in discovery order
	for i := range res.Files {
		if err := r.writeFileDetail(&res.Files[i], res.Root, writer); err != nil {
			return err
		}
	}

	// Write HTML footer
	return r.writeFooter(writer)
}

// writeHeader writes the HTML document header with CSS
func (r *HTMLReporter) writeHeader(res *scan.Result, writer io.Writer) error {
	timestamp := time.Now().Format(time.RFC1123)
	if !res.GeneratedAt.IsZero() {
		timestamp = res.GeneratedAt.Format(time.RFC1123)
	}

	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>healex Scan Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        header { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        header h1 { font-size: 2.5em; margin-bottom: 10px; }
        header .meta { opacity: 0.8; font-size: 0.9em; }
        .summary { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .summary h2 { margin-bottom: 20px; color: #2c3e50; }
        .summary-stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; }
        .stat-card { background: #f8f9fa; padding: 20px; border-radius: 6px; border-left: 4px solid #3498db; }
        .stat-card .label { font-size: 0.85em; color: #7f8c8d; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 8px; }
        .stat-card .value { font-size: 2em; font-weight: bold; color: #2c3e50; }
        .pass-bar { width: 100%%; height: 24px; background: #ecf0f1; border-radius: 4px; overflow: hidden; margin-top: 10px; }
        .pass-fill { height: 100%%; background: linear-gradient(90deg, #e74c3c 0%%, #f39c12 50%%, #2ecc71 100%%); transition: width 0.3s ease; }
        .file-detail { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .file-detail h3 { margin-bottom: 15px; color: #2c3e50; font-family: 'Courier New', monospace; }
        .file-badge { font-weight: bold; padding: 4px 12px; border-radius: 4px; font-size: 0.8em; }
        .file-badge.ok { background: #d4edda; color: #155724; }
        .file-badge.failed { background: #f8d7da; color: #721c24; }
        .failure-banner { background: #f8d7da; color: #721c24; padding: 10px 15px; border-radius: 4px; margin-bottom: 15px; font-family: 'Courier New', monospace; font-size: 0.9em; }
        .note { color: #7f8c8d; font-style: italic; padding: 10px 0; }
        .source-code { background: #282c34; color: #abb2bf; font-family: 'Courier New', monospace; font-size: 0.9em; line-height: 1.6; border-radius: 6px; overflow-x: auto; }
        .source-line { display: flex; padding: 2px 0; }
        .source-line:hover { background: rgba(255,255,255,0.05); }
        .source-line.failed-line { background: rgba(231, 76, 60, 0.25); }
        .line-number { padding: 0 15px; text-align: right; user-select: none; color: #5c6370; min-width: 60px; }
        .line-content { padding: 0 15px; flex: 1; white-space: pre; }
        .tok-ident { color: #e06c75; }
        .tok-num { color: #d19a66; }
        .tok-str { color: #98c379; }
        .tok-delim { color: #abb2bf; }
        .tok-op { color: #56b6c2; }
        .comment { color: #5c6370; font-style: italic; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>🔍 healex Scan Report</h1>
            <div class="meta">Generated: %s | Version: %s | Root: %s</div>
        </div>
    </header>
    <div class="container">
`, timestamp, html.EscapeString(res.Version), html.EscapeString(res.Root))
	return err
}

// writeSummary writes the scan summary section
func (r *HTMLReporter) writeSummary(res *scan.Result, writer io.Writer) error {
	s := res.Summary
	percent := s.PassPercent()

	_, err := fmt.Fprintf(writer, `        <section class="summary">
            <h2>Scan Summary</h2>
            <div class="summary-stats">
                <div class="stat-card">
                    <div class="label">Clean Files</div>
                    <div class="value">%.1f%%</div>
                    <div class="pass-bar">
                        <div class="pass-fill" style="width: %.1f%%;"></div>
                    </div>
                </div>
                <div class="stat-card">
                    <div class="label">Files</div>
                    <div class="value">%d</div>
                </div>
                <div class="stat-card">
                    <div class="label">Tokens</div>
                    <div class="value">%d</div>
                </div>
                <div class="stat-card">
                    <div class="label">Failures</div>
                    <div class="value">%d</div>
                </div>
            </div>
        </section>

`, percent, percent, s.Files, s.Tokens, s.Failed)
	return err
}

// writeFileDetail writes one file's section: badge, failure banner if any,
// and a highlighted source listing when the file can be read back.
func (r *HTMLReporter) writeFileDetail(fr *scan.FileResult, root string, writer io.Writer) error {
	badgeClass, badgeText := "ok", "ok"
	if !fr.OK() {
		badgeClass, badgeText = "failed", "failed"
	}

	_, err := fmt.Fprintf(writer, `        <section class="file-detail">
            <h3>%s <span class="file-badge %s">%s</span></h3>
`, html.EscapeString(fr.Path), badgeClass, badgeText)
	if err != nil {
		return err
	}

	if !fr.OK() {
		if err := r.writeFailure(fr, root, writer); err != nil {
			return err
		}
	} else if err := r.writeSource(fr, root, writer); err != nil {
		return err
	}

	_, err = writer.Write([]byte(`        </section>

`))
	return err
}

// writeFailure writes the failure banner and, when the source is still
// readable, a plain listing with the offending row marked.
func (r *HTMLReporter) writeFailure(fr *scan.FileResult, root string, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `            <div class="failure-banner">✗ %s</div>
`, html.EscapeString(describeFailure(fr.Failure)))
	if err != nil {
		return err
	}

	src, err := readSource(root, fr.Path)
	if err != nil {
		return nil
	}

	lines := splitLines(src)
	if err := r.openSource(writer); err != nil {
		return err
	}
	for i, line := range lines {
		lineClass := ""
		if i+1 == fr.Failure.Row {
			lineClass = " failed-line"
		}
		if err := r.writeLine(i+1, lineClass, html.EscapeString(string(line)), writer); err != nil {
			return err
		}
	}
	return r.closeSource(writer)
}

// writeSource writes a token-highlighted listing of a cleanly scanned file.
// The source is read back and tokenized again; if either step fails the
// stored tally is shown instead.
func (r *HTMLReporter) writeSource(fr *scan.FileResult, root string, writer io.Writer) error {
	src, err := readSource(root, fr.Path)
	if err != nil {
		return r.writeNote(fr, writer)
	}
	toks, err := lexer.Tokenize(src)
	if err != nil {
		// The file changed since the scan ran.
		return r.writeNote(fr, writer)
	}

	lines := splitLines(src)
	classes := classifyChars(lines, toks)

	if err := r.openSource(writer); err != nil {
		return err
	}
	for i, line := range lines {
		if err := r.writeLine(i+1, "", renderLine(line, classes[i]), writer); err != nil {
			return err
		}
	}
	return r.closeSource(writer)
}

// writeNote writes the stored tally when the source cannot be listed
func (r *HTMLReporter) writeNote(fr *scan.FileResult, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `            <div class="note">source unavailable; recorded %s</div>
`, html.EscapeString(describeCounts(fr)))
	return err
}

func (r *HTMLReporter) openSource(writer io.Writer) error {
	_, err := writer.Write([]byte(`            <div class="source-code">
`))
	return err
}

func (r *HTMLReporter) closeSource(writer io.Writer) error {
	_, err := writer.Write([]byte(`            </div>
`))
	return err
}

// writeLine writes a single numbered source line; content is already escaped
func (r *HTMLReporter) writeLine(num int, lineClass, content string, writer io.Writer) error {
	if content == "" {
		content = "&nbsp;"
	}
	_, err := fmt.Fprintf(writer, `                <div class="source-line%s">
                    <div class="line-number">%d</div>
                    <div class="line-content">%s</div>
                </div>
`, lineClass, num, content)
	return err
}

// readSource reads a scanned file back, resolving its stored relative path
func readSource(root, path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		// Fall back to the path as stored.
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("cannot open file: %w", err)
		}
	}
	return string(data), nil
}

// splitLines breaks source text into per-line rune slices, dropping the
// empty remainder after a trailing newline
func splitLines(src string) [][]rune {
	parts := strings.Split(src, "\n")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// classifyChars maps every source character to a CSS class. Characters
// covered by a token span get that token's class; whatever remains outside
// all spans is either whitespace or comment text, so each leftover run is
// styled as a comment up to its non-blank extent.
func classifyChars(lines [][]rune, toks []lexer.Token) [][]string {
	classes := make([][]string, len(lines))
	for i, line := range lines {
		classes[i] = make([]string, len(line))
	}

	for _, tok := range toks {
		class := cssClass(scan.Classify(tok.Type))
		if class == "" {
			continue
		}
		for row := tok.Span.Start.Row; row <= tok.Span.End.Row; row++ {
			if row < 1 || row > len(lines) {
				continue
			}
			lo, hi := 1, len(lines[row-1])
			if row == tok.Span.Start.Row {
				lo = tok.Span.Start.Col
			}
			if row == tok.Span.End.Row {
				hi = tok.Span.End.Col
			}
			for col := lo; col <= hi && col <= len(lines[row-1]); col++ {
				classes[row-1][col-1] = class
			}
		}
	}

	for i, line := range lines {
		j := 0
		for j < len(line) {
			if classes[i][j] != "" {
				j++
				continue
			}
			k := j
			for k < len(line) && classes[i][k] == "" {
				k++
			}
			markCommentExtent(line, classes[i], j, k)
			j = k
		}
	}
	return classes
}

// markCommentExtent marks the non-blank extent of the gap run [lo,hi) as
// comment text, leaving flanking whitespace unstyled
func markCommentExtent(line []rune, classes []string, lo, hi int) {
	hi--
	for lo <= hi && (line[lo] == ' ' || line[lo] == '\t') {
		lo++
	}
	for hi >= lo && (line[hi] == ' ' || line[hi] == '\t') {
		hi--
	}
	for p := lo; p <= hi; p++ {
		classes[p] = "comment"
	}
}

// cssClass maps a lexical class to its stylesheet class name
func cssClass(c scan.Class) string {
	switch c {
	case scan.ClassIdentifier:
		return "tok-ident"
	case scan.ClassNumber:
		return "tok-num"
	case scan.ClassString:
		return "tok-str"
	case scan.ClassDelimiter:
		return "tok-delim"
	case scan.ClassOperator:
		return "tok-op"
	default:
		return ""
	}
}

// renderLine escapes a source line and wraps class runs in spans
func renderLine(line []rune, classes []string) string {
	var sb strings.Builder
	for i := 0; i < len(line); {
		class := classes[i]
		j := i
		for j < len(line) && classes[j] == class {
			j++
		}
		text := html.EscapeString(string(line[i:j]))
		if class == "" {
			sb.WriteString(text)
		} else {
			fmt.Fprintf(&sb, `<span class="%s">%s</span>`, class, text)
		}
		i = j
	}
	return sb.String()
}

// writeFooter writes the HTML document footer
func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        <footer>
            Generated by <strong>healex</strong> - Hea Lexical Analyzer
        </footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns a scan result as an HTML string
func (r *HTMLReporter) FormatString(res *scan.Result) (string, error) {
	var buf strings.Builder
	if err := r.Format(res, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *HTMLReporter) Name() string {
	return "html"
}
