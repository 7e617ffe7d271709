package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/healang/healex/internal/scan"
)

func TestHTMLReporter_Format(t *testing.T) {
	res := testResult()
	reporter := NewHTMLReporter()

	t.Run("Format", func(t *testing.T) {
		var buf bytes.Buffer
		err := reporter.Format(res, &buf)
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}

		output := buf.String()

		// Verify HTML structure
		requiredElements := []string{
			"<!DOCTYPE html>",
			"<html",
			"<head>",
			"<body>",
			"</html>",
			"Scan Report",
			"healex",
		}
		for _, elem := range requiredElements {
			if !strings.Contains(output, elem) {
				t.Errorf("Missing required HTML element: %s", elem)
			}
		}

		// Verify files are present
		if !strings.Contains(output, "main.hl") {
			t.Error("File main.hl not found in HTML output")
		}
		if !strings.Contains(output, "broken.hl") {
			t.Error("File broken.hl not found in HTML output")
		}

		// The failed file carries its banner with the recorded position
		if !strings.Contains(output, "4:12: unterminated string literal") {
			t.Error("Missing failure banner for broken.hl")
		}

		// Neither file exists on disk, so the clean file falls back to its tally
		if !strings.Contains(output, "source unavailable") {
			t.Error("Missing source fallback note")
		}
	})

	t.Run("FormatString", func(t *testing.T) {
		output, err := reporter.FormatString(res)
		if err != nil {
			t.Fatalf("FormatString failed: %v", err)
		}
		if !strings.Contains(output, "<!DOCTYPE html>") {
			t.Error("Missing DOCTYPE declaration")
		}
		if !strings.Contains(output, "</html>") {
			t.Error("Missing closing html tag")
		}
	})

	t.Run("Name", func(t *testing.T) {
		if name := reporter.Name(); name != "html" {
			t.Errorf("Name mismatch: got %s, want html", name)
		}
	})
}

func TestHTMLReporter_HighlightsSource(t *testing.T) {
	dir := t.TempDir()
	src := "count = 42 // initial\nname = \"hea\"\n"
	if err := os.WriteFile(filepath.Join(dir, "main.hl"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	res := &scan.Result{
		Version:     scan.SchemaVersion,
		GeneratedAt: time.Now(),
		Root:        dir,
		Files: []scan.FileResult{
			{Path: "main.hl", Tokens: 7},
		},
		Summary: scan.Summary{Files: 1, Passed: 1, Tokens: 7},
	}

	var buf bytes.Buffer
	if err := NewHTMLReporter().Format(res, &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := buf.String()

	cases := []struct {
		name string
		want string
	}{
		{"identifier span", `<span class="tok-ident">count</span>`},
		{"number span", `<span class="tok-num">42</span>`},
		{"string span", `<span class="tok-str">&#34;hea&#34;</span>`},
		{"operator span", `<span class="tok-op">=</span>`},
		{"comment span", `<span class="comment">// initial</span>`},
	}
	for _, c := range cases {
		if !strings.Contains(output, c.want) {
			t.Errorf("%s: output missing %s", c.name, c.want)
		}
	}

	// Both source lines are numbered
	if !strings.Contains(output, `<div class="line-number">1</div>`) ||
		!strings.Contains(output, `<div class="line-number">2</div>`) {
		t.Error("Missing line numbers in source listing")
	}
}

func TestHTMLReporter_MarksFailedLine(t *testing.T) {
	dir := t.TempDir()
	src := "x = 1\ny = \"oops\n"
	if err := os.WriteFile(filepath.Join(dir, "bad.hl"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	res := &scan.Result{
		Version:     scan.SchemaVersion,
		GeneratedAt: time.Now(),
		Root:        dir,
		Files: []scan.FileResult{
			{
				Path:    "bad.hl",
				Failure: &scan.Failure{Message: "unterminated string literal", Row: 2, Col: 5},
			},
		},
		Summary: scan.Summary{Files: 1, Failed: 1},
	}

	var buf bytes.Buffer
	if err := NewHTMLReporter().Format(res, &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "2:5: unterminated string literal") {
		t.Error("Missing failure banner")
	}
	if !strings.Contains(output, `source-line failed-line`) {
		t.Error("Offending row not marked in source listing")
	}
}

func TestHTMLReporter_EscapesSource(t *testing.T) {
	dir := t.TempDir()
	src := "a < b // <script>\n"
	if err := os.WriteFile(filepath.Join(dir, "esc.hl"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	res := &scan.Result{
		Version:     scan.SchemaVersion,
		GeneratedAt: time.Now(),
		Root:        dir,
		Files:       []scan.FileResult{{Path: "esc.hl", Tokens: 3}},
		Summary:     scan.Summary{Files: 1, Passed: 1, Tokens: 3},
	}

	var buf bytes.Buffer
	if err := NewHTMLReporter().Format(res, &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := buf.String()

	if strings.Contains(output, "<script>") {
		t.Error("Source content not escaped")
	}
	if !strings.Contains(output, "&lt;script&gt;") {
		t.Error("Escaped comment content missing")
	}
}
