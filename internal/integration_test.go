package integration_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/healang/healex/internal/cli"
	"github.com/healang/healex/internal/scan"
)

// writeTree lays out a small Hea project under a temp directory
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

const mainSource = `// entry point
main() {
    count = 0
    limit = 10
    while (count < limit) {
        count += 1
    }
    message = "done"
}
`

const libSource = `/* joins two
   values */
concat(a b) {
    result = a
    result |= b
    result
}
`

// TestEndToEndScanAndReport drives the full workflow: discover and
// tokenize a source tree, persist the result, and render it in every
// report format.
func TestEndToEndScanAndReport(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.hl":        mainSource,
		"lib/strings.hl": libSource,
		"README.md":      "not a source file\n",
	})

	scanFile := filepath.Join(t.TempDir(), "scan.json")
	config := &cli.Config{
		SearchPath: root,
		ScanFile:   scanFile,
		Format:     "text",
		Output:     "-",
	}
	if err := config.Validate(); err != nil {
		t.Fatalf("config validation failed: %v", err)
	}

	exitCode, err := cli.Scan(context.Background(), config)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if exitCode != 0 {
		t.Errorf("Scan exit code = %d, want 0", exitCode)
	}

	// Scan data was persisted
	store := scan.NewStore(scanFile)
	if !store.Exists() {
		t.Fatal("scan file was not written")
	}
	res, err := store.Load()
	if err != nil {
		t.Fatalf("loading scan data: %v", err)
	}

	if res.Summary.Files != 2 {
		t.Errorf("scanned %d files, want 2 (README.md is not a source)", res.Summary.Files)
	}
	if res.Summary.Failed != 0 {
		t.Errorf("%d files failed, want 0", res.Summary.Failed)
	}
	if res.Summary.Tokens == 0 {
		t.Error("no tokens recorded")
	}

	paths := make(map[string]bool)
	for _, fr := range res.Files {
		paths[filepath.ToSlash(fr.Path)] = true
	}
	if !paths["main.hl"] || !paths["lib/strings.hl"] {
		t.Errorf("unexpected file set: %v", paths)
	}

	// Render every format to a file
	outDir := t.TempDir()
	for _, format := range []string{"text", "json", "html"} {
		out := filepath.Join(outDir, "report."+format)
		if err := cli.Report(scanFile, format, out); err != nil {
			t.Fatalf("Report(%s) failed: %v", format, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("reading %s report: %v", format, err)
		}
		if len(data) == 0 {
			t.Errorf("%s report is empty", format)
		}
	}

	// Spot-check each format's content
	textOut, _ := os.ReadFile(filepath.Join(outDir, "report.text"))
	if !strings.Contains(string(textOut), "files: 2 (2 passed, 0 failed)") {
		t.Errorf("text report summary wrong:\n%s", textOut)
	}

	jsonOut, _ := os.ReadFile(filepath.Join(outDir, "report.json"))
	var decoded scan.Result
	if err := json.Unmarshal(jsonOut, &decoded); err != nil {
		t.Errorf("json report does not parse: %v", err)
	}

	htmlOut, _ := os.ReadFile(filepath.Join(outDir, "report.html"))
	if !strings.Contains(string(htmlOut), "<!DOCTYPE html>") {
		t.Error("html report missing DOCTYPE")
	}
	if !strings.Contains(string(htmlOut), `<span class="comment">// entry point</span>`) {
		t.Error("html report missing highlighted comment from main.hl")
	}
}

// TestEndToEndScanWithFailures checks that lexical errors surface in the
// persisted result and in the exit code.
func TestEndToEndScanWithFailures(t *testing.T) {
	root := writeTree(t, map[string]string{
		"good.hl": "x = 1\n",
		"bad.hl":  "s = \"unterminated\n",
	})

	scanFile := filepath.Join(root, ".healex", "scan.json")
	config := &cli.Config{
		SearchPath: root,
		ScanFile:   scanFile,
		Format:     "text",
		Output:     "-",
	}

	exitCode, err := cli.Scan(context.Background(), config)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if exitCode != 1 {
		t.Errorf("Scan exit code = %d, want 1", exitCode)
	}

	res, err := scan.NewStore(scanFile).Load()
	if err != nil {
		t.Fatalf("loading scan data: %v", err)
	}
	if res.Summary.Passed != 1 || res.Summary.Failed != 1 {
		t.Errorf("summary = %+v, want 1 passed / 1 failed", res.Summary)
	}

	for _, fr := range res.Files {
		if fr.Path != "bad.hl" {
			continue
		}
		if fr.Failure == nil {
			t.Fatal("bad.hl has no recorded failure")
		}
		if fr.Failure.Message != "unterminated string literal" {
			t.Errorf("failure message = %q", fr.Failure.Message)
		}
		// Position of the opening quote
		if fr.Failure.Row != 1 || fr.Failure.Col != 5 {
			t.Errorf("failure at %d:%d, want 1:5", fr.Failure.Row, fr.Failure.Col)
		}
	}
}

// TestEndToEndScanEmptyTree checks the graceful no-sources path.
func TestEndToEndScanEmptyTree(t *testing.T) {
	root := t.TempDir()
	scanFile := filepath.Join(root, "scan.json")
	config := &cli.Config{
		SearchPath: root,
		ScanFile:   scanFile,
		Format:     "text",
		Output:     "-",
	}

	exitCode, err := cli.Scan(context.Background(), config)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if exitCode != 0 {
		t.Errorf("Scan exit code = %d, want 0", exitCode)
	}
	if scan.NewStore(scanFile).Exists() {
		t.Error("scan file written for an empty tree")
	}
}

// TestScanBundledSample runs the scan workflow over the sample sources
// shipped in testdata, pinning their token tallies and the one failure
// that broken.hl carries on purpose.
func TestScanBundledSample(t *testing.T) {
	scanFile := filepath.Join(t.TempDir(), "scan.json")
	config := &cli.Config{
		SearchPath: filepath.Join("..", "testdata", "sample"),
		ScanFile:   scanFile,
		Format:     "text",
		Output:     "-",
	}

	exitCode, err := cli.Scan(context.Background(), config)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if exitCode != 1 {
		t.Errorf("Scan exit code = %d, want 1 (broken.hl fails)", exitCode)
	}

	res, err := scan.NewStore(scanFile).Load()
	if err != nil {
		t.Fatalf("loading scan data: %v", err)
	}

	wantSummary := scan.Summary{Files: 3, Passed: 2, Failed: 1, Tokens: 113}
	if res.Summary != wantSummary {
		t.Errorf("summary = %+v, want %+v", res.Summary, wantSummary)
	}

	byPath := make(map[string]scan.FileResult, len(res.Files))
	for _, fr := range res.Files {
		byPath[filepath.ToSlash(fr.Path)] = fr
	}

	mainFile := byPath["main.hl"]
	if mainFile.Tokens != 38 {
		t.Errorf("main.hl tokens = %d, want 38", mainFile.Tokens)
	}
	wantCounts := scan.ClassCounts{Identifiers: 15, Numbers: 4, Strings: 1, Delimiters: 10, Operators: 8}
	if mainFile.Counts != wantCounts {
		t.Errorf("main.hl counts = %+v, want %+v", mainFile.Counts, wantCounts)
	}

	opsFile := byPath["ops.hl"]
	wantCounts = scan.ClassCounts{Identifiers: 38, Numbers: 4, Delimiters: 12, Operators: 21}
	if opsFile.Counts != wantCounts {
		t.Errorf("ops.hl counts = %+v, want %+v", opsFile.Counts, wantCounts)
	}

	brokenFile := byPath["broken.hl"]
	if brokenFile.Failure == nil {
		t.Fatal("broken.hl has no recorded failure")
	}
	if brokenFile.Failure.Message != "unterminated string literal" ||
		brokenFile.Failure.Row != 3 || brokenFile.Failure.Col != 11 {
		t.Errorf("broken.hl failure = %+v, want unterminated string literal at 3:11", brokenFile.Failure)
	}
}

// TestEndToEndDump covers the single-file dump paths.
func TestEndToEndDump(t *testing.T) {
	root := writeTree(t, map[string]string{"one.hl": "v -> 7\n"})
	source := filepath.Join(root, "one.hl")

	out := filepath.Join(root, "tokens.txt")
	if err := cli.Dump(source, false, out); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Identifier", "Arrow", "NumLiteral", "EndOfInput"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("dump output missing %s:\n%s", want, data)
		}
	}

	outJSON := filepath.Join(root, "tokens.json")
	if err := cli.Dump(source, true, outJSON); err != nil {
		t.Fatalf("Dump json failed: %v", err)
	}
	raw, err := os.ReadFile(outJSON)
	if err != nil {
		t.Fatal(err)
	}
	var toks []map[string]interface{}
	if err := json.Unmarshal(raw, &toks); err != nil {
		t.Fatalf("json dump does not parse: %v", err)
	}
	if len(toks) != 4 {
		t.Errorf("json dump has %d tokens, want 4", len(toks))
	}
}

// TestEndToEndDumpErrors covers dump failure reporting.
func TestEndToEndDumpErrors(t *testing.T) {
	root := writeTree(t, map[string]string{"bad.hl": "a @ b\n"})

	err := cli.Dump(filepath.Join(root, "bad.hl"), false, "-")
	if err == nil {
		t.Fatal("Dump on invalid source succeeded, want error")
	}
	if !strings.Contains(err.Error(), "unrecognized character") {
		t.Errorf("unexpected error: %v", err)
	}

	if err := cli.Dump(filepath.Join(root, "missing.hl"), false, "-"); err == nil {
		t.Fatal("Dump on missing file succeeded, want error")
	}
}

// TestEndToEndReportErrors covers report preconditions.
func TestEndToEndReportErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "scan.json")

	err := cli.Report(missing, "text", "-")
	if err == nil {
		t.Fatal("Report without scan data succeeded, want error")
	}
	if !strings.Contains(err.Error(), "run 'healex scan' first") {
		t.Errorf("unexpected error: %v", err)
	}

	// Valid store, bogus format
	root := writeTree(t, map[string]string{"a.hl": "x = 1\n"})
	scanFile := filepath.Join(root, "scan.json")
	config := &cli.Config{SearchPath: root, ScanFile: scanFile, Format: "text", Output: "-"}
	if _, err := cli.Scan(context.Background(), config); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	err = cli.Report(scanFile, "xml", "-")
	if err == nil {
		t.Fatal("Report with bogus format succeeded, want error")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("unexpected error: %v", err)
	}
}
