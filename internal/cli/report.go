package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/healang/healex/internal/report"
	"github.com/healang/healex/internal/scan"
)

// Report generates a report from saved scan data
func Report(scanFile string, format string, outputPath string) error {
	// Step 1: Load scan data
	store := scan.NewStore(scanFile)
	if !store.Exists() {
		return fmt.Errorf("scan file not found: %s (run 'healex scan' first)", scanFile)
	}

	res, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load scan data: %w", err)
	}

	// Step 2: Validate format
	if !report.ValidFormat(format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, report.SupportedFormats())
	}

	// Step 3: Get formatter
	formatter, err := report.GetFormatter(report.FormatType(format))
	if err != nil {
		return err
	}

	// Step 4: Format and output
	writer, cleanup, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := formatter.Format(res, writer); err != nil {
		return fmt.Errorf("failed to format scan data: %w", err)
	}

	// Print success message to stderr (so it doesn't interfere with stdout output)
	if outputPath != "-" && outputPath != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outputPath)
	}

	return nil
}

// openOutput resolves "-" or empty to stdout, otherwise creates the file
func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
