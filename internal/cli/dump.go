package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/healang/healex/internal/lexer"
	"github.com/healang/healex/internal/report"
)

// Dump tokenizes a single source file, or stdin when path is "-", and
// writes the token stream
func Dump(path string, asJSON bool, outputPath string) error {
	src, name, err := readInput(path)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	writer, cleanup, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if asJSON {
		return report.WriteTokensJSON(toks, writer)
	}
	return report.WriteTokens(toks, writer)
}

// readInput reads a source file, or stdin when path is "-"
func readInput(path string) (string, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), path, nil
}
