package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/healang/healex/internal/lexer"
	"github.com/healang/healex/internal/logger"
	"github.com/healang/healex/internal/report"
)

const historyFile = ".healex_history"

// Repl runs an interactive loop: each entered line is tokenized on its
// own and the resulting stream printed. Lexical errors are reported
// without ending the session.
func Repl() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	historyPath := replHistoryPath()
	loadHistory(line, historyPath)
	defer saveHistory(line, historyPath)

	fmt.Println("healex repl - enter a line to tokenize it (:quit to exit)")

	for {
		input, err := line.Prompt("healex> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" || trimmed == ":q" {
			return nil
		}
		line.AppendHistory(input)

		toks, err := lexer.Tokenize(input)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if err := report.WriteTokens(toks, os.Stdout); err != nil {
			return err
		}
	}
}

// replHistoryPath places the history file in the user home directory,
// falling back to the working directory
func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func loadHistory(line *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	if _, err := line.ReadHistory(f); err != nil {
		logger.Debug("failed to read history from %s: %v", path, err)
	}
}

func saveHistory(line *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Debug("failed to save history to %s: %v", path, err)
		return
	}
	defer f.Close()

	if _, err := line.WriteHistory(f); err != nil {
		logger.Debug("failed to write history to %s: %v", path, err)
	}
}
