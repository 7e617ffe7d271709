package scan

import (
	"time"

	"github.com/healang/healex/internal/lexer"
)

// SchemaVersion is the result schema version written by Store.
const SchemaVersion = "1.0"

// Result represents the aggregated outcome of scanning a source tree
type Result struct {
	Version     string       `json:"version"`      // Schema version (e.g., "1.0")
	GeneratedAt time.Time    `json:"generated_at"` // When the scan ran
	Root        string       `json:"root"`         // Search root the paths are relative to
	Files       []FileResult `json:"files"`        // Per-file outcomes in discovery order
	Summary     Summary      `json:"summary"`
}

// NewResult creates an empty Result for the given search root
func NewResult(root string) *Result {
	return &Result{
		Version:     SchemaVersion,
		GeneratedAt: time.Now(),
		Root:        root,
	}
}

// FileResult is the outcome of scanning a single source file
type FileResult struct {
	Path    string      `json:"path"`   // Relative to Result.Root
	Tokens  int         `json:"tokens"` // Emitted tokens, sentinel excluded
	Counts  ClassCounts `json:"counts"`
	Failure *Failure    `json:"failure,omitempty"` // nil when the file scanned cleanly
}

// OK reports whether the file scanned without an error.
func (fr *FileResult) OK() bool {
	return fr.Failure == nil
}

// ClassCounts tallies a file's tokens by lexical class
type ClassCounts struct {
	Identifiers int `json:"identifiers"`
	Numbers     int `json:"numbers"`
	Strings     int `json:"strings"`
	Delimiters  int `json:"delimiters"`
	Operators   int `json:"operators"`
}

// Failure records why a file's scan aborted, flattened for persistence
type Failure struct {
	Message string `json:"message"`
	Row     int    `json:"row,omitempty"`
	Col     int    `json:"col,omitempty"`
}

// Summary aggregates the per-file outcomes of one scan run
type Summary struct {
	Files  int `json:"files"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Tokens int `json:"tokens"`
}

// ExitCode returns the process exit code for this summary
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// PassPercent returns the share of files that scanned cleanly
func (s Summary) PassPercent() float64 {
	if s.Files == 0 {
		return 0.0
	}
	return float64(s.Passed) / float64(s.Files) * 100.0
}

// Class buckets token types for tallying and rendering
type Class int

const (
	ClassIdentifier Class = iota
	ClassNumber
	ClassString
	ClassDelimiter
	ClassOperator
	ClassSentinel
)

// Classify maps a token type to its lexical class
func Classify(tt lexer.TokenType) Class {
	switch tt {
	case lexer.EndOfInput:
		return ClassSentinel
	case lexer.Identifier:
		return ClassIdentifier
	case lexer.NumLiteral:
		return ClassNumber
	case lexer.StrLiteral:
		return ClassString
	case lexer.LParen, lexer.RParen, lexer.LBrace, lexer.RBrace:
		return ClassDelimiter
	default:
		return ClassOperator
	}
}
