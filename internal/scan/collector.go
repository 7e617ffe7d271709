package scan

import (
	"errors"
	"fmt"

	hlerrors "github.com/healang/healex/internal/errors"
	"github.com/healang/healex/internal/lexer"
)

// Collector aggregates per-file scan outcomes into a Result
type Collector struct {
	result *Result
}

// NewCollector creates a collector for a scan rooted at root
func NewCollector(root string) *Collector {
	return &Collector{
		result: NewResult(root),
	}
}

// Add records a file that scanned cleanly, tallying its tokens by class
func (c *Collector) Add(path string, toks []lexer.Token) {
	fr := FileResult{Path: path}
	for _, tok := range toks {
		switch Classify(tok.Type) {
		case ClassSentinel:
			continue
		case ClassIdentifier:
			fr.Counts.Identifiers++
		case ClassNumber:
			fr.Counts.Numbers++
		case ClassString:
			fr.Counts.Strings++
		case ClassDelimiter:
			fr.Counts.Delimiters++
		case ClassOperator:
			fr.Counts.Operators++
		}
		fr.Tokens++
	}

	c.result.Files = append(c.result.Files, fr)
	c.result.Summary.Files++
	c.result.Summary.Passed++
	c.result.Summary.Tokens += fr.Tokens
}

// AddFailure records a file whose scan aborted with err
func (c *Collector) AddFailure(path string, err error) {
	c.result.Files = append(c.result.Files, FileResult{
		Path:    path,
		Failure: newFailure(err),
	})
	c.result.Summary.Files++
	c.result.Summary.Failed++
}

// Result returns the aggregated scan result
func (c *Collector) Result() *Result {
	return c.result
}

// Reset clears all collected outcomes, keeping the root
func (c *Collector) Reset() {
	c.result = NewResult(c.result.Root)
}

// newFailure flattens a scan error into a persistable Failure,
// extracting the source position from the typed lexical errors.
func newFailure(err error) *Failure {
	var (
		strErr  *hlerrors.UnterminatedStringError
		comErr  *hlerrors.UnterminatedCommentError
		charErr *hlerrors.UnrecognizedCharError
	)
	switch {
	case errors.As(err, &strErr):
		return &Failure{Message: "unterminated string literal", Row: strErr.Row, Col: strErr.Col}
	case errors.As(err, &comErr):
		return &Failure{Message: "unterminated block comment", Row: comErr.Row, Col: comErr.Col}
	case errors.As(err, &charErr):
		return &Failure{
			Message: fmt.Sprintf("unrecognized character %q", charErr.Char),
			Row:     charErr.Row,
			Col:     charErr.Col,
		}
	default:
		return &Failure{Message: err.Error()}
	}
}
