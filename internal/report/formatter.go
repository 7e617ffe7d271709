package report

import (
	"fmt"
	"io"

	"github.com/healang/healex/internal/scan"
)

// Formatter is an interface for scan report formatters
type Formatter interface {
	// Format renders a scan result and writes to the writer
	Format(res *scan.Result, writer io.Writer) error

	// FormatString returns a scan result rendered as a string
	FormatString(res *scan.Result) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatText FormatType = "text"
	FormatJSON FormatType = "json"
	FormatHTML FormatType = "html"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextReporter(), nil
	case FormatJSON:
		return NewJSONReporter(), nil
	case FormatHTML:
		return NewHTMLReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, html)", format)
	}
}

// FormatToWriter renders a scan result to a writer using the specified format
func FormatToWriter(res *scan.Result, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(res, writer)
}

// FormatToString renders a scan result to a string using the specified format
func FormatToString(res *scan.Result, format FormatType) (string, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return "", err
	}
	return formatter.FormatString(res)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatText, FormatJSON, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatHTML)}
}
