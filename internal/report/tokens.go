package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/healang/healex/internal/lexer"
)

// WriteTokens writes a token stream as plain text, one token per line:
// span, kind, and lexeme.
func WriteTokens(toks []lexer.Token, writer io.Writer) error {
	for _, tok := range toks {
		if _, err := fmt.Fprintf(writer, "%-12s %-11s %s\n", tok.Span, tok.Type, tok.Lexeme()); err != nil {
			return err
		}
	}
	return nil
}

// tokenJSON is the wire shape of one token in a JSON dump
type tokenJSON struct {
	Type  string  `json:"type"`
	Text  string  `json:"text,omitempty"`
	Start posJSON `json:"start"`
	End   posJSON `json:"end"`
}

type posJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WriteTokensJSON writes a token stream as a JSON array
func WriteTokensJSON(toks []lexer.Token, writer io.Writer) error {
	out := make([]tokenJSON, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tokenJSON{
			Type:  tok.Type.String(),
			Text:  tok.Text,
			Start: posJSON{Row: tok.Span.Start.Row, Col: tok.Span.Start.Col},
			End:   posJSON{Row: tok.Span.End.Row, Col: tok.Span.End.Col},
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokens to JSON: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	_, err = writer.Write([]byte("\n"))
	return err
}
