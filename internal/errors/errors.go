package errors

import "fmt"

// UnterminatedStringError reports a string literal whose opening quote
// was never closed before the end of input. Row and Col locate the
// opening quote.
type UnterminatedStringError struct {
	Row int
	Col int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("%d:%d: unterminated string literal", e.Row, e.Col)
}

// NewUnterminatedString creates a new UnterminatedStringError
func NewUnterminatedString(row, col int) *UnterminatedStringError {
	return &UnterminatedStringError{
		Row: row,
		Col: col,
	}
}

// UnterminatedCommentError reports a block comment whose opening "/*"
// was never closed before the end of input. Row and Col locate the
// opening delimiter.
type UnterminatedCommentError struct {
	Row int
	Col int
}

func (e *UnterminatedCommentError) Error() string {
	return fmt.Sprintf("%d:%d: unterminated block comment", e.Row, e.Col)
}

// NewUnterminatedComment creates a new UnterminatedCommentError
func NewUnterminatedComment(row, col int) *UnterminatedCommentError {
	return &UnterminatedCommentError{
		Row: row,
		Col: col,
	}
}

// UnrecognizedCharError reports a character that matches none of the
// recognized lexical classes. Row and Col locate the character itself.
type UnrecognizedCharError struct {
	Char rune
	Row  int
	Col  int
}

func (e *UnrecognizedCharError) Error() string {
	return fmt.Sprintf("%d:%d: unrecognized character %q", e.Row, e.Col, e.Char)
}

// NewUnrecognizedChar creates a new UnrecognizedCharError
func NewUnrecognizedChar(ch rune, row, col int) *UnrecognizedCharError {
	return &UnrecognizedCharError{
		Char: ch,
		Row:  row,
		Col:  col,
	}
}

// FileError represents a failure to read a source file before scanning
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError
func NewFileError(path string, err error) *FileError {
	return &FileError{
		Path: path,
		Err:  err,
	}
}
