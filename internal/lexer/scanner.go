/*
 * scanner.go
 *
 * Single-pass lexical scanner for Hea source text.
 *
 * The scan is one forward pass over the decoded input with bounded
 * lookahead. At each position the current character selects a scan
 * rule, in order: whitespace → comments → identifiers → numbers →
 * strings → delimiters → operators. Operator rules apply strict
 * longest-match disambiguation: when scanning "<", the three-character
 * "<<=" is checked before "<<", which is checked before settling for
 * "<" alone.
 *
 * Row/column bookkeeping is uniform: both are 1-based, the column
 * advances once per consumed character, and a newline advances the row
 * and resets the column to 1 for the character that follows it. A
 * token's span runs from its first to its last consumed character.
 *
 * Usage:
 *
 *	toks, err := lexer.Tokenize(src)
 *	if err != nil {
 *	    // *errors.UnterminatedStringError, *errors.UnterminatedCommentError,
 *	    // or *errors.UnrecognizedCharError
 *	}
 *	for _, tok := range toks { … }
 *
 * The returned sequence is always terminated by exactly one EndOfInput
 * token. Scanning aborts on the first lexical error and returns a typed
 * error value instead of a partial sequence.
 */
package lexer

import (
	"github.com/healang/healex/internal/errors"
)

// Tokenize scans src and returns the complete token sequence,
// terminated by EndOfInput. On the first lexical error it returns a
// nil sequence and the typed error; there is no partial-result
// recovery. Tokenize holds no state across calls, so concurrent calls
// on independent inputs are safe.
func Tokenize(src string) ([]Token, error) {
	s := newScanner(src)
	var toks []Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == EndOfInput {
			return toks, nil
		}
	}
}

// scanner holds all mutable state for a single pass over the input.
type scanner struct {
	src []rune
	pos int // index of the next rune to consume

	row int // 1-based row of the next rune
	col int // 1-based column of the next rune

	prev Pos // position of the most recently consumed rune
}

func newScanner(src string) *scanner {
	return &scanner{src: []rune(src), row: 1, col: 1}
}

/*
 * next returns the next token, or a typed error for an unterminated
 * string literal, an unterminated block comment, or a character
 * outside the recognized alphabet.
 *
 * Whitespace and both comment styles are consumed in a loop before
 * dispatch so that any run of blanks and comments between two tokens
 * collapses, including a comment followed by more whitespace. Neither
 * emits a token.
 */
func (s *scanner) next() (Token, error) {
	for {
		s.skipWhitespace()
		if s.peek(0) == '/' && s.peek(1) == '/' {
			s.skipLineComment()
			continue
		}
		if s.peek(0) == '/' && s.peek(1) == '*' {
			if err := s.skipBlockComment(); err != nil {
				return Token{}, err
			}
			continue
		}
		break
	}

	if s.pos >= len(s.src) {
		at := s.cursor()
		return Token{Type: EndOfInput, Span: Span{Start: at, End: at}}, nil
	}

	start := s.cursor()
	ch := s.peek(0)

	switch {
	case isIdentStart(ch):
		return s.scanIdentifier(start), nil
	case isDigit(ch):
		return s.scanNumber(start), nil
	case ch == '"':
		return s.scanString(start)
	}

	s.advance()
	switch ch {
	case '(':
		return s.fixed(LParen, start), nil
	case ')':
		return s.fixed(RParen, start), nil
	case '{':
		return s.fixed(LBrace, start), nil
	case '}':
		return s.fixed(RBrace, start), nil

	case '<':
		// <<= before << before <
		switch {
		case s.peek(0) == '<' && s.peek(1) == '=':
			s.advance()
			s.advance()
			return s.fixed(LShiftEq, start), nil
		case s.peek(0) == '<':
			s.advance()
			return s.fixed(LShift, start), nil
		case s.peek(0) == '=':
			s.advance()
			return s.fixed(LtEq, start), nil
		}
		return s.fixed(Lt, start), nil

	case '>':
		// >>= before >> before >
		switch {
		case s.peek(0) == '>' && s.peek(1) == '=':
			s.advance()
			s.advance()
			return s.fixed(RShiftEq, start), nil
		case s.peek(0) == '>':
			s.advance()
			return s.fixed(RShift, start), nil
		case s.peek(0) == '=':
			s.advance()
			return s.fixed(GtEq, start), nil
		}
		return s.fixed(Gt, start), nil

	case '+':
		switch s.peek(0) {
		case '+':
			s.advance()
			return s.fixed(AddAdd, start), nil
		case '=':
			s.advance()
			return s.fixed(AddEq, start), nil
		}
		return s.fixed(Add, start), nil

	case '-':
		switch s.peek(0) {
		case '-':
			s.advance()
			return s.fixed(SubSub, start), nil
		case '=':
			s.advance()
			return s.fixed(SubEq, start), nil
		case '>':
			s.advance()
			return s.fixed(Arrow, start), nil
		}
		return s.fixed(Sub, start), nil

	case '*':
		if s.peek(0) == '=' {
			s.advance()
			return s.fixed(MulEq, start), nil
		}
		return s.fixed(Mul, start), nil

	case '/':
		// Comments were consumed by the skip loop, so a '/' here is
		// always the division operator or /=.
		if s.peek(0) == '=' {
			s.advance()
			return s.fixed(DivEq, start), nil
		}
		return s.fixed(Div, start), nil

	case '%':
		if s.peek(0) == '=' {
			s.advance()
			return s.fixed(ModEq, start), nil
		}
		return s.fixed(Mod, start), nil

	case '=':
		switch s.peek(0) {
		case '=':
			s.advance()
			return s.fixed(EqEq, start), nil
		case '>':
			s.advance()
			return s.fixed(FatArrow, start), nil
		}
		return s.fixed(Eq, start), nil

	case '!':
		if s.peek(0) == '=' {
			s.advance()
			return s.fixed(NotEq, start), nil
		}
		return s.fixed(Not, start), nil

	case '|':
		switch s.peek(0) {
		case '|':
			s.advance()
			return s.fixed(OrOr, start), nil
		case '=':
			s.advance()
			return s.fixed(OrEq, start), nil
		}
		return s.fixed(Or, start), nil

	case '&':
		switch s.peek(0) {
		case '&':
			s.advance()
			return s.fixed(AndAnd, start), nil
		case '=':
			s.advance()
			return s.fixed(AndEq, start), nil
		}
		return s.fixed(And, start), nil

	case '^':
		if s.peek(0) == '=' {
			s.advance()
			return s.fixed(XorEq, start), nil
		}
		return s.fixed(Xor, start), nil

	default:
		return Token{}, errors.NewUnrecognizedChar(ch, start.Row, start.Col)
	}
}

// ---------------------------------------------------------------------------
// Internal scanner methods
// ---------------------------------------------------------------------------

// peek returns the rune at position s.pos+offset, or 0 if out of bounds.
func (s *scanner) peek(offset int) rune {
	if i := s.pos + offset; i < len(s.src) {
		return s.src[i]
	}
	return 0
}

// cursor returns the position of the next rune to consume.
func (s *scanner) cursor() Pos {
	return Pos{Row: s.row, Col: s.col}
}

// advance consumes one rune, records its position in s.prev, and moves
// the row/column counters past it.
func (s *scanner) advance() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	ch := s.src[s.pos]
	s.prev = Pos{Row: s.row, Col: s.col}
	s.pos++
	if ch == '\n' {
		s.row++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

// fixed builds a token with no text payload spanning from start to the
// most recently consumed rune.
func (s *scanner) fixed(tt TokenType, start Pos) Token {
	return Token{Type: tt, Span: Span{Start: start, End: s.prev}}
}

// skipWhitespace consumes spaces, tabs, and newlines.
func (s *scanner) skipWhitespace() {
	for {
		switch s.peek(0) {
		case ' ', '\t', '\n':
			s.advance()
		default:
			return
		}
	}
}

// skipLineComment consumes "//" through the end of the line. The
// newline itself is left for skipWhitespace.
func (s *scanner) skipLineComment() {
	s.advance() // first /
	s.advance() // second /
	for s.pos < len(s.src) && s.peek(0) != '\n' {
		s.advance()
	}
}

// skipBlockComment consumes "/*" through the matching "*/". Block
// comments do not nest: the first "*/" closes the comment. Reaching
// end of input first is an error locating the opening delimiter.
func (s *scanner) skipBlockComment() error {
	open := s.cursor()
	s.advance() // /
	s.advance() // *
	for s.pos < len(s.src) {
		if s.peek(0) == '*' && s.peek(1) == '/' {
			s.advance()
			s.advance()
			return nil
		}
		s.advance()
	}
	return errors.NewUnterminatedComment(open.Row, open.Col)
}

// scanIdentifier collects [A-Za-z_][A-Za-z0-9_]*. The first character
// must still be unconsumed.
func (s *scanner) scanIdentifier(start Pos) Token {
	from := s.pos
	s.advance()
	for isIdentCont(s.peek(0)) {
		s.advance()
	}
	return Token{
		Type: Identifier,
		Text: string(s.src[from:s.pos]),
		Span: Span{Start: start, End: s.prev},
	}
}

// scanNumber collects a run of decimal digits. There is no fractional,
// exponent, or based form; a digit run followed by '.' simply ends at
// the last digit.
func (s *scanner) scanNumber(start Pos) Token {
	from := s.pos
	s.advance()
	for isDigit(s.peek(0)) {
		s.advance()
	}
	return Token{
		Type: NumLiteral,
		Text: string(s.src[from:s.pos]),
		Span: Span{Start: start, End: s.prev},
	}
}

// scanString collects a string literal. No escape processing: every
// rune between the quotes, newlines included, is payload verbatim. The
// span covers both quotes; the payload excludes them. An unclosed
// literal is an error locating the opening quote.
func (s *scanner) scanString(start Pos) (Token, error) {
	s.advance() // opening quote
	from := s.pos
	for s.pos < len(s.src) && s.peek(0) != '"' {
		s.advance()
	}
	if s.pos >= len(s.src) {
		return Token{}, errors.NewUnterminatedString(start.Row, start.Col)
	}
	text := string(s.src[from:s.pos])
	s.advance() // closing quote
	return Token{
		Type: StrLiteral,
		Text: text,
		Span: Span{Start: start, End: s.prev},
	}, nil
}

// ---------------------------------------------------------------------------
// Character predicates
// ---------------------------------------------------------------------------

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
