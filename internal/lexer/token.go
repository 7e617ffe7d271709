package lexer

import "fmt"

// Pos is a single character position in the source text.
// Rows and columns are 1-based; a newline advances the row and
// resets the column to 1.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Span is the source region a token occupies. End is the position of
// the last character belonging to the lexeme, so a single-character
// token has Start == End. The EndOfInput sentinel carries a zero-width
// span at the final cursor position.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// TokenType identifies the lexical category of a token.
type TokenType int

const (
	EndOfInput TokenType = iota // sentinel: input fully consumed

	// Payload-carrying tokens
	Identifier // [A-Za-z_][A-Za-z0-9_]*
	NumLiteral // [0-9]+
	StrLiteral // "..." (no escape sequences)

	// Delimiters
	LParen // (
	RParen // )
	LBrace // {
	RBrace // }

	// Multi-character operators
	Arrow    // ->
	FatArrow // =>
	EqEq     // ==
	LtEq     // <=
	GtEq     // >=
	AddEq    // +=
	SubEq    // -=
	MulEq    // *=
	DivEq    // /=
	ModEq    // %=
	RShiftEq // >>=
	LShiftEq // <<=
	RShift   // >>
	LShift   // <<
	NotEq    // !=
	OrEq     // |=
	AndEq    // &=
	XorEq    // ^=
	AddAdd   // ++
	SubSub   // --
	OrOr     // ||
	AndAnd   // &&

	// Single-character operators
	Eq  // =
	Lt  // <
	Gt  // >
	Add // +
	Sub // -
	Mul // *
	Div // /
	Mod // %
	Not // !
	Or  // |
	And // &
	Xor // ^
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EndOfInput: "EndOfInput",
	Identifier: "Identifier",
	NumLiteral: "NumLiteral",
	StrLiteral: "StrLiteral",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Arrow:      "Arrow",
	FatArrow:   "FatArrow",
	EqEq:       "EqEq",
	LtEq:       "LtEq",
	GtEq:       "GtEq",
	AddEq:      "AddEq",
	SubEq:      "SubEq",
	MulEq:      "MulEq",
	DivEq:      "DivEq",
	ModEq:      "ModEq",
	RShiftEq:   "RShiftEq",
	LShiftEq:   "LShiftEq",
	RShift:     "RShift",
	LShift:     "LShift",
	NotEq:      "NotEq",
	OrEq:       "OrEq",
	AndEq:      "AndEq",
	XorEq:      "XorEq",
	AddAdd:     "AddAdd",
	SubSub:     "SubSub",
	OrOr:       "OrOr",
	AndAnd:     "AndAnd",
	Eq:         "Eq",
	Lt:         "Lt",
	Gt:         "Gt",
	Add:        "Add",
	Sub:        "Sub",
	Mul:        "Mul",
	Div:        "Div",
	Mod:        "Mod",
	Not:        "Not",
	Or:         "Or",
	And:        "And",
	Xor:        "Xor",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// tokenLexemes maps fixed-shape token types to their source text.
// Payload-carrying tokens and the sentinel are absent; their source
// text lives in Token.Text (or is empty for EndOfInput).
var tokenLexemes = map[TokenType]string{
	LParen:   "(",
	RParen:   ")",
	LBrace:   "{",
	RBrace:   "}",
	Arrow:    "->",
	FatArrow: "=>",
	EqEq:     "==",
	LtEq:     "<=",
	GtEq:     ">=",
	AddEq:    "+=",
	SubEq:    "-=",
	MulEq:    "*=",
	DivEq:    "/=",
	ModEq:    "%=",
	RShiftEq: ">>=",
	LShiftEq: "<<=",
	RShift:   ">>",
	LShift:   "<<",
	NotEq:    "!=",
	OrEq:     "|=",
	AndEq:    "&=",
	XorEq:    "^=",
	AddAdd:   "++",
	SubSub:   "--",
	OrOr:     "||",
	AndAnd:   "&&",
	Eq:       "=",
	Lt:       "<",
	Gt:       ">",
	Add:      "+",
	Sub:      "-",
	Mul:      "*",
	Div:      "/",
	Mod:      "%",
	Not:      "!",
	Or:       "|",
	And:      "&",
	Xor:      "^",
}

// Token is a single lexical unit produced by Tokenize.
//
// Text carries the decoded payload for Identifier, NumLiteral, and
// StrLiteral (for StrLiteral the interior without the quotes); it is
// empty for fixed-shape tokens, whose source text is recoverable via
// Lexeme.
type Token struct {
	Type TokenType
	Text string
	Span Span
}

// Lexeme returns the source text of the token: the payload for
// identifiers and number literals, the quoted form for string
// literals, the fixed spelling for operators and delimiters, and the
// empty string for EndOfInput.
func (t Token) Lexeme() string {
	switch t.Type {
	case Identifier, NumLiteral:
		return t.Text
	case StrLiteral:
		return `"` + t.Text + `"`
	case EndOfInput:
		return ""
	default:
		return tokenLexemes[t.Type]
	}
}

func (t Token) String() string {
	if t.Text != "" {
		return fmt.Sprintf("%s %s %q", t.Span, t.Type, t.Text)
	}
	return fmt.Sprintf("%s %s", t.Span, t.Type)
}
