// File: token.go
// Title: monk Token Definitions
// Description: Defines the closed set of token kinds produced by the monk
//              tokenizer, the operator parameter carried by operator tokens,
//              and keyword lookup for identifier-shaped lexemes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial token model

package token

import (
	"fmt"
)

// Kind represents the category of a lexical token
type Kind int

const (
	// Literals
	Int        Kind = iota // 10
	Float                  // 10.5
	String                 // "text"
	Identifier             // name

	// Punctuation
	Comma        // ,
	Colon        // :
	LeftBrace    // (
	RightBrace   // )
	LeftBracket  // [
	RightBracket // ]
	LeftCurly    // {
	RightCurly   // }
	RightArrow   // ->
	LeftArrow    // -<

	// Keywords
	Let
	If
	Else
	For
	While
	Match

	// Assignment
	Eq // =

	// Op is a binary operator; the concrete operator is in Token.Op
	Op
)

// Operator identifies the operator carried by an Op token
type Operator int

const (
	NoOperator Operator = iota
	Add                 // +
	Sub                 // -
	Mul                 // *
	Div                 // /
	EqEq                // ==
	Less                // <
	LessEq              // <=
	More                // >
	MoreEq              // >=
)

var kindNames = map[Kind]string{
	Int:          "INT",
	Float:        "FLOAT",
	String:       "STRING",
	Identifier:   "IDENTIFIER",
	Comma:        "COMMA",
	Colon:        "COLON",
	LeftBrace:    "LEFT_BRACE",
	RightBrace:   "RIGHT_BRACE",
	LeftBracket:  "LEFT_BRACKET",
	RightBracket: "RIGHT_BRACKET",
	LeftCurly:    "LEFT_CURLY",
	RightCurly:   "RIGHT_CURLY",
	RightArrow:   "RIGHT_ARROW",
	LeftArrow:    "LEFT_ARROW",
	Let:          "LET",
	If:           "IF",
	Else:         "ELSE",
	For:          "FOR",
	While:        "WHILE",
	Match:        "MATCH",
	Eq:           "EQ",
	Op:           "OP",
}

// String returns a string representation of the token kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsLiteral reports whether tokens of this kind carry a literal value
func (k Kind) IsLiteral() bool {
	return k == Int || k == Float || k == String || k == Identifier
}

// IsKeyword reports whether the kind is one of the reserved words
func (k Kind) IsKeyword() bool {
	return k >= Let && k <= Match
}

// String returns the source symbol of the operator
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case EqEq:
		return "=="
	case Less:
		return "<"
	case LessEq:
		return "<="
	case More:
		return ">"
	case MoreEq:
		return ">="
	default:
		return "?"
	}
}

// Token is a single lexeme with its kind. Tokens are plain values and are
// never mutated after the lexer emits them.
type Token struct {
	Kind   Kind     // Token category
	Op     Operator // Operator, set only when Kind == Op
	Text   string   // Exact lexeme
	Offset int      // Rune offset of the first character
}

// New creates a token of the given kind
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// NewOp creates an operator token
func NewOp(op Operator, text string) Token {
	return Token{Kind: Op, Op: op, Text: text}
}

// Is reports whether the token has the given kind
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// Equal compares kind, operator and text. Offsets are ignored.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Op == other.Op && t.Text == other.Text
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Kind == Op {
		return fmt.Sprintf("OP(%s)", t.Op)
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// keywords maps reserved words to their token kinds
var keywords = map[string]Kind{
	"let":   Let,
	"if":    If,
	"else":  Else,
	"for":   For,
	"while": While,
	"match": Match,
}

// Lookup returns the keyword kind for ident, or Identifier
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// KeywordOrIdentifier builds a keyword or identifier token from an identifier-shaped lexeme
func KeywordOrIdentifier(text string) Token {
	return New(Lookup(text), text)
}
