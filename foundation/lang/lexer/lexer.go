// File: lexer.go
// Title: monk Lexical Analyzer (Tokenizer)
// Description: Character-driven finite-state tokenizer for monk source text.
//              Multi-character operators are disambiguated by re-feeding the
//              character that ended a pending token back into the machine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial state machine implementation

package lexer

import (
	"fmt"
	"strings"

	monktoken "github.com/msto63/monk/foundation/lang/token"
)

// state is the tokenizer's current mode. Every state other than looking
// holds a partially read token whose tentative kind the state names.
type state int

const (
	looking state = iota
	pendingEqEq
	pendingMoreEq
	pendingLessEq
	pendingSub
	pendingString
	pendingInt
	pendingFloat
	pendingIdentifier
)

// Error reports a character that has no valid transition, or input that
// ends inside a string literal
type Error struct {
	Char   rune   // Offending character
	Offset int    // Rune offset in input (0-based)
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
	Reason string // What went wrong
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s %q", e.Line, e.Column, e.Reason, e.Char)
}

// Lexer converts a complete input text into tokens
type Lexer struct {
	input  []rune
	state  state
	buffer strings.Builder
	start  int // Offset of the first buffered character
	tokens []monktoken.Token
}

// New creates a lexer over the given input
func New(input string) *Lexer {
	return &Lexer{
		input: []rune(input),
		state: looking,
	}
}

// Lex runs the state machine over the whole input and returns the tokens in
// source order. A Lexer is single use.
func (l *Lexer) Lex() ([]monktoken.Token, error) {
	for pos := 0; pos < len(l.input); {
		reconsume, err := l.step(l.input[pos], pos)
		if err != nil {
			return nil, err
		}
		// A reconsumed character is fed again from the looking state,
		// which never asks for another reconsume.
		if !reconsume {
			pos++
		}
	}

	if err := l.flush(); err != nil {
		return nil, err
	}
	if l.tokens == nil {
		return []monktoken.Token{}, nil
	}
	return l.tokens, nil
}

// step feeds one character into the machine. It reports reconsume=true
// when the character terminated a pending token without being part of it.
func (l *Lexer) step(ch rune, pos int) (reconsume bool, err error) {
	switch l.state {
	case looking:
		return false, l.look(ch, pos)

	case pendingEqEq:
		if ch == '=' {
			l.buffer.WriteRune(ch)
			l.emitOp(monktoken.EqEq)
			return false, nil
		}
		l.emit(monktoken.Eq)
		return true, nil

	case pendingMoreEq:
		if ch == '=' {
			l.buffer.WriteRune(ch)
			l.emitOp(monktoken.MoreEq)
			return false, nil
		}
		l.emitOp(monktoken.More)
		return true, nil

	case pendingLessEq:
		if ch == '=' {
			l.buffer.WriteRune(ch)
			l.emitOp(monktoken.LessEq)
			return false, nil
		}
		l.emitOp(monktoken.Less)
		return true, nil

	case pendingSub:
		switch ch {
		case '>':
			l.buffer.WriteRune(ch)
			l.emit(monktoken.RightArrow)
			return false, nil
		case '<':
			l.buffer.WriteRune(ch)
			l.emit(monktoken.LeftArrow)
			return false, nil
		}
		l.emitOp(monktoken.Sub)
		return true, nil

	case pendingString:
		l.buffer.WriteRune(ch)
		if ch == '"' {
			l.emit(monktoken.String)
		}
		return false, nil

	case pendingInt:
		switch {
		case isDigit(ch):
			l.buffer.WriteRune(ch)
			return false, nil
		case ch == '.':
			l.buffer.WriteRune(ch)
			l.state = pendingFloat
			return false, nil
		}
		l.emit(monktoken.Int)
		return true, nil

	case pendingFloat:
		if isDigit(ch) {
			l.buffer.WriteRune(ch)
			return false, nil
		}
		l.emit(monktoken.Float)
		return true, nil

	case pendingIdentifier:
		if isLetter(ch) || isDigit(ch) {
			l.buffer.WriteRune(ch)
			return false, nil
		}
		l.emitToken(monktoken.KeywordOrIdentifier(l.buffer.String()))
		return true, nil
	}

	return false, l.errorAt(ch, pos, "invalid lexer state for character")
}

// look handles a character while no token is pending
func (l *Lexer) look(ch rune, pos int) error {
	if isWhitespace(ch) {
		return nil
	}

	if kind, op, ok := single(ch); ok {
		l.begin(pos, looking)
		l.buffer.WriteRune(ch)
		if kind == monktoken.Op {
			l.emitOp(op)
		} else {
			l.emit(kind)
		}
		return nil
	}

	var next state
	switch {
	case ch == '=':
		next = pendingEqEq
	case ch == '>':
		next = pendingMoreEq
	case ch == '<':
		next = pendingLessEq
	case ch == '-':
		next = pendingSub
	case ch == '"':
		next = pendingString
	case isDigit(ch):
		next = pendingInt
	case isLetter(ch):
		next = pendingIdentifier
	default:
		return l.errorAt(ch, pos, "unexpected character")
	}

	l.begin(pos, next)
	l.buffer.WriteRune(ch)
	return nil
}

// flush emits whatever token is pending once the input is exhausted
func (l *Lexer) flush() error {
	switch l.state {
	case looking:
		return nil
	case pendingString:
		return l.errorAt('"', l.start, "unterminated string literal")
	case pendingEqEq:
		l.emit(monktoken.Eq)
	case pendingMoreEq:
		l.emitOp(monktoken.More)
	case pendingLessEq:
		l.emitOp(monktoken.Less)
	case pendingSub:
		l.emitOp(monktoken.Sub)
	case pendingInt:
		l.emit(monktoken.Int)
	case pendingFloat:
		l.emit(monktoken.Float)
	case pendingIdentifier:
		l.emitToken(monktoken.KeywordOrIdentifier(l.buffer.String()))
	}
	return nil
}

func (l *Lexer) begin(pos int, next state) {
	l.start = pos
	l.state = next
}

func (l *Lexer) emit(kind monktoken.Kind) {
	l.emitToken(monktoken.New(kind, l.buffer.String()))
}

func (l *Lexer) emitOp(op monktoken.Operator) {
	l.emitToken(monktoken.NewOp(op, l.buffer.String()))
}

// emitToken appends the token, clears the buffer and returns to looking
func (l *Lexer) emitToken(tok monktoken.Token) {
	tok.Offset = l.start
	l.tokens = append(l.tokens, tok)
	l.buffer.Reset()
	l.state = looking
}

// errorAt builds a lex error with line and column computed from the offset
func (l *Lexer) errorAt(ch rune, pos int, reason string) *Error {
	line, column := 1, 1
	for _, r := range l.input[:pos] {
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return &Error{
		Char:   ch,
		Offset: pos,
		Line:   line,
		Column: column,
		Reason: reason,
	}
}

// single maps single-character tokens to their kind
func single(ch rune) (monktoken.Kind, monktoken.Operator, bool) {
	switch ch {
	case ',':
		return monktoken.Comma, monktoken.NoOperator, true
	case ':':
		return monktoken.Colon, monktoken.NoOperator, true
	case '+':
		return monktoken.Op, monktoken.Add, true
	case '*':
		return monktoken.Op, monktoken.Mul, true
	case '/':
		return monktoken.Op, monktoken.Div, true
	case '[':
		return monktoken.LeftBracket, monktoken.NoOperator, true
	case ']':
		return monktoken.RightBracket, monktoken.NoOperator, true
	case '{':
		return monktoken.LeftCurly, monktoken.NoOperator, true
	case '}':
		return monktoken.RightCurly, monktoken.NoOperator, true
	case '(':
		return monktoken.LeftBrace, monktoken.NoOperator, true
	case ')':
		return monktoken.RightBrace, monktoken.NoOperator, true
	}
	return 0, monktoken.NoOperator, false
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// Tokenize is a convenience function that tokenizes input and returns tokens or error
func Tokenize(input string) ([]monktoken.Token, error) {
	return New(input).Lex()
}
