// File: errors.go
// Title: monk Parse Errors
// Description: Error taxonomy returned by the monk parser. Every grammar
//              deviation and every broken engine invariant is reported as an
//              *Error value; the parser never panics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial error taxonomy

package parser

import (
	"errors"
	"fmt"

	monktoken "github.com/msto63/monk/foundation/lang/token"
)

// ErrUnexpectedEOF matches (via errors.Is) any parse error caused by running
// out of tokens
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrorKind classifies a parse error
type ErrorKind int

const (
	// ExpectedToken: the grammar required a specific kind and found another one or end of input
	ExpectedToken ErrorKind = iota
	// UnexpectedToken: a token is present but not valid at this position
	UnexpectedToken
	// UnexpectedEndOfInput: input ended where a construct was required
	UnexpectedEndOfInput
	// InvalidLiteral: a literal token could not be converted to its value
	InvalidLiteral
	// Internal: the expression engine ended in an inconsistent state
	Internal
	// TooDeep: nesting exceeded the configured limit
	TooDeep
)

// String returns string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case ExpectedToken:
		return "expected token"
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case InvalidLiteral:
		return "invalid literal"
	case Internal:
		return "internal error"
	case TooDeep:
		return "nesting too deep"
	default:
		return "unknown"
	}
}

// Error is a parse failure. Context names the construct being parsed.
type Error struct {
	Kind     ErrorKind
	Context  string
	Expected monktoken.Kind   // Set for ExpectedToken
	Found    *monktoken.Token // nil means end of input
	Message  string           // Extra detail for InvalidLiteral, Internal and TooDeep
	Err      error            // Underlying conversion error, if any
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case ExpectedToken:
		msg = fmt.Sprintf("expected %s, found %s", e.Expected, describe(e.Found))
	case UnexpectedToken:
		msg = fmt.Sprintf("unexpected %s", describe(e.Found))
	case UnexpectedEndOfInput:
		msg = "unexpected end of input"
	case InvalidLiteral:
		msg = fmt.Sprintf("invalid literal %s", describe(e.Found))
		if e.Message != "" {
			msg += ": " + e.Message
		}
	default:
		msg = e.Message
	}

	if e.Found != nil {
		return fmt.Sprintf("parse error in %s at offset %d: %s", e.Context, e.Found.Offset, msg)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Context, msg)
}

// Unwrap returns the underlying conversion error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports end-of-input failures as ErrUnexpectedEOF
func (e *Error) Is(target error) bool {
	if target != ErrUnexpectedEOF {
		return false
	}
	switch e.Kind {
	case UnexpectedEndOfInput:
		return true
	case ExpectedToken, UnexpectedToken:
		return e.Found == nil
	default:
		return false
	}
}

func describe(tok *monktoken.Token) string {
	if tok == nil {
		return "end of input"
	}
	return tok.String()
}

func expectedError(context string, expected monktoken.Kind, found *monktoken.Token) *Error {
	return &Error{Kind: ExpectedToken, Context: context, Expected: expected, Found: found}
}

func unexpectedError(context string, found monktoken.Token) *Error {
	return &Error{Kind: UnexpectedToken, Context: context, Found: &found}
}

func eofError(context string) *Error {
	return &Error{Kind: UnexpectedEndOfInput, Context: context}
}

func internalError(context, format string, args ...interface{}) *Error {
	return &Error{Kind: Internal, Context: context, Message: fmt.Sprintf(format, args...)}
}
