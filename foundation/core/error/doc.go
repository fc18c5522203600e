// Package error provides coded, structured errors for the monk front end.
//
// Package: error
// Title: monk Error Handling
// Description: Wraps lexer, parser, input and configuration failures with an
//              error code, a severity, the failing operation and a
//              correlation ID, keeping the original error reachable through
//              errors.As and errors.Is.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Usage:
//
//	import monkerror "github.com/msto63/monk/foundation/core/error"
//
//	err := monkerror.Wrap(lexErr, "tokenize failed").
//		WithCode(monkerror.CodeLexical).
//		WithOperation("tokenize").
//		WithDetail("unit", "main")
//
//	if monkerror.HasCode(err, monkerror.CodeLexical) {
//		// report a source problem
//	}
package error
