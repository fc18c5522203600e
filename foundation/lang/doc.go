// Package lang is the front end of the monk language.
//
// Package: lang
// Title: monk Language Front End
// Description: Wires the monk tokenizer and parser into an Engine with input
//              limits, coded errors, correlation IDs, structured logging and
//              concurrent batch parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Subpackages:
//   - token:  token kinds, operators and the keyword table
//   - lexer:  character-level state machine producing tokens
//   - ast:    syntax tree nodes, printing, visitors and export
//   - parser: recursive descent parser with a two-stack precedence engine
//
// Errors leaving the Engine are *error.Error values from core/error with one
// of the codes LEXICAL, SYNTAX, INVALID_INPUT, NOT_FOUND, INTERNAL or
// CANCELED. The lexer or parser error stays reachable with errors.As.
//
// Usage:
//
//	engine, err := lang.New(lang.Options{Logger: logger, Recover: true})
//	if err != nil {
//		return err
//	}
//
//	result, err := engine.Parse(lang.Unit{Name: "main", Text: source})
//	if err != nil {
//		return err // nothing could be parsed
//	}
//	for _, e := range result.Errors {
//		fmt.Println(e) // one per failed statement
//	}
//	fmt.Println(result.Program)
//
//	results, err := engine.ParseFiles(ctx, paths)
package lang
