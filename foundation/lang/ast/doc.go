// File: doc.go
// Title: monk Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes produced by the monk
//              parser, with visitor, traversal and export utilities.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for monk programs.

A Program is an ordered list of statements. Statements and expressions are
interfaces implemented by pointer node types:

  • Statements: LetStmt, FuncStmt, ForStmt, WhileStmt, MatchStmt, IfStmt, ExprStmt
  • Expressions: LiteralExpr, CallExpr, BinaryExpr, BlockExpr

Every node owns its children exclusively; the tree is built bottom-up by the
parser and handed to the caller as a whole. String returns a parenthesized
prefix form, for example "let x = a + b * c" prints as

	(let x (+ a (* b c)))
*/
package ast
