// File: doc.go
// Title: monk Parser Package Documentation
// Description: Documents the monk grammar, the backtracking discipline and the
//              two-stack expression engine.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial documentation
// - 2026-10-15 v0.1.1: Document let error reporting and brace-aware recovery

/*
Package parser turns a monk token sequence into an Abstract Syntax Tree.

# Grammar

	Stmt     = Expr
	         | "let" Ident [Type] "=" Expr
	         | "let" Ident "(" { Ident [Type] "," } ")" [Type] Expr
	         | "if" Expr Stmt [ "else" Stmt ]
	         | "for" Expr Stmt
	         | "while" Expr Stmt
	         | "match" Expr "{" Case { "," Case } [","] "}"
	Case     = Expr "->" Expr
	Type     = ":" ( "String" | "Int" | "Float" )
	Expr     = Primary { Op Primary }
	Primary  = Int | Float | String | Ident
	         | Ident "(" [ Expr { "," Expr } [","] ] ")"
	         | "{" { Stmt } "}"

Both declaration forms start with "let". The parser tries the variable form
first and, when it fails, rewinds the cursor and tries the function form;
only the second error is reported. Any failure inside a variable's value,
including a nesting limit or an invalid literal, therefore surfaces as the
function form's "expected LEFT_BRACE, found EQ". Type annotations are parsed the same way
and are simply absent when the attempt fails.

# Operator precedence

Expressions are folded with an operand stack and an operator stack. "*" and
"/" combine with the top operand as soon as their right operand is read.
Every other operator is pushed and the stack is drained from the top once the
chain ends, so

	a + b * c   =>  (+ a (* b c))
	a * b + c   =>  (+ (* a b) c)
	a + b - c   =>  (+ a (- b c))

Chains of additive and comparison operators therefore group to the right.

# Usage

	prog, err := parser.Parse("let x = 1 + 2")

	p := parser.New(tokens, parser.WithMaxDepth(64))
	prog, errs := p.ParseAll()

ParseProgram stops at the first error. ParseAll records one error per failed
statement and resumes at the next let, if, for, while or match keyword that
is not nested inside braces opened by the failed statement.
*/
package parser
