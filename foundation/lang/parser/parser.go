// File: parser.go
// Title: monk Recursive Descent Parser
// Description: Converts a monk token sequence into an Abstract Syntax Tree.
//              Statements are parsed by recursive descent over a single
//              cursor with snapshot/restore backtracking; binary expressions
//              are folded by a two-stack precedence engine.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial parser implementation
// - 2026-10-15 v0.1.1: Brace-aware resynchronization in ParseAll

package parser

import (
	"fmt"
	"strconv"

	monklog "github.com/msto63/monk/foundation/core/log"
	monkast "github.com/msto63/monk/foundation/lang/ast"
	monklexer "github.com/msto63/monk/foundation/lang/lexer"
	monktoken "github.com/msto63/monk/foundation/lang/token"
)

// DefaultMaxDepth is the nesting limit used when none is configured
const DefaultMaxDepth = 256

// Parser holds a token sequence and a cursor into it
type Parser struct {
	tokens   []monktoken.Token
	pos      int // Index of the next unconsumed token
	depth    int // Current nesting of statements and primaries
	maxDepth int
	logger   *monklog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used for trace output
func WithLogger(logger *monklog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMaxDepth limits how deeply blocks, bodies and calls may nest.
// Values below one keep the default.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// New creates a parser over tokens
func New(tokens []monktoken.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
		logger:   monklog.GetDefault(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.WithField("component", "monk-parser")
	return p
}

// Parse tokenizes and parses text, stopping at the first error
func Parse(text string, opts ...Option) (*monkast.Program, error) {
	tokens, err := monklexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return New(tokens, opts...).ParseProgram()
}

// More reports whether unconsumed tokens remain
func (p *Parser) More() bool {
	return p.pos < len(p.tokens)
}

// ParseProgram parses every remaining statement and stops at the first error
func (p *Parser) ParseProgram() (*monkast.Program, error) {
	prog := &monkast.Program{Stmts: make([]monkast.Stmt, 0)}
	for p.More() {
		stmt, err := p.ParseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}

// ParseAll parses every remaining statement. A failed statement contributes
// one error and parsing resumes at the next statement keyword.
func (p *Parser) ParseAll() (*monkast.Program, []error) {
	prog := &monkast.Program{Stmts: make([]monkast.Stmt, 0)}
	var errs []error

	for p.More() {
		start := p.pos
		stmt, err := p.ParseStmt()
		if err != nil {
			errs = append(errs, err)
			p.synchronize(start)
			continue
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, errs
}

// synchronize skips past a failed statement that began at start. Keywords
// inside braces opened by that statement belong to it and are skipped too.
func (p *Parser) synchronize(start int) {
	depth := 0
	p.pos = start
	for ; p.More(); p.pos++ {
		kind := p.tokens[p.pos].Kind
		if p.pos > start && depth == 0 && isStatementKeyword(kind) {
			break
		}
		switch kind {
		case monktoken.LeftCurly:
			depth++
		case monktoken.RightCurly:
			if depth > 0 {
				depth--
			}
		}
	}
	p.logger.Trace("Resynchronized after parse error", monklog.Fields{
		"from": start,
		"to":   p.pos,
	})
}

func isStatementKeyword(kind monktoken.Kind) bool {
	switch kind {
	case monktoken.Let, monktoken.If, monktoken.For, monktoken.While, monktoken.Match:
		return true
	default:
		return false
	}
}

// Cursor

func (p *Parser) peek() (monktoken.Token, bool) {
	if p.pos >= len(p.tokens) {
		return monktoken.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (monktoken.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// peekIs reports whether the next token has the given kind
func (p *Parser) peekIs(kind monktoken.Kind) bool {
	tok, ok := p.peek()
	return ok && tok.Is(kind)
}

// expect consumes the next token if it has the given kind. A mismatched
// token is left in place.
func (p *Parser) expect(kind monktoken.Kind, context string) (monktoken.Token, error) {
	tok, ok := p.peek()
	if !ok {
		return tok, expectedError(context, kind, nil)
	}
	if tok.Kind != kind {
		return tok, expectedError(context, kind, &tok)
	}
	p.pos++
	return tok, nil
}

// attempt runs fn and restores the cursor if it fails
func attempt[T any](p *Parser, context string, fn func() (T, error)) (T, error) {
	saved := p.pos
	result, err := fn()
	if err != nil {
		p.logger.Trace("Backtracking", monklog.Fields{
			"context":  context,
			"position": saved,
			"error":    err.Error(),
		})
		p.pos = saved
	}
	return result, err
}

// either tries a, then b from the same position. Only b's error is returned.
func either[T any](p *Parser, context string, a, b func() (T, error)) (T, error) {
	if result, err := attempt(p, context, a); err == nil {
		return result, nil
	}
	return b()
}

// enter tracks nesting depth; callers must defer leave when err is nil
func (p *Parser) enter(context string) error {
	if p.depth >= p.maxDepth {
		return &Error{
			Kind:    TooDeep,
			Context: context,
			Message: fmt.Sprintf("nesting exceeds %d levels", p.maxDepth),
		}
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// Statements

// ParseStmt parses one statement starting at the cursor
func (p *Parser) ParseStmt() (monkast.Stmt, error) {
	if err := p.enter("statement"); err != nil {
		return nil, err
	}
	defer p.leave()

	tok, ok := p.peek()
	if !ok {
		return nil, eofError("statement")
	}

	switch tok.Kind {
	case monktoken.Int, monktoken.Float, monktoken.String, monktoken.Identifier, monktoken.LeftCurly:
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &monkast.ExprStmt{X: expr}, nil
	case monktoken.Let:
		return either(p, "variable declaration", p.variable, p.function)
	case monktoken.If:
		return p.ifStmt()
	case monktoken.For:
		return p.forStmt()
	case monktoken.While:
		return p.whileStmt()
	case monktoken.Match:
		return p.matchStmt()
	default:
		return nil, unexpectedError("statement", tok)
	}
}

// variable parses: let Ident [: Type] = Expr
func (p *Parser) variable() (monkast.Stmt, error) {
	const context = "variable declaration"

	if _, err := p.expect(monktoken.Let, context); err != nil {
		return nil, err
	}
	name, err := p.expect(monktoken.Identifier, context)
	if err != nil {
		return nil, err
	}
	typ := p.optionalType()
	if _, err := p.expect(monktoken.Eq, context); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	return &monkast.LetStmt{Name: name.Text, Type: typ, Value: value}, nil
}

// function parses: let Ident ( Params ) [: Type] Expr
func (p *Parser) function() (monkast.Stmt, error) {
	const context = "function declaration"

	if _, err := p.expect(monktoken.Let, context); err != nil {
		return nil, err
	}
	name, err := p.expect(monktoken.Identifier, context)
	if err != nil {
		return nil, err
	}
	params, err := p.params()
	if err != nil {
		return nil, err
	}
	ret := p.optionalType()
	body, err := p.expression()
	if err != nil {
		return nil, err
	}

	return &monkast.FuncStmt{Name: name.Text, Params: params, ReturnType: ret, Body: body}, nil
}

// params parses ( (Ident [: Type] ,)* ). Every parameter is followed by a
// comma before the closing brace may appear.
func (p *Parser) params() (monkast.Params, error) {
	const context = "parameter list"

	if _, err := p.expect(monktoken.LeftBrace, context); err != nil {
		return nil, err
	}

	params := monkast.Params{}
	for {
		if p.peekIs(monktoken.RightBrace) {
			p.pos++
			return params, nil
		}
		name, err := p.expect(monktoken.Identifier, context)
		if err != nil {
			return nil, err
		}
		typ := p.optionalType()
		if _, err := p.expect(monktoken.Comma, context); err != nil {
			return nil, err
		}
		params = append(params, monkast.Param{Name: name.Text, Type: typ})
	}
}

// optionalType speculatively parses a type annotation; absence is legal
func (p *Parser) optionalType() *monkast.Type {
	typ, err := attempt(p, "type annotation", p.typeAnnotation)
	if err != nil {
		return nil
	}
	return typ
}

// typeAnnotation parses : (String|Int|Float)
func (p *Parser) typeAnnotation() (*monkast.Type, error) {
	const context = "type annotation"

	if _, err := p.expect(monktoken.Colon, context); err != nil {
		return nil, err
	}
	name, err := p.expect(monktoken.Identifier, context)
	if err != nil {
		return nil, err
	}
	typ, ok := monkast.ParseType(name.Text)
	if !ok {
		return nil, unexpectedError(context, name)
	}
	return monkast.TypeOf(typ), nil
}

// ifStmt parses: if Expr Stmt [else Stmt]
func (p *Parser) ifStmt() (monkast.Stmt, error) {
	const context = "if statement"

	if _, err := p.expect(monktoken.If, context); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.ParseStmt()
	if err != nil {
		return nil, err
	}

	stmt := &monkast.IfStmt{Cond: cond, Then: then}
	if p.peekIs(monktoken.Else) {
		p.pos++
		stmt.Else, err = p.ParseStmt()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// loop parses the shared shape of for and while: keyword Expr Stmt
func (p *Parser) loop(keyword monktoken.Kind, context string) (monkast.Expr, monkast.Stmt, error) {
	if _, err := p.expect(keyword, context); err != nil {
		return nil, nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, nil, err
	}
	body, err := p.ParseStmt()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

func (p *Parser) forStmt() (monkast.Stmt, error) {
	cond, body, err := p.loop(monktoken.For, "for statement")
	if err != nil {
		return nil, err
	}
	return &monkast.ForStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) whileStmt() (monkast.Stmt, error) {
	cond, body, err := p.loop(monktoken.While, "while statement")
	if err != nil {
		return nil, err
	}
	return &monkast.WhileStmt{Cond: cond, Body: body}, nil
}

// matchStmt parses: match Expr { Expr -> Expr (, Expr -> Expr)* [,] }
func (p *Parser) matchStmt() (monkast.Stmt, error) {
	const context = "match statement"

	if _, err := p.expect(monktoken.Match, context); err != nil {
		return nil, err
	}
	subject, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(monktoken.LeftCurly, context); err != nil {
		return nil, err
	}

	cases := monkast.Cases{}
	for {
		c, err := p.matchCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)

		if p.peekIs(monktoken.Comma) {
			p.pos++
		} else if !p.peekIs(monktoken.RightCurly) {
			tok, ok := p.peek()
			if !ok {
				return nil, expectedError(context, monktoken.RightCurly, nil)
			}
			return nil, expectedError(context, monktoken.RightCurly, &tok)
		}
		if p.peekIs(monktoken.RightCurly) {
			p.pos++
			return &monkast.MatchStmt{Subject: subject, Cases: cases}, nil
		}
	}
}

func (p *Parser) matchCase() (monkast.Case, error) {
	pattern, err := p.expression()
	if err != nil {
		return monkast.Case{}, err
	}
	if _, err := p.expect(monktoken.RightArrow, "match case"); err != nil {
		return monkast.Case{}, err
	}
	result, err := p.expression()
	if err != nil {
		return monkast.Case{}, err
	}
	return monkast.Case{Pattern: pattern, Result: result}, nil
}

// Expressions

// expression parses a primary followed by (Op primary)* and folds the chain
// with two stacks. Mul and Div fold into the top operand at once; all other
// operators wait on the operator stack and are drained from the most recent
// end, so a chain of them associates to the right.
func (p *Parser) expression() (monkast.Expr, error) {
	const context = "expression"

	first, err := p.primary()
	if err != nil {
		return nil, err
	}
	operands := []monkast.Expr{first}
	var operators []monkast.Operation

	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != monktoken.Op {
			break
		}
		p.pos++

		op, err := operationOf(tok)
		if err != nil {
			return nil, err
		}
		right, err := p.primary()
		if err != nil {
			return nil, err
		}

		if op.IsMultiplicative() {
			top := len(operands) - 1
			operands[top] = &monkast.BinaryExpr{Left: operands[top], Op: op, Right: right}
			continue
		}
		operators = append(operators, op)
		operands = append(operands, right)
	}

	for len(operators) > 0 {
		if len(operands) < 2 {
			return nil, internalError(context, "%d operators left with %d operands", len(operators), len(operands))
		}
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]

		n := len(operands)
		folded := &monkast.BinaryExpr{Left: operands[n-2], Op: op, Right: operands[n-1]}
		operands = append(operands[:n-2], folded)
	}

	if len(operands) != 1 {
		return nil, internalError(context, "%d operands left after folding", len(operands))
	}
	return operands[0], nil
}

// operationOf maps an operator token to its AST operation
func operationOf(tok monktoken.Token) (monkast.Operation, error) {
	switch tok.Op {
	case monktoken.Add:
		return monkast.OpAdd, nil
	case monktoken.Sub:
		return monkast.OpSub, nil
	case monktoken.Mul:
		return monkast.OpMul, nil
	case monktoken.Div:
		return monkast.OpDiv, nil
	case monktoken.EqEq:
		return monkast.OpEqual, nil
	case monktoken.Less:
		return monkast.OpLess, nil
	case monktoken.LessEq:
		return monkast.OpLessOrEqual, nil
	case monktoken.More:
		return monkast.OpGreater, nil
	case monktoken.MoreEq:
		return monkast.OpGreaterOrEqual, nil
	default:
		return 0, unexpectedError("expression", tok)
	}
}

// primary parses a literal, an identifier, a call or a block
func (p *Parser) primary() (monkast.Expr, error) {
	const context = "expression"

	if err := p.enter(context); err != nil {
		return nil, err
	}
	defer p.leave()

	tok, ok := p.peek()
	if !ok {
		return nil, eofError(context)
	}

	switch tok.Kind {
	case monktoken.Identifier:
		p.pos++
		if p.peekIs(monktoken.LeftBrace) {
			return p.call(tok)
		}
		return &monkast.LiteralExpr{Value: monkast.Ident(tok.Text)}, nil
	case monktoken.Int, monktoken.Float, monktoken.String:
		p.pos++
		value, err := literal(tok)
		if err != nil {
			return nil, err
		}
		return &monkast.LiteralExpr{Value: value}, nil
	case monktoken.LeftCurly:
		return p.block()
	default:
		return nil, unexpectedError(context, tok)
	}
}

// call parses the argument list after a callee name: ( [Expr (, Expr)* [,]] )
func (p *Parser) call(name monktoken.Token) (monkast.Expr, error) {
	const context = "call arguments"

	if _, err := p.expect(monktoken.LeftBrace, context); err != nil {
		return nil, err
	}

	call := &monkast.CallExpr{Name: name.Text, Args: []monkast.Expr{}}
	for {
		if p.peekIs(monktoken.RightBrace) {
			p.pos++
			return call, nil
		}
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		if p.peekIs(monktoken.Comma) {
			p.pos++
			continue
		}
		if _, err := p.expect(monktoken.RightBrace, context); err != nil {
			return nil, err
		}
		return call, nil
	}
}

// block parses { Stmt* }
func (p *Parser) block() (monkast.Expr, error) {
	const context = "block"

	if _, err := p.expect(monktoken.LeftCurly, context); err != nil {
		return nil, err
	}

	block := &monkast.BlockExpr{Stmts: []monkast.Stmt{}}
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, expectedError(context, monktoken.RightCurly, nil)
		}
		if tok.Kind == monktoken.RightCurly {
			p.pos++
			return block, nil
		}
		stmt, err := p.ParseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
}

// literal converts a literal token's text to its value
func literal(tok monktoken.Token) (monkast.Value, error) {
	switch tok.Kind {
	case monktoken.Int:
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return monkast.Value{}, invalidLiteral(tok, err)
		}
		return monkast.Int(v), nil
	case monktoken.Float:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return monkast.Value{}, invalidLiteral(tok, err)
		}
		return monkast.Float(v), nil
	case monktoken.String:
		if len(tok.Text) < 2 || tok.Text[0] != '"' || tok.Text[len(tok.Text)-1] != '"' {
			return monkast.Value{}, &Error{Kind: InvalidLiteral, Context: "literal", Found: &tok, Message: "string is not quoted"}
		}
		return monkast.String(tok.Text[1 : len(tok.Text)-1]), nil
	case monktoken.Identifier:
		return monkast.Ident(tok.Text), nil
	default:
		return monkast.Value{}, unexpectedError("literal", tok)
	}
}

func invalidLiteral(tok monktoken.Token, err error) *Error {
	msg := err.Error()
	if numErr, ok := err.(*strconv.NumError); ok {
		msg = numErr.Err.Error()
	}
	return &Error{Kind: InvalidLiteral, Context: "literal", Found: &tok, Message: msg, Err: err}
}
