// File: nodes.go
// Title: monk AST Node Definitions
// Description: Defines the statement, expression, value, type and operator
//              nodes produced by the monk parser, with their textual form
//              and structural validation.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial AST implementation
// - 2026-10-15 v0.1.1: Treat typed nil children as missing in Validate

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the parenthesized textual form of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Validate checks the structural invariants of the node and its children
	Validate() error
}

// Stmt is a statement node
type Stmt interface {
	Node
	stmtNode() // marker method
}

// Expr is an expression node
type Expr interface {
	Node
	exprNode() // marker method
}

// Program is the result of parsing one source unit
type Program struct {
	Name  string // Optional unit name
	Path  string // Optional source path
	Stmts []Stmt // Statements in source order
}

// Type is a type annotation
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeFloat
)

// String returns the annotation spelling of the type
func (t Type) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// ParseType maps an annotation name to its Type. Names are case sensitive.
func ParseType(name string) (Type, bool) {
	switch name {
	case "String":
		return TypeString, true
	case "Int":
		return TypeInt, true
	case "Float":
		return TypeFloat, true
	default:
		return 0, false
	}
}

// TypeOf returns a pointer to t, for optional annotations
func TypeOf(t Type) *Type {
	return &t
}

// Operation is a binary operator
type Operation int

const (
	OpAdd Operation = iota
	OpSub
	OpMul
	OpDiv
	OpEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
)

// String returns the source symbol of the operation
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEqual:
		return "=="
	case OpLess:
		return "<"
	case OpLessOrEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// IsMultiplicative reports whether the operation binds tighter than the rest
func (o Operation) IsMultiplicative() bool {
	return o == OpMul || o == OpDiv
}

// ValueKind identifies the payload of a Value
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueString
	ValueIdentifier
)

// String returns string representation of ValueKind
func (vk ValueKind) String() string {
	switch vk {
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueString:
		return "string"
	case ValueIdentifier:
		return "identifier"
	default:
		return "unknown"
	}
}

// Value is a literal or identifier. Only the field matching Kind is set.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Text  string // String contents (without quotes) or identifier name
}

// Int creates an integer value
func Int(v int64) Value { return Value{Kind: ValueInt, Int: v} }

// Float creates a float value
func Float(v float64) Value { return Value{Kind: ValueFloat, Float: v} }

// String creates a string value
func String(v string) Value { return Value{Kind: ValueString, Text: v} }

// Ident creates an identifier value
func Ident(name string) Value { return Value{Kind: ValueIdentifier, Text: name} }

func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		s := strconv.FormatFloat(v.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEn") {
			s += ".0"
		}
		return s
	case ValueString:
		return strconv.Quote(v.Text)
	default:
		return v.Text
	}
}

// Param is a function parameter with an optional type
type Param struct {
	Name string
	Type *Type
}

// Params is an ordered parameter list; names are not required to be unique
type Params []Param

// Case is one arm of a match statement
type Case struct {
	Pattern Expr
	Result  Expr
}

// Cases is an ordered list of match arms
type Cases []Case

// Statements

// LetStmt binds a name: let name [: Type] = value
type LetStmt struct {
	Name  string
	Type  *Type
	Value Expr
}

// FuncStmt declares a function: let name (params) [: Type] body
type FuncStmt struct {
	Name       string
	Params     Params
	ReturnType *Type
	Body       Expr
}

// ForStmt is a loop: for cond body
type ForStmt struct {
	Cond Expr
	Body Stmt
}

// WhileStmt is a loop: while cond body
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// MatchStmt selects among cases: match subject { pattern -> result, ... }
type MatchStmt struct {
	Subject Expr
	Cases   Cases
}

// IfStmt is a conditional: if cond then [else else]
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when absent
}

// ExprStmt is an expression used as a statement
type ExprStmt struct {
	X Expr
}

// Expressions

// LiteralExpr is a literal or identifier reference
type LiteralExpr struct {
	Value Value
}

// CallExpr is a function call: name(args)
type CallExpr struct {
	Name string
	Args []Expr
}

// BinaryExpr is left op right
type BinaryExpr struct {
	Left  Expr
	Op    Operation
	Right Expr
}

// BlockExpr is a brace-delimited statement list
type BlockExpr struct {
	Stmts []Stmt
}

func (*LetStmt) stmtNode()   {}
func (*FuncStmt) stmtNode()  {}
func (*ForStmt) stmtNode()   {}
func (*WhileStmt) stmtNode() {}
func (*MatchStmt) stmtNode() {}
func (*IfStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()  {}

func (*LiteralExpr) exprNode() {}
func (*CallExpr) exprNode()    {}
func (*BinaryExpr) exprNode()  {}
func (*BlockExpr) exprNode()   {}

// Textual form

func (p *Program) String() string {
	lines := make([]string, len(p.Stmts))
	for i, stmt := range p.Stmts {
		lines[i] = stmt.String()
	}
	return strings.Join(lines, "\n")
}

func (s *LetStmt) String() string {
	if s.Type != nil {
		return fmt.Sprintf("(let %s %s %s)", s.Name, s.Type, s.Value)
	}
	return fmt.Sprintf("(let %s %s)", s.Name, s.Value)
}

func (s *FuncStmt) String() string {
	params := make([]string, len(s.Params))
	for i, param := range s.Params {
		if param.Type != nil {
			params[i] = fmt.Sprintf("(%s %s)", param.Name, param.Type)
		} else {
			params[i] = param.Name
		}
	}
	head := fmt.Sprintf("(func %s (%s)", s.Name, strings.Join(params, " "))
	if s.ReturnType != nil {
		head += " " + s.ReturnType.String()
	}
	return fmt.Sprintf("%s %s)", head, s.Body)
}

func (s *ForStmt) String() string {
	return fmt.Sprintf("(for %s %s)", s.Cond, s.Body)
}

func (s *WhileStmt) String() string {
	return fmt.Sprintf("(while %s %s)", s.Cond, s.Body)
}

func (s *MatchStmt) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(match %s", s.Subject)
	for _, c := range s.Cases {
		fmt.Fprintf(&b, " (case %s %s)", c.Pattern, c.Result)
	}
	b.WriteString(")")
	return b.String()
}

func (s *IfStmt) String() string {
	if s.Else != nil {
		return fmt.Sprintf("(if %s %s %s)", s.Cond, s.Then, s.Else)
	}
	return fmt.Sprintf("(if %s %s)", s.Cond, s.Then)
}

func (s *ExprStmt) String() string {
	return s.X.String()
}

func (e *LiteralExpr) String() string {
	return e.Value.String()
}

func (e *CallExpr) String() string {
	parts := []string{"call", e.Name}
	for _, arg := range e.Args {
		parts = append(parts, arg.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op, e.Left, e.Right)
}

func (e *BlockExpr) String() string {
	parts := []string{"block"}
	for _, stmt := range e.Stmts {
		parts = append(parts, stmt.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Visitor dispatch

func (s *LetStmt) Accept(v Visitor) interface{}     { return v.VisitLet(s) }
func (s *FuncStmt) Accept(v Visitor) interface{}    { return v.VisitFunc(s) }
func (s *ForStmt) Accept(v Visitor) interface{}     { return v.VisitFor(s) }
func (s *WhileStmt) Accept(v Visitor) interface{}   { return v.VisitWhile(s) }
func (s *MatchStmt) Accept(v Visitor) interface{}   { return v.VisitMatch(s) }
func (s *IfStmt) Accept(v Visitor) interface{}      { return v.VisitIf(s) }
func (s *ExprStmt) Accept(v Visitor) interface{}    { return v.VisitExprStmt(s) }
func (e *LiteralExpr) Accept(v Visitor) interface{} { return v.VisitLiteral(e) }
func (e *CallExpr) Accept(v Visitor) interface{}    { return v.VisitCall(e) }
func (e *BinaryExpr) Accept(v Visitor) interface{}  { return v.VisitBinary(e) }
func (e *BlockExpr) Accept(v Visitor) interface{}   { return v.VisitBlock(e) }

// Validation

// Validate checks every statement of the program
func (p *Program) Validate() error {
	for i, stmt := range p.Stmts {
		if isNil(stmt) {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

func (s *LetStmt) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("let: name is required")
	}
	return validateExpr("let value", s.Value)
}

func (s *FuncStmt) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("func: name is required")
	}
	for i, param := range s.Params {
		if param.Name == "" {
			return fmt.Errorf("func %s: parameter %d has no name", s.Name, i)
		}
	}
	return validateExpr("func body", s.Body)
}

func (s *ForStmt) Validate() error {
	if err := validateExpr("for condition", s.Cond); err != nil {
		return err
	}
	return validateStmt("for body", s.Body)
}

func (s *WhileStmt) Validate() error {
	if err := validateExpr("while condition", s.Cond); err != nil {
		return err
	}
	return validateStmt("while body", s.Body)
}

func (s *MatchStmt) Validate() error {
	if err := validateExpr("match subject", s.Subject); err != nil {
		return err
	}
	for i, c := range s.Cases {
		if err := validateExpr(fmt.Sprintf("case %d pattern", i), c.Pattern); err != nil {
			return err
		}
		if err := validateExpr(fmt.Sprintf("case %d result", i), c.Result); err != nil {
			return err
		}
	}
	return nil
}

func (s *IfStmt) Validate() error {
	if err := validateExpr("if condition", s.Cond); err != nil {
		return err
	}
	if err := validateStmt("if branch", s.Then); err != nil {
		return err
	}
	if isNil(s.Else) {
		return nil
	}
	return validateStmt("else branch", s.Else)
}

func (s *ExprStmt) Validate() error {
	return validateExpr("expression statement", s.X)
}

func (e *LiteralExpr) Validate() error {
	if e.Value.Kind == ValueIdentifier && e.Value.Text == "" {
		return fmt.Errorf("identifier is empty")
	}
	return nil
}

func (e *CallExpr) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("call: name is required")
	}
	for i, arg := range e.Args {
		if err := validateExpr(fmt.Sprintf("call %s argument %d", e.Name, i), arg); err != nil {
			return err
		}
	}
	return nil
}

// Validate enforces that a binary node has both operands
func (e *BinaryExpr) Validate() error {
	if err := validateExpr("binary left operand", e.Left); err != nil {
		return err
	}
	return validateExpr("binary right operand", e.Right)
}

func (e *BlockExpr) Validate() error {
	for i, stmt := range e.Stmts {
		if err := validateStmt(fmt.Sprintf("block statement %d", i), stmt); err != nil {
			return err
		}
	}
	return nil
}

func validateExpr(what string, e Expr) error {
	if isNil(e) {
		return fmt.Errorf("%s is missing", what)
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func validateStmt(what string, s Stmt) error {
	if isNil(s) {
		return fmt.Errorf("%s is missing", what)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
