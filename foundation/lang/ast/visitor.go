// File: visitor.go
// Title: monk AST Visitor and Traversal
// Description: Visitor interface for dispatching over AST nodes, plus
//              traversal and collection helpers built on it.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial visitor implementation
// - 2026-10-15 v0.1.1: Shared typed nil check

package ast

import (
	"reflect"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit statement nodes
	VisitLet(stmt *LetStmt) interface{}
	VisitFunc(stmt *FuncStmt) interface{}
	VisitFor(stmt *ForStmt) interface{}
	VisitWhile(stmt *WhileStmt) interface{}
	VisitMatch(stmt *MatchStmt) interface{}
	VisitIf(stmt *IfStmt) interface{}
	VisitExprStmt(stmt *ExprStmt) interface{}

	// Visit expression nodes
	VisitLiteral(expr *LiteralExpr) interface{}
	VisitCall(expr *CallExpr) interface{}
	VisitBinary(expr *BinaryExpr) interface{}
	VisitBlock(expr *BlockExpr) interface{}
}

// Children returns the direct child nodes of node in source order
func Children(node Node) []Node {
	var children []Node
	add := func(n Node) {
		if !isNil(n) {
			children = append(children, n)
		}
	}

	switch n := node.(type) {
	case *LetStmt:
		add(n.Value)
	case *FuncStmt:
		add(n.Body)
	case *ForStmt:
		add(n.Cond)
		add(n.Body)
	case *WhileStmt:
		add(n.Cond)
		add(n.Body)
	case *MatchStmt:
		add(n.Subject)
		for _, c := range n.Cases {
			add(c.Pattern)
			add(c.Result)
		}
	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *ExprStmt:
		add(n.X)
	case *CallExpr:
		for _, arg := range n.Args {
			add(arg)
		}
	case *BinaryExpr:
		add(n.Left)
		add(n.Right)
	case *BlockExpr:
		for _, stmt := range n.Stmts {
			add(stmt)
		}
	}
	return children
}

// isNil reports a missing node, including a typed nil pointer held in the
// interface
func isNil(n Node) bool {
	return n == nil || reflect.ValueOf(n).IsNil()
}

// Inspect traverses the tree rooted at node depth-first in source order.
// If fn returns false the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, fn)
	}
}

// InspectProgram runs Inspect over every statement of the program
func InspectProgram(prog *Program, fn func(Node) bool) {
	for _, stmt := range prog.Stmts {
		Inspect(stmt, fn)
	}
}

// Identifiers returns every identifier referenced as a value, in source order
func Identifiers(prog *Program) []string {
	var names []string
	InspectProgram(prog, func(n Node) bool {
		if lit, ok := n.(*LiteralExpr); ok && lit.Value.Kind == ValueIdentifier {
			names = append(names, lit.Value.Text)
		}
		return true
	})
	return names
}

// Calls returns every call expression, in source order
func Calls(prog *Program) []*CallExpr {
	var calls []*CallExpr
	InspectProgram(prog, func(n Node) bool {
		if call, ok := n.(*CallExpr); ok {
			calls = append(calls, call)
		}
		return true
	})
	return calls
}

// CountNodes returns the number of nodes below the program root
func CountNodes(prog *Program) int {
	count := 0
	InspectProgram(prog, func(Node) bool {
		count++
		return true
	})
	return count
}

// Equal reports whether two programs are structurally identical
func Equal(a, b *Program) bool {
	return reflect.DeepEqual(a, b)
}
