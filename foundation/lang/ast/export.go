// File: export.go
// Title: monk AST Export
// Description: Converts an AST into a tree of plain maps and slices so it can
//              be rendered by generic encoders (YAML, JSON).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial export visitor

package ast

// Export returns the program as nested maps keyed by field name. Every node
// map carries a "node" key naming its kind.
func Export(prog *Program) map[string]interface{} {
	ev := &exportVisitor{}
	stmts := make([]interface{}, len(prog.Stmts))
	for i, stmt := range prog.Stmts {
		stmts[i] = stmt.Accept(ev)
	}

	out := map[string]interface{}{
		"node":       "program",
		"statements": stmts,
	}
	if prog.Name != "" {
		out["name"] = prog.Name
	}
	if prog.Path != "" {
		out["path"] = prog.Path
	}
	return out
}

// exportVisitor builds the map form of each node
type exportVisitor struct{}

func (ev *exportVisitor) node(n Node) interface{} {
	if n == nil {
		return nil
	}
	return n.Accept(ev)
}

func (ev *exportVisitor) stmts(list []Stmt) []interface{} {
	out := make([]interface{}, len(list))
	for i, stmt := range list {
		out[i] = ev.node(stmt)
	}
	return out
}

func typeName(t *Type) interface{} {
	if t == nil {
		return nil
	}
	return t.String()
}

func (ev *exportVisitor) VisitLet(stmt *LetStmt) interface{} {
	return map[string]interface{}{
		"node":  "let",
		"name":  stmt.Name,
		"type":  typeName(stmt.Type),
		"value": ev.node(stmt.Value),
	}
}

func (ev *exportVisitor) VisitFunc(stmt *FuncStmt) interface{} {
	params := make([]interface{}, len(stmt.Params))
	for i, param := range stmt.Params {
		params[i] = map[string]interface{}{
			"name": param.Name,
			"type": typeName(param.Type),
		}
	}
	return map[string]interface{}{
		"node":    "func",
		"name":    stmt.Name,
		"params":  params,
		"returns": typeName(stmt.ReturnType),
		"body":    ev.node(stmt.Body),
	}
}

func (ev *exportVisitor) VisitFor(stmt *ForStmt) interface{} {
	return map[string]interface{}{
		"node": "for",
		"cond": ev.node(stmt.Cond),
		"body": ev.node(stmt.Body),
	}
}

func (ev *exportVisitor) VisitWhile(stmt *WhileStmt) interface{} {
	return map[string]interface{}{
		"node": "while",
		"cond": ev.node(stmt.Cond),
		"body": ev.node(stmt.Body),
	}
}

func (ev *exportVisitor) VisitMatch(stmt *MatchStmt) interface{} {
	cases := make([]interface{}, len(stmt.Cases))
	for i, c := range stmt.Cases {
		cases[i] = map[string]interface{}{
			"pattern": ev.node(c.Pattern),
			"result":  ev.node(c.Result),
		}
	}
	return map[string]interface{}{
		"node":    "match",
		"subject": ev.node(stmt.Subject),
		"cases":   cases,
	}
}

func (ev *exportVisitor) VisitIf(stmt *IfStmt) interface{} {
	out := map[string]interface{}{
		"node": "if",
		"cond": ev.node(stmt.Cond),
		"then": ev.node(stmt.Then),
	}
	if stmt.Else != nil {
		out["else"] = ev.node(stmt.Else)
	}
	return out
}

func (ev *exportVisitor) VisitExprStmt(stmt *ExprStmt) interface{} {
	return map[string]interface{}{
		"node": "expr",
		"expr": ev.node(stmt.X),
	}
}

func (ev *exportVisitor) VisitLiteral(expr *LiteralExpr) interface{} {
	out := map[string]interface{}{
		"node": "literal",
		"kind": expr.Value.Kind.String(),
	}
	switch expr.Value.Kind {
	case ValueInt:
		out["value"] = expr.Value.Int
	case ValueFloat:
		out["value"] = expr.Value.Float
	default:
		out["value"] = expr.Value.Text
	}
	return out
}

func (ev *exportVisitor) VisitCall(expr *CallExpr) interface{} {
	args := make([]interface{}, len(expr.Args))
	for i, arg := range expr.Args {
		args[i] = ev.node(arg)
	}
	return map[string]interface{}{
		"node": "call",
		"name": expr.Name,
		"args": args,
	}
}

func (ev *exportVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	return map[string]interface{}{
		"node":  "binary",
		"op":    expr.Op.String(),
		"left":  ev.node(expr.Left),
		"right": ev.node(expr.Right),
	}
}

func (ev *exportVisitor) VisitBlock(expr *BlockExpr) interface{} {
	return map[string]interface{}{
		"node":  "block",
		"stmts": ev.stmts(expr.Stmts),
	}
}
