// File: parser_test.go
// Title: monk Parser Unit Tests
// Description: Unit tests for statement parsing, backtracking, the two-stack
//              expression engine, error reporting and error recovery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial comprehensive test suite

package parser

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	monkast "github.com/msto63/monk/foundation/lang/ast"
	monklexer "github.com/msto63/monk/foundation/lang/lexer"
	monktoken "github.com/msto63/monk/foundation/lang/token"
)

func id(name string) monkast.Expr {
	return &monkast.LiteralExpr{Value: monkast.Ident(name)}
}

func num(v int64) monkast.Expr {
	return &monkast.LiteralExpr{Value: monkast.Int(v)}
}

func str(v string) monkast.Expr {
	return &monkast.LiteralExpr{Value: monkast.String(v)}
}

func bin(left monkast.Expr, op monkast.Operation, right monkast.Expr) monkast.Expr {
	return &monkast.BinaryExpr{Left: left, Op: op, Right: right}
}

func call(name string, args ...monkast.Expr) monkast.Expr {
	return &monkast.CallExpr{Name: name, Args: append([]monkast.Expr{}, args...)}
}

func block(stmts ...monkast.Stmt) monkast.Expr {
	return &monkast.BlockExpr{Stmts: append([]monkast.Stmt{}, stmts...)}
}

func expr(e monkast.Expr) monkast.Stmt {
	return &monkast.ExprStmt{X: e}
}

func parseOne(t *testing.T, input string) monkast.Stmt {
	t.Helper()
	prog, err := Parse(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(prog.Stmts) != 1 {
		t.Fatalf("Expected 1 statement, got %d: %s", len(prog.Stmts), prog)
	}
	return prog.Stmts[0]
}

func TestParser_Expressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected monkast.Expr
	}{
		{
			name:     "Multiplication binds tighter on the right",
			input:    "a + b * c",
			expected: bin(id("a"), monkast.OpAdd, bin(id("b"), monkast.OpMul, id("c"))),
		},
		{
			name:     "Multiplication binds tighter on the left",
			input:    "a * b + c",
			expected: bin(bin(id("a"), monkast.OpMul, id("b")), monkast.OpAdd, id("c")),
		},
		{
			name:     "Additive chain groups to the right",
			input:    "a + b - c",
			expected: bin(id("a"), monkast.OpAdd, bin(id("b"), monkast.OpSub, id("c"))),
		},
		{
			name:     "Subtraction chain groups to the right",
			input:    "a - b - c",
			expected: bin(id("a"), monkast.OpSub, bin(id("b"), monkast.OpSub, id("c"))),
		},
		{
			name:     "Multiplicative chain groups to the left",
			input:    "a * b / c",
			expected: bin(bin(id("a"), monkast.OpMul, id("b")), monkast.OpDiv, id("c")),
		},
		{
			name:     "Comparison waits for the sum",
			input:    "a < b + c",
			expected: bin(id("a"), monkast.OpLess, bin(id("b"), monkast.OpAdd, id("c"))),
		},
		{
			name:  "All comparison operators",
			input: "a == b <= c >= d > e",
			expected: bin(id("a"), monkast.OpEqual,
				bin(id("b"), monkast.OpLessOrEqual,
					bin(id("c"), monkast.OpGreaterOrEqual,
						bin(id("d"), monkast.OpGreater, id("e"))))),
		},
		{
			name:  "Mixed chain",
			input: "1 + 2 * 3 - 4 / 2",
			expected: bin(num(1), monkast.OpAdd,
				bin(bin(num(2), monkast.OpMul, num(3)), monkast.OpSub,
					bin(num(4), monkast.OpDiv, num(2)))),
		},
		{
			name:     "Float literal",
			input:    "1.5",
			expected: &monkast.LiteralExpr{Value: monkast.Float(1.5)},
		},
		{
			name:     "String literal has its quotes stripped",
			input:    `"hello world"`,
			expected: str("hello world"),
		},
		{
			name:     "Empty string",
			input:    `""`,
			expected: str(""),
		},
		{
			name:     "Call without arguments",
			input:    "f()",
			expected: call("f"),
		},
		{
			name:     "Call with arguments and trailing comma",
			input:    "f(1, x + 2,)",
			expected: call("f", num(1), bin(id("x"), monkast.OpAdd, num(2))),
		},
		{
			name:     "Nested call in a binary expression",
			input:    "g(f(1)) * 2",
			expected: bin(call("g", call("f", num(1))), monkast.OpMul, num(2)),
		},
		{
			name:     "Block",
			input:    "{ let x = 1 x }",
			expected: block(&monkast.LetStmt{Name: "x", Value: num(1)}, expr(id("x"))),
		},
		{
			name:     "Empty block",
			input:    "{}",
			expected: block(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseOne(t, tt.input)
			if diff := cmp.Diff(expr(tt.expected), stmt); diff != "" {
				t.Errorf("AST mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Statements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected monkast.Stmt
	}{
		{
			name:     "Variable",
			input:    "let x = 10",
			expected: &monkast.LetStmt{Name: "x", Value: num(10)},
		},
		{
			name:     "Typed variable",
			input:    "let x : Float = 1.0",
			expected: &monkast.LetStmt{Name: "x", Type: monkast.TypeOf(monkast.TypeFloat), Value: &monkast.LiteralExpr{Value: monkast.Float(1)}},
		},
		{
			name:  "Function with two parameters",
			input: "let f (a, b: Int,) : Int a + b",
			expected: &monkast.FuncStmt{
				Name: "f",
				Params: monkast.Params{
					{Name: "a"},
					{Name: "b", Type: monkast.TypeOf(monkast.TypeInt)},
				},
				ReturnType: monkast.TypeOf(monkast.TypeInt),
				Body:       bin(id("a"), monkast.OpAdd, id("b")),
			},
		},
		{
			name:  "Function without parameters",
			input: `let greet() "hi"`,
			expected: &monkast.FuncStmt{
				Name:   "greet",
				Params: monkast.Params{},
				Body:   str("hi"),
			},
		},
		{
			name:  "Function with block body",
			input: "let f(s: String,) { s }",
			expected: &monkast.FuncStmt{
				Name:   "f",
				Params: monkast.Params{{Name: "s", Type: monkast.TypeOf(monkast.TypeString)}},
				Body:   block(expr(id("s"))),
			},
		},
		{
			name:  "If with else",
			input: "if a < b { a } else { b }",
			expected: &monkast.IfStmt{
				Cond: bin(id("a"), monkast.OpLess, id("b")),
				Then: expr(block(expr(id("a")))),
				Else: expr(block(expr(id("b")))),
			},
		},
		{
			name:  "If without else",
			input: "if x 1",
			expected: &monkast.IfStmt{
				Cond: id("x"),
				Then: expr(num(1)),
			},
		},
		{
			name:  "For",
			input: "for i < 10 { let i = i + 1 }",
			expected: &monkast.ForStmt{
				Cond: bin(id("i"), monkast.OpLess, num(10)),
				Body: expr(block(&monkast.LetStmt{Name: "i", Value: bin(id("i"), monkast.OpAdd, num(1))})),
			},
		},
		{
			name:  "While with a statement body",
			input: "while x let x = x - 1",
			expected: &monkast.WhileStmt{
				Cond: id("x"),
				Body: &monkast.LetStmt{Name: "x", Value: bin(id("x"), monkast.OpSub, num(1))},
			},
		},
		{
			name:  "Match keeps cases in order",
			input: `match x { 1 -> "one", 2 -> "two" }`,
			expected: &monkast.MatchStmt{
				Subject: id("x"),
				Cases: monkast.Cases{
					{Pattern: num(1), Result: str("one")},
					{Pattern: num(2), Result: str("two")},
				},
			},
		},
		{
			name:  "Match with trailing comma",
			input: "match f(x) { y -> y * 2, }",
			expected: &monkast.MatchStmt{
				Subject: call("f", id("x")),
				Cases: monkast.Cases{
					{Pattern: id("y"), Result: bin(id("y"), monkast.OpMul, num(2))},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseOne(t, tt.input)
			if diff := cmp.Diff(tt.expected, stmt); diff != "" {
				t.Errorf("AST mismatch (-want +got):\n%s", diff)
			}
			if err := stmt.Validate(); err != nil {
				t.Errorf("Parsed statement does not validate: %v", err)
			}
		})
	}
}

func TestParser_Program(t *testing.T) {
	prog, err := Parse("let x = 1 let y = x * 2\ny")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := &monkast.Program{Stmts: []monkast.Stmt{
		&monkast.LetStmt{Name: "x", Value: num(1)},
		&monkast.LetStmt{Name: "y", Value: bin(id("x"), monkast.OpMul, num(2))},
		expr(id("y")),
	}}
	if diff := cmp.Diff(expected, prog); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}

	if got := prog.String(); got != "(let x 1)\n(let y (* x 2))\ny" {
		t.Errorf("Unexpected printed form: %q", got)
	}
}

func TestParser_EmptyInput(t *testing.T) {
	prog, err := Parse(" \n ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(prog.Stmts) != 0 {
		t.Errorf("Expected no statements, got %d", len(prog.Stmts))
	}

	_, err = New(nil).ParseStmt()
	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != UnexpectedEndOfInput {
		t.Fatalf("Expected UnexpectedEndOfInput, got %v", err)
	}
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("Expected errors.Is(err, ErrUnexpectedEOF)")
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		kind      ErrorKind
		expected  monktoken.Kind // checked for ExpectedToken
		found     monktoken.Kind // checked when foundEOF is false
		foundEOF  bool
		contextIs string
	}{
		{"Leading else", "else 1", UnexpectedToken, 0, monktoken.Else, false, "statement"},
		{"Leading comma", ", x", UnexpectedToken, 0, monktoken.Comma, false, "statement"},
		{"Leading operator", "+ 1", UnexpectedToken, 0, monktoken.Op, false, "statement"},
		{"Variable without value reports function error", "let x", ExpectedToken, monktoken.LeftBrace, 0, true, "parameter list"},
		{"Missing value", "let x = ", ExpectedToken, monktoken.LeftBrace, monktoken.Eq, false, "parameter list"},
		{"Unknown type", "let x : Foo = 1", ExpectedToken, monktoken.LeftBrace, monktoken.Colon, false, "parameter list"},
		{"Parameter without trailing comma", "let f(a) 1", ExpectedToken, monktoken.Comma, monktoken.RightBrace, false, "parameter list"},
		{"Dangling operator", "1 +", UnexpectedEndOfInput, 0, 0, true, "expression"},
		{"Operator followed by keyword", "1 + let", UnexpectedToken, 0, monktoken.Let, false, "expression"},
		{"Arguments without comma", "f(1 2)", ExpectedToken, monktoken.RightBrace, monktoken.Int, false, "call arguments"},
		{"Unclosed call", "f(1,", UnexpectedEndOfInput, 0, 0, true, "expression"},
		{"Unclosed block", "{ 1", ExpectedToken, monktoken.RightCurly, 0, true, "block"},
		{"Match without brace", "match x 1 -> 2", ExpectedToken, monktoken.LeftCurly, monktoken.Int, false, "match statement"},
		{"Match case without arrow", "match x { 1 2 }", ExpectedToken, monktoken.RightArrow, monktoken.Int, false, "match case"},
		{"Match cases without comma", "match x { 1 -> 2 3 -> 4 }", ExpectedToken, monktoken.RightCurly, monktoken.Int, false, "match statement"},
		{"Unclosed match", "match x { 1 -> 2", ExpectedToken, monktoken.RightCurly, 0, true, "match statement"},
		{"If without branch", "if x", UnexpectedEndOfInput, 0, 0, true, "statement"},
		{"Stray assignment", "a = 1", UnexpectedToken, 0, monktoken.Eq, false, "statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Expected error, got %s", prog)
			}

			var parseErr *Error
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *Error, got %T: %v", err, err)
			}
			if parseErr.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s (%v)", tt.kind, parseErr.Kind, err)
			}
			if parseErr.Context != tt.contextIs {
				t.Errorf("Expected context %q, got %q", tt.contextIs, parseErr.Context)
			}
			if tt.kind == ExpectedToken && parseErr.Expected != tt.expected {
				t.Errorf("Expected expected-kind %s, got %s", tt.expected, parseErr.Expected)
			}
			if tt.foundEOF {
				if parseErr.Found != nil {
					t.Errorf("Expected end of input, found %v", parseErr.Found)
				}
				if !errors.Is(err, ErrUnexpectedEOF) {
					t.Errorf("Expected errors.Is(err, ErrUnexpectedEOF)")
				}
			} else {
				if parseErr.Found == nil {
					t.Fatalf("Expected found token %s, got end of input", tt.found)
				}
				if parseErr.Found.Kind != tt.found {
					t.Errorf("Expected found kind %s, got %s", tt.found, parseErr.Found.Kind)
				}
			}
		})
	}
}

func TestParser_ElseNamesToken(t *testing.T) {
	_, err := Parse("else")
	var parseErr *Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *Error, got %v", err)
	}
	if parseErr.Kind != UnexpectedToken || parseErr.Found.Text != "else" {
		t.Errorf("Expected UnexpectedToken naming else, got %v", err)
	}
	if !strings.Contains(err.Error(), "ELSE(else)") {
		t.Errorf("Expected message to name the token, got %q", err.Error())
	}
}

func TestParser_InvalidLiteral(t *testing.T) {
	_, err := Parse("let x = 99999999999999999999")

	// The variable form fails on the literal; the function form then fails on "="
	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != ExpectedToken {
		t.Fatalf("Expected the function alternative's error, got %v", err)
	}

	_, err = Parse("99999999999999999999")
	if !errors.As(err, &parseErr) || parseErr.Kind != InvalidLiteral {
		t.Fatalf("Expected InvalidLiteral, got %v", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("Expected the conversion error to be reachable, got %v", err)
	}
}

func TestParser_LetValueErrorsReportFunctionForm(t *testing.T) {
	deep := strings.Repeat("{", 300) + "1" + strings.Repeat("}", 300)

	tests := []struct {
		name  string
		input string
	}{
		{"Dangling operator", "let a = 1 +"},
		{"Invalid literal", "let a = 99999999999999999999"},
		{"Nesting too deep", "let a = " + deep},
		{"Broken block", "let a = { else }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var parseErr *Error
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *Error, got %v", err)
			}
			if parseErr.Kind != ExpectedToken || parseErr.Context != "parameter list" {
				t.Errorf("Expected the parameter list error, got %v", err)
			}
			if parseErr.Expected != monktoken.LeftBrace || parseErr.Found == nil || parseErr.Found.Kind != monktoken.Eq {
				t.Errorf("Expected LEFT_BRACE instead of EQ, got %v", err)
			}
		})
	}

	// Without the let the underlying failure is reported
	_, err := Parse(deep)
	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != TooDeep {
		t.Errorf("Expected TooDeep for a bare expression, got %v", err)
	}
}

func TestParser_LexErrorPassesThrough(t *testing.T) {
	_, err := Parse("let x = 1 @")
	var lexErr *monklexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected lexer error, got %v", err)
	}
}

func TestParser_MaxDepth(t *testing.T) {
	input := strings.Repeat("{", 10) + "1" + strings.Repeat("}", 10)

	tokens, err := monklexer.Tokenize(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := New(tokens).ParseProgram(); err != nil {
		t.Fatalf("Expected default depth to accept the input, got %v", err)
	}

	_, err = New(tokens, WithMaxDepth(8)).ParseProgram()
	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != TooDeep {
		t.Fatalf("Expected TooDeep, got %v", err)
	}
}

func TestParser_DeepInputDoesNotOverflow(t *testing.T) {
	input := strings.Repeat("{", 5000)
	_, err := Parse(input)
	var parseErr *Error
	if !errors.As(err, &parseErr) || parseErr.Kind != TooDeep {
		t.Fatalf("Expected TooDeep, got %v", err)
	}
}

func TestParser_ParseAll(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		errorCount int
		stmts      []string
	}{
		{
			name:       "One broken declaration",
			input:      "let = 1 let y = 2",
			errorCount: 1,
			stmts:      []string{"(let y 2)"},
		},
		{
			name:       "Unexpected tokens between statements",
			input:      "else let x = 1 , let y = 2",
			errorCount: 2,
			stmts:      []string{"(let x 1)", "(let y 2)"},
		},
		{
			name:       "Broken tail",
			input:      "let a = 1 match a {",
			errorCount: 1,
			stmts:      []string{"(let a 1)"},
		},
		{
			name:       "Broken statement inside a block",
			input:      "let a = { let b = 1 let c = } let d = 2",
			errorCount: 1,
			stmts:      []string{"(let d 2)"},
		},
		{
			name:       "Broken nested blocks",
			input:      "while x { if y { let = 1 } let z = 2 } let w = 3",
			errorCount: 1,
			stmts:      []string{"(let w 3)"},
		},
		{
			name:       "Stray closing brace",
			input:      "} let x = 1",
			errorCount: 1,
			stmts:      []string{"(let x 1)"},
		},
		{
			name:       "No errors",
			input:      "1 2 3",
			errorCount: 0,
			stmts:      []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := monklexer.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Unexpected lex error: %v", err)
			}

			prog, errs := New(tokens).ParseAll()
			if len(errs) != tt.errorCount {
				t.Errorf("Expected %d errors, got %d: %v", tt.errorCount, len(errs), errs)
			}

			got := make([]string, len(prog.Stmts))
			for i, stmt := range prog.Stmts {
				got[i] = stmt.String()
			}
			if diff := cmp.Diff(tt.stmts, got); diff != "" {
				t.Errorf("Statements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Idempotent(t *testing.T) {
	input := `let f(a: Int, b,) : Int a * b + 1
let total = f(2, 3,) - 4 - 5
match total { 1 -> "one", n -> { n } }
while total > 0 { let total = total - 1 }`

	first, err := Parse(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := Parse(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Parses differ (-first +second):\n%s", diff)
	}
	if !monkast.Equal(first, second) {
		t.Errorf("Expected ast.Equal to report identical programs")
	}
	if err := first.Validate(); err != nil {
		t.Errorf("Parsed program does not validate: %v", err)
	}
}

func TestParser_Cursor(t *testing.T) {
	tokens, err := monklexer.Tokenize("let x = 1 2")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p := New(tokens)
	if _, err := p.ParseStmt(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !p.More() {
		t.Fatalf("Expected a second statement")
	}
	if _, err := p.ParseStmt(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.More() {
		t.Errorf("Expected all tokens to be consumed")
	}
}

func BenchmarkParser_Parse(b *testing.B) {
	input := strings.Repeat("let total = price * count + tax - discount\n", 50)

	for i := 0; i < b.N; i++ {
		if _, err := Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
