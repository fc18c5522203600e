// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              metadata of the coded Error type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type positionError struct {
	offset int
}

func (e *positionError) Error() string {
	return fmt.Sprintf("bad character at %d", e.offset)
}

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("unexpected token").WithCode(CodeSyntax),
			message:  "parse failed",
			wantMsg:  "parse failed: unexpected token",
			wantCode: CodeSyntax,
		},
		{
			name:     "wrap coded error behind fmt.Errorf",
			err:      fmt.Errorf("unit main: %w", New("bad char").WithCode(CodeLexical)),
			message:  "tokenize failed",
			wantMsg:  "tokenize failed: unit main: bad char",
			wantCode: CodeLexical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, original) = false")
			}
		})
	}
}

func TestErrorChain(t *testing.T) {
	inner := &positionError{offset: 7}
	err := Wrap(inner, "tokenize failed").
		WithCode(CodeLexical).
		WithOperation("tokenize").
		WithCorrelationID("abc").
		WithDetail("unit", "main")
	outer := Wrap(err, "check failed")

	var posErr *positionError
	if !errors.As(outer, &posErr) || posErr.offset != 7 {
		t.Errorf("errors.As did not reach the inner error")
	}
	if outer.RootCause() != inner {
		t.Errorf("RootCause() = %v, want %v", outer.RootCause(), inner)
	}
	if outer.Operation() != "tokenize" || outer.CorrelationID() != "abc" {
		t.Errorf("Operation/CorrelationID not carried over: %q %q", outer.Operation(), outer.CorrelationID())
	}
	if outer.Details()["unit"] != "main" {
		t.Errorf("Details not carried over: %v", outer.Details())
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		severity Severity
	}{
		{CodeLexical, true, "source", SeverityLow},
		{CodeSyntax, true, "source", SeverityLow},
		{CodeInvalidInput, true, "input", SeverityLow},
		{CodeNotFound, true, "input", SeverityLow},
		{CodeConfigError, true, "configuration", SeverityHigh},
		{CodeInternal, true, "generic", SeverityCritical},
		{Code("NOPE"), false, "generic", SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if tt.code.IsValid() != tt.valid {
				t.Errorf("IsValid() = %v, want %v", tt.code.IsValid(), tt.valid)
			}
			if tt.code.Category() != tt.category {
				t.Errorf("Category() = %q, want %q", tt.code.Category(), tt.category)
			}
			if GetSeverityFromCode(tt.code) != tt.severity {
				t.Errorf("GetSeverityFromCode() = %v, want %v", GetSeverityFromCode(tt.code), tt.severity)
			}
		})
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntax)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}

	err = New("y").WithCode(CodeConfigError)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
	if !err.Severity().ShouldAlert() {
		t.Errorf("Expected high severity to alert")
	}
}

func TestHelpers(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("inner").WithCode(CodeSyntax))

	if !HasCode(err, CodeSyntax) {
		t.Errorf("HasCode() = false, want true")
	}
	if HasCode(err, CodeLexical) {
		t.Errorf("HasCode(CodeLexical) = true, want false")
	}
	if GetCode(err) != CodeSyntax {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeSyntax)
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityLow)
	}

	plain := errors.New("plain")
	if GetCode(plain) != CodeUnknown || GetSeverity(plain) != SeverityMedium {
		t.Errorf("Plain errors should report unknown code and medium severity")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("cause"), "message").
		WithCode(CodeSyntax).
		WithOperation("parse").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{"Error: message", "Code: SYNTAX", "Severity: low", "Operation: parse", "Details: {a=1, b=2}", "Cause: cause"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad").WithCode(CodeSyntax).WithCorrelationID("id-1").WithDetail("line", 3)

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if decoded["code"] != "SYNTAX" || decoded["severity"] != "low" || decoded["correlation_id"] != "id-1" {
		t.Errorf("Unexpected JSON: %s", data)
	}
}
