// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels used to filter monk diagnostics, from
//              parser backtracking traces up to errors and audit records.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Levels, parsing and short names

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is used for per-token parser diagnostics (backtracking, resync)
	LevelTrace Level = iota

	// LevelDebug is used for per-unit engine diagnostics
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates a failed unit or a recoverable problem
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit
)

var levelNames = map[Level][2]string{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelAudit: {"audit", "AUD"},
}

// String returns the string representation of the log level
func (l Level) String() string {
	if names, ok := levelNames[l]; ok {
		return names[0]
	}
	return "unknown"
}

// ShortString returns the three letter form used by text formatters
func (l Level) ShortString() string {
	if names, ok := levelNames[l]; ok {
		return names[1]
	}
	return "???"
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all available log levels in ascending order
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelAudit}
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelInfo
}
