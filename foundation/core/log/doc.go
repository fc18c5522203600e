// Package log provides structured logging for the monk front end and CLI.
//
// Package: log
// Title: monk Structured Logging
// Description: Leveled structured logging with persistent context fields,
//              correlation IDs, JSON/text/console/logfmt output and
//              severity-aware logging of coded errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Loggers are values built with With* methods; each call returns a copy, so
// a logger can be handed to concurrent parse workers without locking. Writes
// to a shared output are serialized.
//
// Levels, lowest first: trace, debug, info, warn, error, audit. The parser
// logs backtracking and resynchronization at trace, the engine logs one line
// per unit at debug and failed units at warn.
//
// Usage:
//
//	import monklog "github.com/msto63/monk/foundation/core/log"
//
//	logger := monklog.NewWithConfig(monklog.Config{
//		Level:  monklog.LevelDebug,
//		Format: monklog.FormatConsole,
//	}).WithField("component", "monk-engine")
//
//	logger.Debug("Parsed unit", monklog.Fields{"unit": "main", "statements": 12})
//
//	timer := logger.StartTimer("parse")
//	// ...
//	timer.Stop()
//
//	// Level follows the error's severity
//	logger.LogError(err)
package log
