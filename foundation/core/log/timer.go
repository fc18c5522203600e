// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation, such as parsing one
//              source unit, and logs it when the timer stops.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Timer with Stop and StopWithError

package log

import (
	"time"
)

// Timer measures one operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer stops
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// IsRunning reports whether the timer has not been stopped yet
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Stop stops the timer and logs "<operation> completed". A stopped timer
// returns zero and logs nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, " completed", nil)
}

// StopWithError stops the timer and logs "<operation> failed" at warn level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelWarn, " failed", err)
}

func (t *Timer) finish(level Level, suffix string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil || !level.ShouldLog(t.logger.level) {
		return elapsed
	}

	entry := NewEntry(level, t.operation+suffix)
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	entry.Duration = elapsed
	entry.Error = err
	entry.Fields = t.logger.contextFields.Merge(t.fields)
	entry.Fields["operation"] = t.operation

	t.logger.write(entry)
	return elapsed
}
