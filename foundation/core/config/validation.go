// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules:
//              required keys, value types, integer bounds and allowed values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Rule based validation

package config

import (
	"fmt"
	"sort"
	"strings"

	monkerror "github.com/msto63/monk/foundation/core/error"
)

// ValidationRule defines validation criteria for one configuration key
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "int" or "bool"
	Min      *int     // Minimum value for ints
	Max      *int     // Maximum value for ints
	OneOf    []string // Allowed values for strings
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns the result as a coded error, or nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return monkerror.New("invalid configuration: " + strings.Join(r.Errors, "; ")).
		WithCode(monkerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// IntBound returns a pointer for use in Min and Max
func IntBound(v int) *int {
	return &v
}

// Validate validates the configuration against the provided rules. Keys are
// checked in sorted order so the error list is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "":
	case "string":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
		if len(rule.OneOf) > 0 && !contains(rule.OneOf, s) {
			return fmt.Errorf("field '%s' value '%s' is not one of %s", key, s, strings.Join(rule.OneOf, ", "))
		}
	case "int":
		if _, isString := value.(string); isString {
			return fmt.Errorf("field '%s' must be an integer, got string", key)
		}
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
		if f, isFloat := value.(float64); isFloat && f != float64(n) {
			return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Errorf("field '%s' value %d is less than minimum %d", key, n, *rule.Min)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Errorf("field '%s' value %d is greater than maximum %d", key, n, *rule.Max)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
