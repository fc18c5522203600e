// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads monk configuration from TOML or YAML
//              files with defaults, environment overrides and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration loading for monk tools.

Key Features:
  • TOML (github.com/BurntSushi/toml) and YAML (gopkg.in/yaml.v3), chosen by file extension
  • Defaults merged below file values, table by table
  • Environment overrides: with prefix MONK, "frontend.max_depth" is read from MONK_FRONTEND_MAX_DEPTH
  • Discovery: explicit path, then MONK_CONFIG, then ./monk.toml, ./monk.yaml, ./monk.yml
  • Rule based validation returning coded errors

# Loading

	cfg, err := monkconfig.Discover(monkconfig.DiscoveryOptions{
		ExplicitPath: flagPath,
		PathEnvVar:   "MONK_CONFIG",
		Paths:        []string{"."},
		Filenames:    []string{"monk"},
		Extensions:   []string{".toml", ".yaml"},
		EnvPrefix:    "MONK",
		Defaults:     defaults,
	})

	depth := cfg.GetInt("frontend.max_depth", 256)
	level := cfg.GetString("log.level", "info")

# Validation

	result := cfg.Validate(monkconfig.ValidationRules{
		"frontend.max_depth": {Type: "int", Min: monkconfig.IntBound(1)},
		"log.format":         {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
	})
	if err := result.Err(); err != nil {
		return err
	}
*/
package config
