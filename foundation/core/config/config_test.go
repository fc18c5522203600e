// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, defaults, environment overrides,
//              discovery and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	monkerror "github.com/msto63/monk/foundation/core/error"
)

const tomlContent = `
[log]
level = "debug"
format = "json"

[frontend]
max_depth = 64
recover = true
`

const yamlContent = `
log:
  level: warn
frontend:
  max_input_length: 2048
  concurrency: 2
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "info",
			"format": "console",
		},
		"frontend": map[string]interface{}{
			"max_input_length": 1048576,
			"max_depth":        256,
			"recover":          false,
			"concurrency":      4,
		},
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "monk.toml", tomlContent))
		require.NoError(t, err)

		assert.Equal(t, FormatTOML, cfg.Format())
		assert.Equal(t, "debug", cfg.GetString("log.level"))
		assert.Equal(t, 64, cfg.GetInt("frontend.max_depth"))
		assert.True(t, cfg.GetBool("frontend.recover"))
		assert.Equal(t, 7, cfg.GetInt("frontend.missing", 7))
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, dir, "monk.yaml", yamlContent))
		require.NoError(t, err)

		assert.Equal(t, FormatYAML, cfg.Format())
		assert.Equal(t, "warn", cfg.GetString("log.level"))
		assert.Equal(t, 2048, cfg.GetInt("frontend.max_input_length"))
		assert.Equal(t, 2, cfg.GetInt("frontend.concurrency"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.toml"))
		require.Error(t, err)
		assert.Equal(t, monkerror.CodeNotFound, monkerror.GetCode(err))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		require.Error(t, err)
		assert.Equal(t, monkerror.CodeInvalidInput, monkerror.GetCode(err))
	})

	t.Run("broken TOML", func(t *testing.T) {
		_, err := Load(writeFile(t, dir, "broken.toml", "[log\nlevel = "))
		require.Error(t, err)
		assert.Equal(t, monkerror.CodeInvalidConfig, monkerror.GetCode(err))
	})
}

func TestLoadWithDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadWithOptions(writeFile(t, dir, "monk.toml", tomlContent), LoadOptions{
		Format:   FormatAuto,
		Defaults: defaults(),
	})
	require.NoError(t, err)

	// Values from the file win, siblings keep their defaults
	assert.Equal(t, "debug", cfg.GetString("log.level"))
	assert.Equal(t, "json", cfg.GetString("log.format"))
	assert.Equal(t, 64, cfg.GetInt("frontend.max_depth"))
	assert.Equal(t, 1048576, cfg.GetInt("frontend.max_input_length"))
	assert.Equal(t, 4, cfg.GetInt("frontend.concurrency"))

	// The defaults map itself is not modified
	d := defaults()
	assert.Equal(t, 256, d["frontend"].(map[string]interface{})["max_depth"])
}

func TestEnvironmentOverrides(t *testing.T) {
	cfg := FromMap(defaults(), "MONK")

	t.Setenv("MONK_FRONTEND_MAX_DEPTH", "32")
	t.Setenv("MONK_LOG_LEVEL", "trace")
	t.Setenv("MONK_FRONTEND_RECOVER", "true")
	t.Setenv("MONK_FRONTEND_CONCURRENCY", "not-a-number")

	assert.Equal(t, 32, cfg.GetInt("frontend.max_depth"))
	assert.Equal(t, "trace", cfg.GetString("log.level"))
	assert.True(t, cfg.GetBool("frontend.recover"))
	assert.Equal(t, 4, cfg.GetInt("frontend.concurrency"), "unparsable override falls back to the file value")

	plain := FromMap(defaults(), "")
	assert.Equal(t, 256, plain.GetInt("frontend.max_depth"), "no prefix means no overrides")
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.GetString("log.format"))

	cfg, err = LoadFromString("", FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, cfg.Keys())

	_, err = LoadFromString("log: [", FormatYAML)
	require.Error(t, err)
	assert.True(t, monkerror.HasCode(err, monkerror.CodeInvalidConfig))
}

func TestSetAndAccessors(t *testing.T) {
	cfg := FromMap(defaults(), "")

	assert.True(t, cfg.Has("log.level"))
	assert.False(t, cfg.Has("log.nothing"))
	assert.False(t, cfg.Has("frontend.max_depth.deeper"))

	cfg.Set("output.style", "plain")
	assert.Equal(t, "plain", cfg.GetString("output.style"))

	assert.Equal(t, []string{
		"frontend.concurrency",
		"frontend.max_depth",
		"frontend.max_input_length",
		"frontend.recover",
		"log.format",
		"log.level",
		"output.style",
	}, cfg.Keys())

	all := cfg.GetAll()
	all["log"].(map[string]interface{})["level"] = "changed"
	assert.Equal(t, "info", cfg.GetString("log.level"), "GetAll returns a copy")

	assert.Contains(t, cfg.String(), "keys: 3")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "monk.yaml", yamlContent)

	options := DefaultDiscoveryOptions()
	options.Paths = []string{dir}
	options.Defaults = defaults()

	t.Run("search paths", func(t *testing.T) {
		t.Setenv("MONK_CONFIG", "")
		cfg, err := Discover(options)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "monk.yaml"), cfg.FilePath())
		assert.Equal(t, "warn", cfg.GetString("log.level"))
		assert.Equal(t, "console", cfg.GetString("log.format"))
	})

	t.Run("path from environment", func(t *testing.T) {
		other := writeFile(t, t.TempDir(), "custom.toml", tomlContent)
		t.Setenv("MONK_CONFIG", other)

		cfg, err := Discover(options)
		require.NoError(t, err)
		assert.Equal(t, other, cfg.FilePath())
		assert.Equal(t, "debug", cfg.GetString("log.level"))
	})

	t.Run("explicit path wins", func(t *testing.T) {
		explicit := writeFile(t, t.TempDir(), "explicit.toml", "[log]\nlevel = \"error\"\n")
		t.Setenv("MONK_CONFIG", filepath.Join(dir, "monk.yaml"))

		opts := options
		opts.ExplicitPath = explicit
		cfg, err := Discover(opts)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.GetString("log.level"))
	})

	t.Run("missing explicit path", func(t *testing.T) {
		opts := options
		opts.ExplicitPath = filepath.Join(dir, "nope.toml")
		_, err := Discover(opts)
		require.Error(t, err)
		assert.Equal(t, monkerror.CodeNotFound, monkerror.GetCode(err))
	})

	t.Run("nothing found falls back to defaults", func(t *testing.T) {
		t.Setenv("MONK_CONFIG", "")
		opts := options
		opts.Paths = []string{t.TempDir()}

		cfg, err := Discover(opts)
		require.NoError(t, err)
		assert.Empty(t, cfg.FilePath())
		assert.Equal(t, 256, cfg.GetInt("frontend.max_depth"))
	})

	t.Run("nothing found but required", func(t *testing.T) {
		t.Setenv("MONK_CONFIG", "")
		opts := options
		opts.Paths = []string{t.TempDir()}
		opts.Required = true

		_, err := Discover(opts)
		require.Error(t, err)
		assert.Equal(t, monkerror.CodeNotFound, monkerror.GetCode(err))
	})
}

func TestValidate(t *testing.T) {
	rules := ValidationRules{
		"log.level":          {Required: true, Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"frontend.max_depth": {Type: "int", Min: IntBound(1), Max: IntBound(4096)},
		"frontend.recover":   {Type: "bool"},
		"frontend.optional":  {Type: "int"},
	}

	t.Run("valid", func(t *testing.T) {
		result := FromMap(defaults(), "").Validate(rules)
		assert.True(t, result.Valid)
		assert.NoError(t, result.Err())
	})

	t.Run("invalid", func(t *testing.T) {
		cfg, err := LoadFromString(`
[log]
level = "loud"

[frontend]
max_depth = 0
recover = "yes"
`, FormatTOML)
		require.NoError(t, err)

		result := cfg.Validate(rules)
		require.False(t, result.Valid)
		require.Len(t, result.Errors, 3)
		assert.Contains(t, result.Errors[0], "max_depth")
		assert.Contains(t, result.Errors[1], "must be a boolean")
		assert.Contains(t, result.Errors[2], "is not one of")

		err = result.Err()
		require.Error(t, err)
		assert.Equal(t, monkerror.CodeInvalidConfig, monkerror.GetCode(err))
	})

	t.Run("missing required", func(t *testing.T) {
		result := FromMap(map[string]interface{}{}, "").Validate(rules)
		require.False(t, result.Valid)
		assert.Equal(t, []string{"required field 'log.level' is missing"}, result.Errors)
	})
}
