// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates the monk configuration file from an explicit path, an
//              environment variable or a list of search paths, and falls back
//              to defaults when no file exists.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Discovery with explicit path, env var and search paths

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	monkerror "github.com/msto63/monk/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	ExplicitPath string                 // Path given by the user; must exist when set
	PathEnvVar   string                 // Environment variable naming a config file
	Paths        []string               // Directories to search for config files
	Filenames    []string               // Base filenames to look for (without extension)
	Extensions   []string               // File extensions to try
	EnvPrefix    string                 // Environment variable prefix for overrides
	Defaults     map[string]interface{} // Values used below any file
	Required     bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the discovery rules of the monk CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		PathEnvVar: "MONK_CONFIG",
		Paths:      []string{"."},
		Filenames:  []string{"monk"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "MONK",
		Required:   false,
	}
}

// Discover finds and loads a configuration file. The explicit path wins over
// the path environment variable, which wins over the search paths.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	if options.ExplicitPath != "" {
		return LoadWithOptions(options.ExplicitPath, loadOptions)
	}

	if options.PathEnvVar != "" {
		if path := os.Getenv(options.PathEnvVar); path != "" {
			cfg, err := LoadWithOptions(path, loadOptions)
			if err != nil {
				return nil, monkerror.Wrap(err, fmt.Sprintf("config file from %s", options.PathEnvVar)).
					WithOperation("config.Discover")
			}
			return cfg, nil
		}
	}

	if path, err := FindConfigFile(options); err == nil {
		cfg, err := LoadWithOptions(path, loadOptions)
		if err != nil {
			return nil, monkerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
		return cfg, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, monkerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(monkerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return FromMap(options.Defaults, options.EnvPrefix), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", monkerror.New("configuration file not found").
		WithCode(monkerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}
