// File: filex.go
// Title: Source File Discovery
// Description: File system helpers used to turn command-line arguments into
//              a list of source files. Directories are searched recursively
//              for files matching a name pattern; plain files pass through.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with existence checks and
//                      pattern search

package filex

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	monkerror "github.com/msto63/monk/foundation/core/error"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FindFiles returns the regular files below root whose base name matches
// pattern, in lexical order. Hidden directories are not entered; root itself
// is always searched.
func FindFiles(root, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, monkerror.Wrap(err, "invalid file pattern").
			WithCode(monkerror.CodeInvalidInput).
			WithDetail("pattern", pattern)
	}

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		// pattern was validated above
		if matched, _ := filepath.Match(pattern, d.Name()); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, monkerror.Wrap(err, "error during file search").
			WithCode(monkerror.CodeInvalidInput).
			WithDetail("root", root)
	}

	sort.Strings(matches)
	return matches, nil
}

// Expand replaces every directory in paths with the files below it that match
// pattern. Other entries, including paths that do not exist, are kept as
// given so the caller reports them when it reads them. Order is preserved and
// a file named twice is listed once.
func Expand(paths []string, pattern string) ([]string, error) {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, p := range paths {
		if !IsDir(p) {
			add(p)
			continue
		}
		found, err := FindFiles(p, pattern)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return out, nil
}
