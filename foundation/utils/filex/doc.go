// Package filex provides the file system helpers the monk tools need to
// locate source files.
//
// Arguments on a command line may name files or directories. Expand turns
// them into a flat file list:
//
//	paths, err := filex.Expand([]string{"main.monk", "lib/"}, "*.monk")
//	// main.monk, lib/a.monk, lib/sub/b.monk
//
// Directories are walked recursively and hidden directories are skipped.
// Results of a directory walk are sorted so output is stable between runs.
package filex
