package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/olegskl/cssreport"
)

// scanFiles expands glob patterns against root and loads every match into
// a buffered record, in path order.
//
// Two-layer filtering:
// 1. Directory check: glob patterns may match directories, skip those.
// 2. Gitignore check: skip gitignored files (graceful when no .gitignore).
func scanFiles(root string, patterns []string) ([]cssreport.File, error) {
	gi := loadGitIgnore(root)

	seen := make(map[string]bool)
	var paths []string
	fsys := os.DirFS(root)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			if gi != nil && gi.MatchesPath(match) {
				continue
			}
			paths = append(paths, match)
		}
	}
	// Deterministic report order across patterns
	sort.Strings(paths)

	files := make([]cssreport.File, 0, len(paths))
	for _, rel := range paths {
		full := filepath.Join(root, rel)
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		// #nosec G304 - path comes from the user's own glob patterns
		contents, err := os.ReadFile(full)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}
		files = append(files, &cssreport.BufferFile{FilePath: full, Contents: contents})
	}
	return files, nil
}

// loadGitIgnore loads root's .gitignore if present. Gracefully degrades to
// nil when there is none.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
