package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestScanFilesGlob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "styles/a.css", "a{}")
	writeFile(t, root, "styles/nested/b.css", "b{}")
	writeFile(t, root, "styles/readme.md", "not css")

	files, err := scanFiles(root, []string{"**/*.css"})
	require.NoError(t, err)

	require.Len(t, files, 2)
	require.Equal(t, filepath.Join(root, "styles/a.css"), files[0].Path())
	require.Equal(t, filepath.Join(root, "styles/nested/b.css"), files[1].Path())
	require.Equal(t, []byte("a{}"), files[0].Bytes())
	require.False(t, files[0].IsNull())
	require.False(t, files[0].IsStream())
}

func TestScanFilesDeduplicatesAcrossPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.css", "a{}")

	files, err := scanFiles(root, []string{"*.css", "**/*.css"})
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestScanFilesHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "dist/\n")
	writeFile(t, root, "a.css", "a{}")
	writeFile(t, root, "dist/bundle.css", "b{}")

	files, err := scanFiles(root, []string{"**/*.css"})
	require.NoError(t, err)

	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(root, "a.css"), files[0].Path())
}

func TestScanFilesBadPattern(t *testing.T) {
	root := t.TempDir()
	_, err := scanFiles(root, []string{"["})
	require.Error(t, err)
}

func TestScanFilesNoMatches(t *testing.T) {
	root := t.TempDir()
	files, err := scanFiles(root, []string{"**/*.css"})
	require.NoError(t, err)
	require.Empty(t, files)
}
