package completion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDirectory creates a test directory structure for path
// completion tests.
// Structure:
//
//	tmpDir/
//	  local.txt
//	  lock.txt
//	  notes.md
//	  local/
//	    inner.txt
//	  logs/
func setupTestDirectory(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	files := []string{"local.txt", "lock.txt", "notes.md", "local/inner.txt"}
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("test"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "logs"), 0755))

	return tmpDir
}

func replacements(suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Replacement)
	}
	return out
}

func TestPathProviderRelative(t *testing.T) {
	tmpDir := setupTestDirectory(t)
	ctx := Context{Pwd: tmpDir}

	suggestions := PathProvider{}.Complete(ctx, "lo", CaseSensitiveMatcher{})
	assert.Equal(t, []string{"local/", "local.txt", "lock.txt", "logs/"}, replacements(suggestions))
}

func TestPathProviderAbsolutePrefix(t *testing.T) {
	tmpDir := setupTestDirectory(t)
	ctx := Context{Pwd: "/irrelevant"}

	partial := tmpDir + "/loc"
	suggestions := PathProvider{}.Complete(ctx, partial, CaseSensitiveMatcher{})
	assert.Equal(t, []string{
		tmpDir + "/local/",
		tmpDir + "/local.txt",
		tmpDir + "/lock.txt",
	}, replacements(suggestions))

	// Display omits the directory prefix.
	assert.Equal(t, "local/", suggestions[0].Display)
}

func TestPathProviderSubdirectory(t *testing.T) {
	tmpDir := setupTestDirectory(t)
	ctx := Context{Pwd: tmpDir}

	suggestions := PathProvider{}.Complete(ctx, "local/", CaseSensitiveMatcher{})
	assert.Equal(t, []string{"local/inner.txt"}, replacements(suggestions))
}

func TestPathProviderNoMatches(t *testing.T) {
	tmpDir := setupTestDirectory(t)
	ctx := Context{Pwd: tmpDir}

	suggestions := PathProvider{}.Complete(ctx, "zzz", CaseSensitiveMatcher{})
	assert.Empty(t, suggestions)
}

func TestPathProviderInaccessibleDirectory(t *testing.T) {
	ctx := Context{Pwd: "/does/not/exist"}

	suggestions := PathProvider{}.Complete(ctx, "lo", CaseSensitiveMatcher{})
	assert.Empty(t, suggestions)
}

func TestPathProviderCaseInsensitive(t *testing.T) {
	tmpDir := setupTestDirectory(t)
	ctx := Context{Pwd: tmpDir}

	suggestions := PathProvider{}.Complete(ctx, "LO", CaseInsensitiveMatcher{})
	assert.Equal(t, []string{"local/", "local.txt", "lock.txt", "logs/"}, replacements(suggestions))
}

func TestDirectoryProviderFiltersFiles(t *testing.T) {
	tmpDir := setupTestDirectory(t)
	ctx := Context{Pwd: tmpDir}

	suggestions := DirectoryProvider{}.Complete(ctx, "lo", CaseSensitiveMatcher{})
	assert.Equal(t, []string{"local/", "logs/"}, replacements(suggestions))
}
