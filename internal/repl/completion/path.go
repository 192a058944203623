package completion

import (
	"os"
	"path/filepath"
	"strings"
)

// osReadDir is a variable that can be overridden for testing.
var osReadDir = os.ReadDir

// PathProvider completes filesystem paths: files and directories under
// the directory implied by the partial's prefix, filtered against the
// remaining basename fragment. An inaccessible directory yields no
// suggestions rather than an error.
type PathProvider struct{}

func (PathProvider) Complete(ctx Context, partial string, matcher Matcher) []Suggestion {
	return completePaths(ctx, partial, matcher, false)
}

// DirectoryProvider is the PathProvider restricted to directories. It
// backs the argument completion of directory-changing commands.
type DirectoryProvider struct{}

func (DirectoryProvider) Complete(ctx Context, partial string, matcher Matcher) []Suggestion {
	return completePaths(ctx, partial, matcher, true)
}

func completePaths(ctx Context, partial string, matcher Matcher, onlyDirs bool) []Suggestion {
	// Split the partial into the directory prefix as typed (kept
	// verbatim in replacements) and the basename fragment to match.
	var typedDir, fragment string
	if idx := strings.LastIndex(partial, "/"); idx >= 0 {
		typedDir = partial[:idx+1]
		fragment = partial[idx+1:]
	} else {
		fragment = partial
	}

	entries, err := osReadDir(resolveDir(ctx, typedDir))
	if err != nil {
		return nil
	}

	var suggestions []Suggestion
	for _, entry := range entries {
		if onlyDirs && !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !matcher.Matches(name, fragment) {
			continue
		}
		display := name
		if entry.IsDir() {
			display += "/"
		}
		suggestions = append(suggestions, Suggestion{
			Replacement: typedDir + display,
			Display:     display,
		})
	}
	return suggestions
}

// resolveDir turns the typed directory prefix into the directory to
// enumerate, using the request's working directory for relative paths.
func resolveDir(ctx Context, typedDir string) string {
	switch {
	case typedDir == "":
		return ctx.Pwd
	case strings.HasPrefix(typedDir, "~/"):
		// typedDir is either empty or ends in "/", so a bare "~" cannot
		// reach here.
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return typedDir
		}
		return filepath.Join(homeDir, typedDir[2:])
	case filepath.IsAbs(typedDir):
		return typedDir
	default:
		return filepath.Join(ctx.Pwd, typedDir)
	}
}
