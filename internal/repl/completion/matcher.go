package completion

import (
	"strings"

	"github.com/quillshell/quill/internal/repl/config"
)

// Matcher decides whether a candidate completion matches the partial
// text the user has typed so far.
type Matcher interface {
	Matches(candidate, partial string) bool
}

// CaseSensitiveMatcher matches candidates by exact prefix. It is the
// default policy.
type CaseSensitiveMatcher struct{}

func (CaseSensitiveMatcher) Matches(candidate, partial string) bool {
	return strings.HasPrefix(candidate, partial)
}

// CaseInsensitiveMatcher matches candidates by prefix ignoring case.
type CaseInsensitiveMatcher struct{}

func (CaseInsensitiveMatcher) Matches(candidate, partial string) bool {
	return strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(partial))
}

// ResolveMatcher selects the matching policy from the configuration
// store's line_editor.completion_match_method key. Any failure along
// the lookup (nil store, missing section or key, non-string value)
// degrades to the case-sensitive default. This never fails.
func ResolveMatcher(store *config.Store) Matcher {
	method := ""
	if section, ok := store.Get("line_editor"); ok {
		if value, ok := section.Lookup("completion_match_method"); ok {
			if s, err := value.AsString(); err == nil {
				method = s
			}
		}
	}

	if method == "case-insensitive" {
		return CaseInsensitiveMatcher{}
	}
	return CaseSensitiveMatcher{}
}
