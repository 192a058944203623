// Package completion implements tab completion for the quill REPL.
// Given the raw input line and the cursor position it classifies what
// the cursor sits on (a command name, a flag, an argument, a variable
// reference), routes the partial text to a matching suggestion
// provider, and returns the replacement span start plus the ordered
// candidate list. Completion is advisory: no input ever produces an
// error, only an empty result.
package completion

import "github.com/quillshell/quill/internal/repl/registry"

// Suggestion is a single completion candidate.
type Suggestion struct {
	// Replacement is the text that should replace the located span.
	Replacement string
	// Display is what the UI shows the user. It may differ from
	// Replacement, e.g. to omit a path prefix.
	Display string
}

// Context is the capability bundle providers draw on. It is supplied
// by the line-editing host on every request.
type Context struct {
	// Pwd is the current working directory, used to resolve relative
	// paths.
	Pwd string
	// Registry exposes the declared commands and their flags.
	Registry registry.Registry
}

// Provider produces completion candidates for one kind of syntactic
// element. Ordering must be deterministic for equal inputs; "no
// matches" and any provider-level I/O failure are both represented as
// an empty slice, never an error.
type Provider interface {
	Complete(ctx Context, partial string, matcher Matcher) []Suggestion
}
