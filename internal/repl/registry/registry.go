// Package registry stores the declaration data for quill commands.
// It answers the two questions the completion engine asks: which
// commands exist, and what flags and positionals a command declares.
package registry

import "sort"

// Flag describes a single declared flag of a command.
type Flag struct {
	// Long is the flag name without the leading dashes, e.g. "all".
	Long string
	// Short is the optional one-letter form without the dash, e.g. "a".
	Short string
	// Usage is a short human-readable description.
	Usage string
}

// Positional describes a declared positional argument of a command.
type Positional struct {
	Name  string
	Usage string
}

// Signature is the declared shape of a command.
type Signature struct {
	Name        string
	Usage       string
	Flags       []Flag
	Positionals []Positional
}

// Registry exposes command declarations to consumers such as the
// completion engine.
type Registry interface {
	// CommandNames returns all declared command names in sorted order.
	CommandNames() []string

	// Signature returns the declaration for a command, or false if the
	// command is unknown.
	Signature(name string) (*Signature, bool)
}

// StaticRegistry is a Registry backed by a fixed set of signatures.
// Contents are set at construction and never change for the lifetime
// of a shell session.
type StaticRegistry struct {
	signatures map[string]*Signature
}

// NewStaticRegistry creates a StaticRegistry from the given signatures.
func NewStaticRegistry(signatures ...Signature) *StaticRegistry {
	m := make(map[string]*Signature, len(signatures))
	for i := range signatures {
		sig := signatures[i]
		m[sig.Name] = &sig
	}
	return &StaticRegistry{signatures: m}
}

// CommandNames returns all declared command names in sorted order.
func (r *StaticRegistry) CommandNames() []string {
	names := make([]string, 0, len(r.signatures))
	for name := range r.signatures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Signature returns the declaration for a command, or false if the
// command is unknown.
func (r *StaticRegistry) Signature(name string) (*Signature, bool) {
	sig, ok := r.signatures[name]
	return sig, ok
}

// Builtins returns the signatures of quill's built-in commands.
func Builtins() []Signature {
	return []Signature{
		{
			Name:  "cd",
			Usage: "change the current directory",
			Flags: []Flag{
				{Long: "help", Short: "h", Usage: "display usage"},
			},
			Positionals: []Positional{
				{Name: "directory", Usage: "the directory to change to"},
			},
		},
		{
			Name:  "ls",
			Usage: "list directory contents",
			Flags: []Flag{
				{Long: "all", Short: "a", Usage: "include hidden entries"},
				{Long: "long", Short: "l", Usage: "long listing format"},
				{Long: "full-paths", Short: "f", Usage: "print full paths"},
				{Long: "help", Short: "h", Usage: "display usage"},
			},
			Positionals: []Positional{
				{Name: "path", Usage: "the path to list"},
			},
		},
		{
			Name:  "echo",
			Usage: "print the given values",
			Flags: []Flag{
				{Long: "no-newline", Short: "n", Usage: "suppress the trailing newline"},
			},
		},
		{
			Name:  "open",
			Usage: "load a file into the pipeline",
			Flags: []Flag{
				{Long: "raw", Short: "r", Usage: "do not parse the file contents"},
			},
			Positionals: []Positional{
				{Name: "path", Usage: "the file to open"},
			},
		},
		{
			Name:  "which",
			Usage: "locate a command",
			Positionals: []Positional{
				{Name: "command", Usage: "the command to locate"},
			},
		},
		{
			Name:  "help",
			Usage: "show help for commands",
			Positionals: []Positional{
				{Name: "command", Usage: "the command to describe"},
			},
		},
		{
			Name:  "exit",
			Usage: "leave the shell",
		},
	}
}
