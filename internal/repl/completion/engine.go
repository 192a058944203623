package completion

import (
	"strings"

	"github.com/quillshell/quill/internal/repl/parser"
	"github.com/quillshell/quill/internal/repl/registry"
)

// LocationType tags what kind of syntactic element a completion
// location covers. The set is closed, so locations are a tagged
// variant rather than an interface.
type LocationType int

const (
	// LocationCommand is a command name position.
	LocationCommand LocationType = iota
	// LocationFlag is a flag of a known command.
	LocationFlag
	// LocationArgument is a positional or named argument of a command.
	LocationArgument
	// LocationVariable is a variable reference. Recognized but never
	// completed.
	LocationVariable
)

// AnyArgument is the sentinel argument name meaning "any argument of
// this command". Using an explicit sentinel keeps "argument name
// present but unmapped" and "argument name absent" on the same lookup
// path.
const AnyArgument = ""

// CompletionLocation is a classifier-identified span of the input line
// paired with what occupies it.
type CompletionLocation struct {
	Span parser.Span
	Type LocationType
	// Command is the owning command name for flag and argument
	// locations.
	Command string
	// Argument is the argument name for argument locations, or
	// AnyArgument when the specific argument is unknown.
	Argument string
}

// Locate classifies the block against the cursor position and returns
// the completion locations the cursor touches, in line order. A word
// is touched when the cursor is inside it or immediately after it.
// Argument locations carry the command's declared positional name when
// the registry knows it, and AnyArgument otherwise.
func Locate(line string, block *parser.Block, pos int, reg registry.Registry) []CompletionLocation {
	if block == nil {
		return nil
	}

	// Commands are flattened across pipelines so each region ends where
	// the next one begins, regardless of the separator kind.
	var commands []parser.Command
	for _, pipeline := range block.Pipelines {
		commands = append(commands, pipeline.Commands...)
	}

	var locations []CompletionLocation
	for i, command := range commands {
		end := commandRegionEnd(line, commands, i)
		if pos < command.Start || pos > end {
			continue
		}
		locations = append(locations, locateInCommand(command, pos, reg)...)
	}
	return locations
}

// commandRegionEnd returns the last cursor position that still belongs
// to the i-th command's region.
func commandRegionEnd(line string, commands []parser.Command, i int) int {
	if i+1 < len(commands) {
		// Up to the separator before the next command.
		return commands[i+1].Start - 1
	}
	return len(line)
}

func locateInCommand(command parser.Command, pos int, reg registry.Registry) []CompletionLocation {
	if len(command.Words) == 0 {
		return []CompletionLocation{{
			Span: parser.Span{Start: pos, End: pos},
			Type: LocationCommand,
		}}
	}

	head := command.Words[0]
	if pos <= head.Span.End {
		if pos < head.Span.Start {
			// Cursor in the whitespace before the command name.
			return []CompletionLocation{{
				Span: parser.Span{Start: pos, End: pos},
				Type: LocationCommand,
			}}
		}
		kind := LocationCommand
		if strings.HasPrefix(head.Text, "$") {
			kind = LocationVariable
		}
		return []CompletionLocation{{Span: head.Span, Type: kind}}
	}

	cmdName := head.Text
	rest := command.Words[1:]
	for i, word := range rest {
		if pos < word.Span.Start || pos > word.Span.End {
			continue
		}
		return []CompletionLocation{classifyWord(word, cmdName, positionalIndex(rest, i), reg)}
	}

	// Cursor in whitespace between words: a fresh argument filling the
	// next positional slot.
	index := 0
	for _, word := range rest {
		if word.Span.End < pos && !strings.HasPrefix(word.Text, "-") {
			index++
		}
	}
	return []CompletionLocation{{
		Span:     parser.Span{Start: pos, End: pos},
		Type:     LocationArgument,
		Command:  cmdName,
		Argument: positionalName(reg, cmdName, index),
	}}
}

func classifyWord(word parser.Word, cmdName string, index int, reg registry.Registry) CompletionLocation {
	switch {
	case strings.HasPrefix(word.Text, "$"):
		return CompletionLocation{Span: word.Span, Type: LocationVariable}
	case strings.HasPrefix(word.Text, "-"):
		return CompletionLocation{Span: word.Span, Type: LocationFlag, Command: cmdName}
	default:
		return CompletionLocation{
			Span:     word.Span,
			Type:     LocationArgument,
			Command:  cmdName,
			Argument: positionalName(reg, cmdName, index),
		}
	}
}

// positionalIndex returns the positional slot the i-th word fills:
// the number of non-flag words before it.
func positionalIndex(words []parser.Word, i int) int {
	index := 0
	for _, word := range words[:i] {
		if !strings.HasPrefix(word.Text, "-") {
			index++
		}
	}
	return index
}

// positionalName resolves a positional slot to the command's declared
// positional name. Unknown commands and slots beyond the declaration
// map to AnyArgument.
func positionalName(reg registry.Registry, cmdName string, index int) string {
	if reg == nil {
		return AnyArgument
	}
	sig, ok := reg.Signature(cmdName)
	if !ok || index >= len(sig.Positionals) {
		return AnyArgument
	}
	return sig.Positionals[index].Name
}
