// Package parser implements the "lite" parse used by the quill line
// editor: a best-effort structural split of a single input line into
// spanned words grouped into commands and pipelines. It is tolerant by
// design so that completion can work mid-keystroke; the only failure
// it reports is an unclosed quote, and even then the salvaged block is
// carried inside the error.
package parser

import "strings"

// quoteChars are the characters that may wrap a word. There is no
// escape character inside a quoted value.
const quoteChars = "\"'`"

// Span is a half-open [Start, End) byte range into the input line.
type Span struct {
	Start int
	End   int
}

// Slice returns the text the span covers.
func (s Span) Slice(line string) string {
	if s.Start < 0 || s.End > len(line) || s.Start > s.End {
		return ""
	}
	return line[s.Start:s.End]
}

// Word is a single token of the line, quotes included.
type Word struct {
	Text string
	Span Span
}

// Command is one command invocation: a name followed by its words.
type Command struct {
	// Start is the offset where the command's text region begins,
	// directly after the preceding separator. It is meaningful even
	// when the command has no words yet (e.g. right after a pipe).
	Start int
	Words []Word
}

// Pipeline is a sequence of commands joined by pipes.
type Pipeline struct {
	Commands []Command
}

// Block is the structural result of parsing one input line.
type Block struct {
	Pipelines []Pipeline
}

// IsEmpty reports whether the block contains no words at all.
func (b *Block) IsEmpty() bool {
	if b == nil {
		return true
	}
	for _, p := range b.Pipelines {
		for _, c := range p.Commands {
			if len(c.Words) > 0 {
				return false
			}
		}
	}
	return true
}

// IncompleteError reports a line that ended inside a quoted word. The
// salvaged partial block is still usable for completion.
type IncompleteError struct {
	Quote   byte
	Partial *Block
}

func (e *IncompleteError) Error() string {
	return "unexpected end of line while looking for closing " + string(e.Quote)
}

// Parse splits line into a Block of spanned words. Word spans are
// offset by start, so callers completing a suffix of a larger buffer
// get spans into that buffer. An unclosed quote returns the partial
// block wrapped in *IncompleteError; every other input parses.
func Parse(line string, start int) (*Block, error) {
	block := &Block{}
	pipeline := Pipeline{}
	command := Command{Start: start}
	var openQuote byte

	// Empty commands are kept on purpose: after "ls | " the cursor sits
	// in a command region that has no words yet, and the classifier
	// needs its start offset.
	flushCommand := func(nextStart int) {
		pipeline.Commands = append(pipeline.Commands, command)
		command = Command{Start: nextStart}
	}
	flushPipeline := func(nextStart int) {
		flushCommand(nextStart)
		block.Pipelines = append(block.Pipelines, pipeline)
		pipeline = Pipeline{}
	}

	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '|':
			flushCommand(start + i + 1)
			i++
		case c == ';':
			flushPipeline(start + i + 1)
			i++
		default:
			wordStart := i
			for i < len(line) {
				c := line[i]
				if openQuote != 0 {
					if c == openQuote {
						openQuote = 0
					}
					i++
					continue
				}
				if c == ' ' || c == '\t' || c == '|' || c == ';' {
					break
				}
				if strings.IndexByte(quoteChars, c) >= 0 {
					openQuote = c
				}
				i++
			}
			command.Words = append(command.Words, Word{
				Text: line[wordStart:i],
				Span: Span{Start: start + wordStart, End: start + i},
			})
		}
	}
	flushPipeline(start + len(line))

	if openQuote != 0 {
		return nil, &IncompleteError{Quote: openQuote, Partial: block}
	}
	return block, nil
}
