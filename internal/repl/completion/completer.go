package completion

import (
	"errors"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/quillshell/quill/internal/repl/config"
	"github.com/quillshell/quill/internal/repl/parser"
)

// Completer routes completion requests to the appropriate provider.
// It holds one command provider, per-command flag providers, a
// two-level (command, argument) table of argument providers with
// AnyArgument as the "any" sentinel, and a default argument provider
// used when no command-specific entry exists. Bindings are fixed at
// construction for the lifetime of the shell session.
type Completer struct {
	command         Provider
	flag            map[string]Provider
	argument        map[string]map[string]Provider
	defaultArgument Provider

	store  *config.Store
	logger *zap.Logger
}

// NewCompleter creates a Completer with the default provider bindings:
// command names from the registry, generic flag completion, path
// completion for arguments, directory-only completion for cd, and
// command-name completion for which's command argument.
// A nil logger is replaced with a no-op logger.
func NewCompleter(store *config.Store, logger *zap.Logger) *Completer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Completer{
		command: CommandProvider{},
		flag:    map[string]Provider{},
		argument: map[string]map[string]Provider{
			"cd": {
				AnyArgument: DirectoryProvider{},
			},
			"which": {
				"command": CommandProvider{},
			},
		},
		defaultArgument: PathProvider{},
		store:           store,
		logger:          logger,
	}
}

// Complete returns the replacement start offset and the ordered
// completion candidates for the given line and cursor position. It
// never fails: collaborator errors degrade to an empty candidate list.
func (c *Completer) Complete(line string, pos int, ctx Context) (int, []Suggestion) {
	block := parseBestEffort(line)
	locations := Locate(line, block, pos, ctx.Registry)
	if len(locations) == 0 {
		return pos, nil
	}

	matcher := ResolveMatcher(c.store)

	// The replacement span is taken from the first location even when
	// later locations disagree. Observed upstream behavior, kept as-is.
	start := locations[0].Span.Start

	var suggestions []Suggestion
	for _, location := range locations {
		partial := location.Span.Slice(line)
		suggestions = append(suggestions, c.completeLocation(location, partial, ctx, matcher)...)
	}

	c.logger.Debug(
		"completion request",
		zap.String("line", line),
		zap.Int("pos", pos),
		zap.Int("locations", len(locations)),
		zap.Int("suggestions", len(suggestions)),
	)

	return start, suggestions
}

func (c *Completer) completeLocation(
	location CompletionLocation,
	partial string,
	ctx Context,
	matcher Matcher,
) []Suggestion {
	switch location.Type {
	case LocationCommand:
		return c.command.Complete(ctx, partial, matcher)

	case LocationFlag:
		provider, ok := c.flag[location.Command]
		if !ok {
			provider = FlagProvider{Cmd: location.Command}
		}
		return provider.Complete(ctx, partial, matcher)

	case LocationArgument:
		_, unquoted := Unquote(partial)
		provider := c.argumentProvider(location.Command, location.Argument)
		suggestions := provider.Complete(ctx, unquoted, matcher)
		return lo.Map(suggestions, func(s Suggestion, _ int) Suggestion {
			s.Replacement = Requote(s.Replacement)
			return s
		})

	case LocationVariable:
		// Variables are recognized but never completed.
		return nil

	default:
		return nil
	}
}

// argumentProvider resolves the provider for a (command, argument)
// pair through the fallback chain: the specific argument entry, then
// the command's any-argument entry, then the global default.
func (c *Completer) argumentProvider(cmd, arg string) Provider {
	if byArg, ok := c.argument[cmd]; ok {
		if provider, ok := byArg[arg]; ok {
			return provider
		}
		if provider, ok := byArg[AnyArgument]; ok {
			return provider
		}
	}
	return c.defaultArgument
}

// parseBestEffort returns whatever structure the parser could salvage
// from the line, or nil when there is none at all.
func parseBestEffort(line string) *parser.Block {
	block, err := parser.Parse(line, 0)
	if err != nil {
		var incomplete *parser.IncompleteError
		if errors.As(err, &incomplete) {
			return incomplete.Partial
		}
		return nil
	}
	return block
}
