package completion

// CommandProvider completes command names from the declared command
// registry.
type CommandProvider struct{}

func (CommandProvider) Complete(ctx Context, partial string, matcher Matcher) []Suggestion {
	if ctx.Registry == nil {
		return nil
	}

	var suggestions []Suggestion
	for _, name := range ctx.Registry.CommandNames() {
		if matcher.Matches(name, partial) {
			suggestions = append(suggestions, Suggestion{Replacement: name, Display: name})
		}
	}
	return suggestions
}
