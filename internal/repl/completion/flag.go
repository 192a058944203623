package completion

// FlagProvider completes the declared flags of a single command. An
// unknown command yields no suggestions rather than an error.
type FlagProvider struct {
	Cmd string
}

func (f FlagProvider) Complete(ctx Context, partial string, matcher Matcher) []Suggestion {
	if ctx.Registry == nil {
		return nil
	}
	sig, ok := ctx.Registry.Signature(f.Cmd)
	if !ok {
		return nil
	}

	var suggestions []Suggestion
	for _, flag := range sig.Flags {
		long := "--" + flag.Long
		if matcher.Matches(long, partial) {
			suggestions = append(suggestions, Suggestion{Replacement: long, Display: long})
		}
		if flag.Short != "" {
			short := "-" + flag.Short
			if matcher.Matches(short, partial) {
				suggestions = append(suggestions, Suggestion{Replacement: short, Display: short})
			}
		}
	}
	return suggestions
}
