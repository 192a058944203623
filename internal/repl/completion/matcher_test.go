package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillshell/quill/internal/repl/config"
)

func TestCaseSensitiveMatcher(t *testing.T) {
	m := CaseSensitiveMatcher{}
	assert.True(t, m.Matches("Foo", "Fo"))
	assert.False(t, m.Matches("Foo", "fo"))
	assert.True(t, m.Matches("anything", ""))
	assert.False(t, m.Matches("Fo", "Foo"))
}

func TestCaseInsensitiveMatcher(t *testing.T) {
	m := CaseInsensitiveMatcher{}
	assert.True(t, m.Matches("Foo", "fo"))
	assert.True(t, m.Matches("foo", "FO"))
	assert.False(t, m.Matches("bar", "fo"))
}

func TestResolveMatcher(t *testing.T) {
	parse := func(t *testing.T, yaml string) *config.Store {
		t.Helper()
		store, err := config.Parse([]byte(yaml))
		require.NoError(t, err)
		return store
	}

	tests := []struct {
		name            string
		store           *config.Store
		caseInsensitive bool
	}{
		{
			name:            "nil store defaults to case-sensitive",
			store:           nil,
			caseInsensitive: false,
		},
		{
			name:            "empty store defaults to case-sensitive",
			store:           &config.Store{},
			caseInsensitive: false,
		},
		{
			name:            "case-insensitive selected",
			store:           parse(t, "line_editor:\n  completion_match_method: case-insensitive\n"),
			caseInsensitive: true,
		},
		{
			name:            "unrecognized value defaults to case-sensitive",
			store:           parse(t, "line_editor:\n  completion_match_method: fuzzy\n"),
			caseInsensitive: false,
		},
		{
			name:            "key absent defaults to case-sensitive",
			store:           parse(t, "line_editor:\n  other: 1\n"),
			caseInsensitive: false,
		},
		{
			name:            "non-string value defaults to case-sensitive",
			store:           parse(t, "line_editor:\n  completion_match_method: [a, b]\n"),
			caseInsensitive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ResolveMatcher(tt.store)
			assert.Equal(t, tt.caseInsensitive, m.Matches("Foo", "fo"))
			assert.True(t, m.Matches("Foo", "Fo"))
		})
	}
}
