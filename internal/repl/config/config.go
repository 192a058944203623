// Package config provides the configuration store consulted by the
// quill REPL. Configuration lives in a YAML file (~/.quill/config.yaml)
// organized into named sections of key/value pairs, e.g.:
//
//	line_editor:
//	  completion_match_method: case-insensitive
//
// Every lookup degrades gracefully: a missing file, section, key or a
// value of the wrong shape is reported as absent, never as a failure.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Value is a single configuration value of not-yet-determined shape.
type Value struct {
	raw any
}

// AsString returns the value as a string, or an error if the value is
// not a plain scalar string.
func (v Value) AsString() (string, error) {
	s, ok := v.raw.(string)
	if !ok {
		return "", fmt.Errorf("config value is %T, not a string", v.raw)
	}
	return s, nil
}

// Section is one named group of configuration keys.
type Section struct {
	entries map[string]any
}

// Lookup returns the value stored under key, or false if the key is
// absent from the section.
func (s *Section) Lookup(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	raw, ok := s.entries[key]
	if !ok {
		return Value{}, false
	}
	return Value{raw: raw}, true
}

// Store holds the parsed configuration for a shell session. The zero
// value is an empty store where every lookup reports absent.
type Store struct {
	sections map[string]map[string]any
}

// Get returns the named section, or false if it is absent.
func (s *Store) Get(name string) (*Section, bool) {
	if s == nil {
		return nil, false
	}
	entries, ok := s.sections[name]
	if !ok {
		return nil, false
	}
	return &Section{entries: entries}, true
}

// Parse builds a Store from raw YAML content.
func Parse(content []byte) (*Store, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &Store{sections: doc}, nil
}

// Load reads and parses the configuration file at path. A missing,
// unreadable or malformed file degrades to an empty store; Load never
// fails. Callers that need to surface malformed YAML use Parse.
func Load(path string) *Store {
	content, err := os.ReadFile(path)
	if err != nil {
		return &Store{}
	}
	store, err := Parse(content)
	if err != nil {
		return &Store{}
	}
	return store
}
