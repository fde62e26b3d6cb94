package store

import (
	"encoding/json"
	"fmt"

	"gca/src/analyzer"
)

const (
	DefaultPreferredBranch = "main"
	maxRecentComponents    = 10
)

const (
	keyFrequentTerms    = "frequent_terms"
	keyRecentComponents = "recent_components"
	keyCustomTemplates  = "custom_templates"
	keyPreferredBranch  = "preferred_branch"
)

// Config is the learned state kept between sessions. Keys this version does
// not know about are carried through load and save untouched.
type Config struct {
	FrequentTerms    *analyzer.TermFrequency
	RecentComponents []string
	CustomTemplates  map[string][]string
	PreferredBranch  string

	extra map[string]json.RawMessage
}

func DefaultConfig() *Config {
	return &Config{
		FrequentTerms:    analyzer.NewTermFrequency(),
		RecentComponents: []string{},
		CustomTemplates:  map[string][]string{},
		PreferredBranch:  DefaultPreferredBranch,
	}
}

// RememberComponents puts components at the front of RecentComponents,
// without duplicates, keeping at most ten entries.
func (c *Config) RememberComponents(components []string) {
	merged := make([]string, 0, maxRecentComponents)
	seen := make(map[string]bool)
	for _, list := range [][]string{components, c.RecentComponents} {
		for _, name := range list {
			if name == "" || seen[name] || len(merged) == maxRecentComponents {
				continue
			}
			seen[name] = true
			merged = append(merged, name)
		}
	}
	c.RecentComponents = merged
}

func (c *Config) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("config must be a JSON object")
	}

	cfg := DefaultConfig()
	cfg.extra = make(map[string]json.RawMessage)
	for key, value := range raw {
		var err error
		switch key {
		case keyFrequentTerms:
			err = decodeUnlessNull(value, cfg.FrequentTerms)
		case keyRecentComponents:
			err = decodeUnlessNull(value, &cfg.RecentComponents)
		case keyCustomTemplates:
			err = decodeUnlessNull(value, &cfg.CustomTemplates)
		case keyPreferredBranch:
			err = decodeUnlessNull(value, &cfg.PreferredBranch)
		default:
			cfg.extra[key] = value
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	if cfg.RecentComponents == nil {
		cfg.RecentComponents = []string{}
	}
	if cfg.CustomTemplates == nil {
		cfg.CustomTemplates = map[string][]string{}
	}
	if cfg.PreferredBranch == "" {
		cfg.PreferredBranch = DefaultPreferredBranch
	}
	*c = *cfg
	return nil
}

func (c *Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.extra)+4)
	for key, value := range c.extra {
		out[key] = value
	}

	terms := c.FrequentTerms
	if terms == nil {
		terms = analyzer.NewTermFrequency()
	}
	out[keyFrequentTerms] = terms
	out[keyRecentComponents] = nonNilStrings(c.RecentComponents)
	custom := c.CustomTemplates
	if custom == nil {
		custom = map[string][]string{}
	}
	out[keyCustomTemplates] = custom
	out[keyPreferredBranch] = c.PreferredBranch
	return json.Marshal(out)
}

func decodeUnlessNull(value json.RawMessage, target any) error {
	if string(value) == "null" {
		return nil
	}
	return json.Unmarshal(value, target)
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
