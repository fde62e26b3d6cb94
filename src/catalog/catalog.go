// Package catalog holds the commit message templates offered for each commit
// category. Built-in templates are a constant table; user templates are kept
// separately and appended after them on lookup.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

const DefaultCategory = "chore"

var ErrUnknownCategory = errors.New("unknown category")

// Persister stores the complete set of custom templates.
type Persister func(custom map[string][]string) error

type Catalog struct {
	shared  map[string][]string
	custom  map[string][]string
	persist Persister
}

// New builds a catalog over the given custom templates. The map is copied. A
// nil persister keeps custom templates in memory only.
func New(custom map[string][]string, persist Persister) *Catalog {
	c := &Catalog{shared: make(map[string][]string), custom: make(map[string][]string), persist: persist}
	for category, templates := range custom {
		if len(templates) == 0 {
			continue
		}
		c.custom[category] = append([]string(nil), templates...)
	}
	return c
}

// Share adds templates from a project file. They are offered between the
// built-in and custom templates and are never persisted.
func (c *Catalog) Share(templates map[string][]string) {
	for category, list := range templates {
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "" {
			continue
		}
		for _, text := range list {
			if text = strings.TrimSpace(text); text != "" {
				c.shared[category] = append(c.shared[category], text)
			}
		}
	}
}

// Categories lists the built-in categories in menu order followed by any
// categories only shared or custom templates use, sorted.
func (c *Catalog) Categories() []string {
	categories := append([]string(nil), builtinCategories...)
	extra := make(map[string][]string)
	for category := range c.shared {
		extra[category] = nil
	}
	for category := range c.custom {
		extra[category] = nil
	}
	for _, category := range sortedKeys(extra) {
		if !IsBuiltin(category) {
			categories = append(categories, category)
		}
	}
	return categories
}

func IsBuiltin(category string) bool {
	return slices.Contains(builtinCategories, category)
}

func (c *Catalog) Known(category string) bool {
	if IsBuiltin(category) {
		return true
	}
	if _, ok := c.shared[category]; ok {
		return true
	}
	_, ok := c.custom[category]
	return ok
}

// TemplatesFor returns the built-in templates for category followed by the
// shared and then the custom ones.
func (c *Catalog) TemplatesFor(category string) ([]string, error) {
	if !c.Known(category) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	templates := append([]string(nil), defaultTemplates[category]...)
	templates = append(templates, c.shared[category]...)
	return append(templates, c.custom[category]...), nil
}

// Source names where text came from for category: "built-in", "project" or
// "custom". It is empty when category does not offer text.
func (c *Catalog) Source(category, text string) string {
	switch {
	case slices.Contains(defaultTemplates[category], text):
		return "built-in"
	case slices.Contains(c.shared[category], text):
		return "project"
	case slices.Contains(c.custom[category], text):
		return "custom"
	}
	return ""
}

// AddCustomTemplate appends text to category, creating the category if it does
// not exist yet, and persists the custom set.
func (c *Catalog) AddCustomTemplate(category, text string) error {
	category = strings.ToLower(strings.TrimSpace(category))
	text = strings.TrimSpace(text)
	if category == "" || text == "" {
		return errors.New("category and template text are required")
	}

	c.custom[category] = append(c.custom[category], text)
	if c.persist == nil {
		return nil
	}
	if err := c.persist(c.Custom()); err != nil {
		return fmt.Errorf("failed to save custom templates: %w", err)
	}
	return nil
}

func (c *Catalog) HasTemplate(category, text string) bool {
	templates, err := c.TemplatesFor(category)
	if err != nil {
		return false
	}
	return slices.Contains(templates, text)
}

// Custom returns a copy of the custom templates.
func (c *Catalog) Custom() map[string][]string {
	out := make(map[string][]string, len(c.custom))
	for category, templates := range c.custom {
		out[category] = append([]string(nil), templates...)
	}
	return out
}

// DetectCategory reports the category named by a message's "type:" prefix,
// or DefaultCategory when there is no prefix naming a known category.
func (c *Catalog) DetectCategory(message string) (category string, detected bool) {
	cType, _, _ := ParseMessage(strings.TrimSpace(message))
	if cType == "" {
		return DefaultCategory, false
	}
	category = baseType(cType)
	if !c.Known(category) {
		return DefaultCategory, false
	}
	return category, true
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
