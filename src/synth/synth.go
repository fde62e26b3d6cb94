// Package synth produces concrete commit messages from catalog templates and
// a change analysis.
package synth

import (
	"fmt"
	"strings"
	"time"

	"gca/src/analyzer"
	"gca/src/catalog"
)

const dateBucketLayout = "20060102"

// Message is a synthesized, ready-to-commit message. Version is the counter
// value the commit will take once confirmed.
type Message struct {
	Category   string
	Template   string
	Text       string
	CounterKey string
	Version    int
}

type Preview struct {
	Message
	// Score counts the placeholders filled from the analysis.
	Score int
}

type Synthesizer struct {
	DateBucket bool
	Now        func() time.Time
}

func New(dateBucket bool) *Synthesizer {
	return &Synthesizer{DateBucket: dateBucket, Now: time.Now}
}

// CounterKey is category, or category-YYYYMMDD when date buckets are on.
func CounterKey(category string, now time.Time, dateBucket bool) string {
	if !dateBucket {
		return category
	}
	return category + "-" + now.Format(dateBucketLayout)
}

func (s *Synthesizer) Key(category string) string {
	return CounterKey(category, s.now(), s.DateBucket)
}

// Synthesize fills template and appends the " (vN)" counter suffix, where N is
// one past the current counter. Counters are only read.
func (s *Synthesizer) Synthesize(category, template string, a analyzer.Analysis, counters map[string]int) Message {
	filled, _ := fill(template, a)
	return s.finish(category, template, filled, counters)
}

// Previews synthesizes every template, ranks them by how many placeholders
// the analysis could fill (stable on catalog order) and drops duplicates.
func (s *Synthesizer) Previews(category string, templates []string, a analyzer.Analysis, counters map[string]int) []Preview {
	previews := make([]Preview, 0, len(templates))
	seen := make(map[string]bool, len(templates))
	for _, tmpl := range templates {
		filled, hits := fill(tmpl, a)
		if seen[filled] {
			continue
		}
		seen[filled] = true
		previews = append(previews, Preview{
			Message: s.finish(category, tmpl, filled, counters),
			Score:   hits,
		})
	}

	// insertion sort keeps equal scores in catalog order
	for i := 1; i < len(previews); i++ {
		for j := i; j > 0 && previews[j].Score > previews[j-1].Score; j-- {
			previews[j], previews[j-1] = previews[j-1], previews[j]
		}
	}
	return previews
}

// Custom turns free text into a message. The category comes from a leading
// "type:" the catalog recognises; otherwise the text is filed under
// catalog.DefaultCategory and given that prefix.
func (s *Synthesizer) Custom(cat *catalog.Catalog, text string, counters map[string]int) Message {
	return s.CustomIn(cat, catalog.DefaultCategory, text, counters)
}

// CustomIn is Custom with fallback used in place of the default category.
func (s *Synthesizer) CustomIn(cat *catalog.Catalog, fallback, text string, counters map[string]int) Message {
	text = strings.TrimSpace(text)
	category, detected := cat.DetectCategory(text)
	if !detected {
		category = fallback
		text = category + ": " + text
	}
	return s.finish(category, "", text, counters)
}

// Resuffix recomputes the counter suffix for text edited by the user. When
// the edit names a different known category in its "type:" prefix, the message
// moves to that category's counter. The suffix goes on the subject line when
// the edit added a body.
func (s *Synthesizer) Resuffix(cat *catalog.Catalog, m Message, edited string, counters map[string]int) Message {
	edited = strings.TrimSpace(edited)
	if category, detected := cat.DetectCategory(edited); detected && category != m.Category {
		m.Category = category
		m.Template = ""
		m.CounterKey = s.Key(category)
		m.Version = counters[m.CounterKey] + 1
	}

	subject, body, hasBody := strings.Cut(edited, "\n")
	m.Text = strings.TrimSpace(subject) + suffix(m.Version)
	if hasBody {
		m.Text += "\n" + body
	}
	return m
}

func (s *Synthesizer) finish(category, template, filled string, counters map[string]int) Message {
	key := s.Key(category)
	version := counters[key] + 1
	return Message{
		Category:   category,
		Template:   template,
		Text:       filled + suffix(version),
		CounterKey: key,
		Version:    version,
	}
}

// StripSuffix removes a trailing " (vN)" counter suffix from text.
func StripSuffix(text string, version int) string {
	return strings.TrimSuffix(text, suffix(version))
}

func suffix(version int) string {
	return fmt.Sprintf(" (v%d)", version)
}

func (s *Synthesizer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
