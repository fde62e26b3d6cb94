package synth

import (
	"fmt"
	"path/filepath"
	"strings"

	"gca/src/analyzer"
)

// Placeholders resolved from the first learned term, falling back to their
// own name.
var termPlaceholders = []string{
	"module", "feature", "form", "functionality", "process", "dependency",
	"folder", "test", "pipeline", "platform", "change", "document", "service/api",
}

const indexedComponents = 3

type resolution struct {
	token string
	value string
	// fromAnalysis is false when value is a fallback literal.
	fromAnalysis bool
}

func resolutions(a analyzer.Analysis) []resolution {
	var out []resolution
	add := func(name, value, fallback string) {
		if value != "" {
			out = append(out, resolution{token: "[" + name + "]", value: value, fromAnalysis: true})
			return
		}
		out = append(out, resolution{token: "[" + name + "]", value: fallback})
	}

	add("component", nth(a.Components, 0), "component")
	for i := 1; i <= indexedComponents; i++ {
		if c := nth(a.Components, i-1); c != "" {
			out = append(out, resolution{token: fmt.Sprintf("[component%d]", i), value: c, fromAnalysis: true})
		}
	}

	file := ""
	if len(a.Paths) > 0 {
		file = filepath.Base(a.Paths[0])
	}
	add("file", file, "file")

	for _, name := range termPlaceholders {
		add(name, nth(a.TopTerms, 0), name)
	}
	add("section", nth(a.TopTerms, 1), "section")
	add("issue", "", "issue")
	add("filetype", a.PrimaryExtension, "file")
	return out
}

// FillPlaceholders substitutes every known placeholder in template. Unknown
// placeholders, and [componentN] without an Nth component, are left as they
// are.
func FillPlaceholders(template string, a analyzer.Analysis) string {
	filled, _ := fill(template, a)
	return filled
}

// fill also reports how many distinct placeholders were resolved from the
// analysis rather than from a fallback literal.
func fill(template string, a analyzer.Analysis) (string, int) {
	if !strings.Contains(template, "[") {
		return template, 0
	}

	hits := 0
	for _, r := range resolutions(a) {
		if !strings.Contains(template, r.token) {
			continue
		}
		template = strings.ReplaceAll(template, r.token, r.value)
		if r.fromAnalysis {
			hits++
		}
	}
	return template, hits
}

func nth(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
