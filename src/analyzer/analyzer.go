// Package analyzer turns the paths of a change set into the hints used to fill
// commit message templates: component names, learned terms and a histogram of
// file extensions.
package analyzer

import (
	"path/filepath"
	"strings"
)

const topTermCount = 3

// Analysis is a read-only snapshot of one analyzer run.
type Analysis struct {
	Paths      []string
	Components []string

	// TermFrequency is the history passed to Analyze with this run's terms
	// merged in.
	TermFrequency *TermFrequency
	TopTerms      []string

	// FileExtensionCounts and PrimaryExtension only describe Paths.
	FileExtensionCounts map[string]int
	PrimaryExtension    string
}

// Analyze inspects paths and merges the terms it finds into history in place.
// A nil history starts from empty. An empty path list is not an error.
func Analyze(paths []string, history *TermFrequency) Analysis {
	if history == nil {
		history = NewTermFrequency()
	}

	a := Analysis{
		Paths:               append([]string(nil), paths...),
		TermFrequency:       history,
		FileExtensionCounts: make(map[string]int),
	}

	working := NewTermFrequency()
	seenComponent := make(map[string]bool)
	var extOrder []string

	for _, p := range paths {
		segments := splitPath(p)
		if len(segments) == 0 {
			continue
		}

		stem, ext := SplitExt(segments[len(segments)-1])
		if stem != "" && !seenComponent[stem] {
			seenComponent[stem] = true
			a.Components = append(a.Components, stem)
		}
		if ext != "" {
			if a.FileExtensionCounts[ext] == 0 {
				extOrder = append(extOrder, ext)
			}
			a.FileExtensionCounts[ext]++
		}

		segments[len(segments)-1] = stem
		for _, seg := range segments {
			if seg == "" || strings.HasPrefix(seg, ".") {
				continue
			}
			for _, term := range SegmentTerms(seg) {
				working.Add(term, 1)
			}
		}
	}

	history.Merge(working)
	a.TopTerms = history.Top(topTermCount)
	a.PrimaryExtension = primaryExtension(extOrder, a.FileExtensionCounts)
	return a
}

// SplitExt splits a file name into its stem and lower-cased extension (with
// the dot). A name whose only dots are leading, like ".gitignore", has no
// extension.
func SplitExt(name string) (stem, ext string) {
	trimmed := strings.TrimLeft(name, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return name, ""
	}
	idx += len(name) - len(trimmed)
	return name[:idx], strings.ToLower(name[idx:])
}

func splitPath(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
}

func primaryExtension(order []string, counts map[string]int) string {
	best := ""
	for _, ext := range order {
		if best == "" || counts[ext] > counts[best] {
			best = ext
		}
	}
	return best
}
