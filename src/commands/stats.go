package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"gca/src/store"
	"gca/src/ui"
)

// StatsCommand prints commit counters, the most frequent learned terms and
// the recently committed components.
func StatsCommand(w io.Writer, state *store.State, topN int) {
	keys := make([]string, 0, len(state.Counters))
	total := 0
	for key, n := range state.Counters {
		keys = append(keys, key)
		total += n
	}
	sort.Strings(keys)

	ui.Heading(w, "Commit counters")
	if len(keys) == 0 {
		fmt.Fprintln(w, "  none yet")
	} else {
		tbl := ui.NewTable(w, "Key", "Commits")
		for _, key := range keys {
			tbl.AppendRow([]interface{}{key, humanize.Comma(int64(state.Counters[key]))})
		}
		tbl.AppendFooter([]interface{}{"Total", humanize.Comma(int64(total))})
		tbl.Render()
	}

	fmt.Fprintln(w)
	ui.Heading(w, "Learned terms")
	terms := state.Config.FrequentTerms.Top(topN)
	if len(terms) == 0 {
		fmt.Fprintln(w, "  none yet")
	} else {
		tbl := ui.NewTable(w, "Rank", "Term", "Seen")
		for i, term := range terms {
			tbl.AppendRow([]interface{}{humanize.Ordinal(i + 1), term, state.Config.FrequentTerms.Count(term)})
		}
		tbl.Render()
	}

	if len(state.Config.RecentComponents) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Recent components: %s\n", strings.Join(state.Config.RecentComponents, ", "))
	}
}
