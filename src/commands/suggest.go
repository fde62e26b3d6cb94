package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"gca/src"
	"gca/src/analyzer"
	"gca/src/synth"
	"gca/src/ui"
)

var (
	ErrNoChanges   = errors.New("no changes to describe")
	ErrNoTemplates = errors.New("no templates in category")
)

type SuggestOptions struct {
	Copy bool
	View bool
}

// Suggest analyzes the working tree and ranks the templates of category
// without touching counters or learned terms.
func Suggest(ctx context.Context, env *Env, category string) (analyzer.Analysis, []synth.Preview, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	templates, err := env.Catalog.TemplatesFor(category)
	if err != nil {
		return analyzer.Analysis{}, nil, err
	}
	if len(templates) == 0 {
		return analyzer.Analysis{}, nil, fmt.Errorf("%w: %s", ErrNoTemplates, category)
	}

	changes, err := env.Gateway.Status(ctx)
	if err != nil {
		return analyzer.Analysis{}, nil, err
	}
	if len(changes) == 0 {
		return analyzer.Analysis{}, nil, ErrNoChanges
	}

	history := analyzer.NewTermFrequency()
	history.Merge(env.State.Config.FrequentTerms)
	a := analyzer.Analyze(changes, history)
	return a, env.Synth.Previews(category, templates, a, env.State.Counters), nil
}

func SuggestCommand(ctx context.Context, env *Env, category string, opts SuggestOptions) error {
	a, previews, err := Suggest(ctx, env, category)
	if err != nil {
		return err
	}
	if len(previews) == 0 {
		return fmt.Errorf("%w: %s", ErrNoTemplates, category)
	}
	top := previews[0].Text

	if opts.View {
		return ui.RunViewer("Suggestions for "+category, SuggestionsMarkdown(category, a, previews), top)
	}

	printPreviews(os.Stdout, previews)
	if opts.Copy {
		if err := clipboard.WriteAll(top); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		src.PrintSuccess("Copied: %s", top)
	}
	return nil
}

func printPreviews(w io.Writer, previews []synth.Preview) {
	tbl := ui.NewTable(w, "#", "Message", "Filled")
	for i, p := range previews {
		tbl.AppendRow([]interface{}{i + 1, p.Text, p.Score})
	}
	tbl.Render()
}

// SuggestionsMarkdown renders previews and the analysis behind them for the
// viewer.
func SuggestionsMarkdown(category string, a analyzer.Analysis, previews []synth.Preview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Suggestions for `%s`\n\n", category)
	for i, p := range previews {
		fmt.Fprintf(&b, "%d. `%s`\n", i+1, p.Text)
	}

	b.WriteString("\n## Based on\n\n")
	fmt.Fprintf(&b, "- **Files:** %d changed\n", len(a.Paths))
	if len(a.Components) > 0 {
		fmt.Fprintf(&b, "- **Components:** %s\n", strings.Join(a.Components, ", "))
	}
	if len(a.TopTerms) > 0 {
		fmt.Fprintf(&b, "- **Top terms:** %s\n", strings.Join(a.TopTerms, ", "))
	}
	if a.PrimaryExtension != "" {
		fmt.Fprintf(&b, "- **Mostly:** `%s` files\n", a.PrimaryExtension)
	}
	return b.String()
}
