package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"gca/src/analyzer"
	"gca/src/synth"
	"gca/src/ui"
	"gca/src/vcs"
)

// draft is a message on its way to becoming a commit.
type draft struct {
	message    synth.Message
	components []string
}

// commitFlow returns an error only when input fails; git failures are
// reported and end the flow.
func (s *Session) commitFlow(ctx context.Context) error {
	changes, err := s.gateway.Status(ctx)
	if err != nil {
		ui.Failure(s.out, "Could not read repository status: %v", err)
		return nil
	}
	if len(changes) == 0 {
		ui.Info(s.out, "Nothing to commit, working tree clean")
		return nil
	}

	s.in.Menu("Choose commit method:", []string{
		"Use guided commit (select from templates)",
		"Write custom commit message",
	})
	fmt.Fprintln(s.out, "q: Cancel")
	idx, letter, err := s.in.Choose("Select option: ", 2, "q")
	if err != nil {
		return err
	}
	if letter == "q" {
		ui.Info(s.out, "Commit canceled")
		return nil
	}

	var d *draft
	if idx == 0 {
		d, err = s.guided(changes)
	} else {
		d, err = s.custom(changes)
	}
	if err != nil || d == nil {
		return err
	}
	return s.confirmAndCommit(ctx, d)
}

func (s *Session) guided(changes vcs.ChangeSet) (*draft, error) {
	categories := s.catalog.Categories()
	s.in.Menu("Select commit type:", categories)
	idx, letter, err := s.in.Choose("Enter number (or 'q' to cancel): ", len(categories), "q")
	if err != nil {
		return nil, err
	}
	if letter == "q" {
		ui.Info(s.out, "Commit canceled")
		return nil, nil
	}
	category := categories[idx]

	a := analyzer.Analyze(changes, s.state.Config.FrequentTerms)
	s.saveConfig()
	s.describe(a)

	for {
		templates, err := s.catalog.TemplatesFor(category)
		if err != nil {
			ui.Failure(s.out, "%v", err)
			return nil, nil
		}
		previews := s.synth.Previews(category, templates, a, s.state.Counters)

		labels := make([]string, len(previews))
		for i, p := range previews {
			labels[i] = p.Text
		}
		s.in.Menu(fmt.Sprintf("Select %s message:", category), labels)
		fmt.Fprintln(s.out, "c: Write custom message   a: Add template   q: Cancel")

		idx, letter, err := s.in.Choose("Enter choice: ", len(previews), "c", "a", "q")
		if err != nil {
			return nil, err
		}
		switch letter {
		case "q":
			ui.Info(s.out, "Commit canceled")
			return nil, nil
		case "a":
			if err := s.addTemplate(category); err != nil {
				return nil, err
			}
			continue
		case "c":
			text, err := s.requireLine("Message: ")
			if err != nil {
				return nil, err
			}
			return &draft{
				message:    s.synth.CustomIn(s.catalog, category, text, s.state.Counters),
				components: a.Components,
			}, nil
		}
		return &draft{message: previews[idx].Message, components: a.Components}, nil
	}
}

func (s *Session) custom(changes vcs.ChangeSet) (*draft, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Enter your commit message (type will be automatically detected):")
	text, err := s.requireLine("Message: ")
	if err != nil {
		return nil, err
	}
	// a throwaway history keeps free text from training the term counts
	a := analyzer.Analyze(changes, analyzer.NewTermFrequency())
	return &draft{
		message:    s.synth.Custom(s.catalog, text, s.state.Counters),
		components: a.Components,
	}, nil
}

func (s *Session) describe(a analyzer.Analysis) {
	if len(a.Components) == 0 {
		return
	}
	line := "Components: " + strings.Join(a.Components, ", ")
	if len(a.TopTerms) > 0 {
		line += " | Top terms: " + strings.Join(a.TopTerms, ", ")
	}
	if a.PrimaryExtension != "" {
		line += " | Mostly " + a.PrimaryExtension
	}
	ui.Info(s.out, "%s", line)
}

func (s *Session) confirmAndCommit(ctx context.Context, d *draft) error {
	msg := d.message
	fmt.Fprintf(s.out, "\nGenerated commit message:\n🔸 %s\n", color.New(color.Bold).Sprint(msg.Text))

	suggestion := synth.StripSuffix(msg.Text, msg.Version)
	edited, err := s.editor.Edit(ctx, suggestion)
	switch {
	case errors.Is(err, ui.ErrCancelled):
		ui.Info(s.out, "Commit canceled")
		return nil
	case err != nil:
		return err
	}
	if edited = strings.TrimSpace(edited); edited != "" && edited != suggestion {
		fmt.Fprintf(s.out, "Edited: %s\n", ui.EditDiff(suggestion, edited))
		msg = s.synth.Resuffix(s.catalog, msg, edited, s.state.Counters)
		fmt.Fprintf(s.out, "🔸 %s\n", color.New(color.Bold).Sprint(msg.Text))
	}

	ok, err := s.in.Confirm("Confirm commit?")
	if err != nil {
		return err
	}
	if !ok {
		ui.Info(s.out, "Commit canceled")
		return nil
	}

	if res := s.gateway.StageAll(ctx); !res.Success {
		ui.Failure(s.out, "Staging failed: %s", res.Message())
		return nil
	}
	if res := s.gateway.Commit(ctx, msg.Text); !res.Success {
		ui.Failure(s.out, "Commit failed: %s", res.Message())
		return nil
	}
	ui.Success(s.out, "Commit successful!")
	s.logger.Debug("committed", zap.String("key", msg.CounterKey), zap.Int("version", msg.Version))

	s.state.Counters.Increment(msg.CounterKey)
	if err := s.store.SaveCounters(s.state.Counters); err != nil {
		ui.Warning(s.out, "Could not save %s: %v", s.store.CounterPath(), err)
	}
	s.state.Config.RememberComponents(d.components)
	s.saveConfig()

	branch, _ := s.gateway.CurrentBranch(ctx)
	s.history.Add(CommitRecord{Message: msg.Text, Branch: branch, Timestamp: s.now()})

	return s.offerPush(ctx, branch)
}

func (s *Session) offerPush(ctx context.Context, branch string) error {
	ok, err := s.in.Confirm("Push to remote?")
	if err != nil || !ok {
		return err
	}

	res, retried := vcs.PushWithUpstreamRetry(ctx, s.gateway, branch)
	if retried {
		ui.Info(s.out, "Branch %s had no upstream, pushed with --set-upstream", branch)
	}
	if !res.Success {
		ui.Failure(s.out, "Push failed: %s", res.Message())
		return nil
	}
	ui.Success(s.out, "🚀 Successfully pushed to remote!")
	return nil
}

// requireLine asks until the reply is not empty.
func (s *Session) requireLine(label string) (string, error) {
	for {
		text, err := s.in.Line(label)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
		ui.Warning(s.out, "Message cannot be empty")
	}
}
