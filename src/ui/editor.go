package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrCancelled is returned by an editor the user backed out of.
var ErrCancelled = errors.New("edit cancelled")

// PromptEditor edits a message on one line with promptui, pre-filled with the
// suggestion.
type PromptEditor struct {
	Label string
}

func (e PromptEditor) Edit(ctx context.Context, message string) (string, error) {
	label := e.Label
	if label == "" {
		label = "Commit message"
	}
	prompt := promptui.Prompt{
		Label:     label,
		Default:   message,
		AllowEdit: true,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("message cannot be empty")
			}
			return nil
		},
	}

	edited, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return strings.TrimSpace(edited), nil
}
