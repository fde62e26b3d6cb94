package session

import "context"

// Editor lets the user revise a suggested message before it is committed. It
// returns ui.ErrCancelled when the user backs out.
type Editor interface {
	Edit(ctx context.Context, message string) (string, error)
}

// LineEditor edits on the session's own prompt: Enter keeps the suggestion,
// anything else replaces it.
type LineEditor struct {
	Prompter *Prompter
}

func (e LineEditor) Edit(_ context.Context, message string) (string, error) {
	reply, err := e.Prompter.Line("Press Enter to accept, or type a replacement: ")
	if err != nil {
		return "", err
	}
	if reply == "" {
		return message, nil
	}
	return reply, nil
}
