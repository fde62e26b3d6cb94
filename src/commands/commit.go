package commands

import (
	"context"
	"os"

	"gca/src"
	"gca/src/session"
	"gca/src/ui"
)

// CommitCommand runs the interactive session on the terminal.
func CommitCommand(ctx context.Context, env *Env) error {
	var editor session.Editor
	switch env.Settings.Editor {
	case src.EditorPrompt:
		editor = ui.PromptEditor{}
	case src.EditorTUI:
		editor = ui.TUIEditor{}
	}

	s := session.New(session.Config{
		In:          os.Stdin,
		Out:         os.Stdout,
		Gateway:     env.Gateway,
		Store:       env.Store,
		State:       env.State,
		Catalog:     env.Catalog,
		Synth:       env.Synth,
		Editor:      editor,
		HistorySize: env.Settings.HistorySize,
		Logger:      env.Logger,
	})
	return s.Run(ctx)
}
