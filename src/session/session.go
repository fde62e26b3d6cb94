// Package session runs the interactive menu loop: it owns the loaded state,
// the template catalog and the session's commit history, and drives git
// through a Gateway.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"gca/src/catalog"
	"gca/src/store"
	"gca/src/synth"
	"gca/src/ui"
	"gca/src/vcs"
)

var ErrInternal = errors.New("internal error")

// Gateway is the git surface the session needs. *vcs.Gateway implements it.
type Gateway interface {
	Status(ctx context.Context) (vcs.ChangeSet, error)
	Diff(ctx context.Context) (string, error)
	CurrentBranch(ctx context.Context) (string, bool)
	StageAll(ctx context.Context) vcs.Result
	Commit(ctx context.Context, message string) vcs.Result
	Push(ctx context.Context) vcs.Result
	SetUpstream(ctx context.Context, branch string) vcs.Result
}

type Config struct {
	In      io.Reader
	Out     io.Writer
	Gateway Gateway
	Store   *store.Store
	State   *store.State
	Catalog *catalog.Catalog
	Synth   *synth.Synthesizer
	// Editor defaults to a LineEditor on In.
	Editor      Editor
	HistorySize int
	Logger      *zap.Logger
	Now         func() time.Time
}

type Session struct {
	in      *Prompter
	out     io.Writer
	gateway Gateway
	store   *store.Store
	state   *store.State
	catalog *catalog.Catalog
	synth   *synth.Synthesizer
	editor  Editor
	history *History
	logger  *zap.Logger
	now     func() time.Time
}

var mainMenu = []string{
	"Start new commit",
	"Show status",
	"Show diff",
	"View commit history",
	"Manage templates",
	"Exit",
}

func New(cfg Config) *Session {
	s := &Session{
		in:      NewPrompter(cfg.In, cfg.Out),
		out:     cfg.Out,
		gateway: cfg.Gateway,
		store:   cfg.Store,
		state:   cfg.State,
		catalog: cfg.Catalog,
		synth:   cfg.Synth,
		editor:  cfg.Editor,
		history: NewHistory(cfg.HistorySize),
		logger:  cfg.Logger,
		now:     cfg.Now,
	}
	if s.editor == nil {
		s.editor = LineEditor{Prompter: s.in}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// History exposes the commits made so far in this session.
func (s *Session) History() *History {
	return s.history
}

// Run shows the main menu until the user exits or input ends. A panic inside
// the loop is recovered and returned as ErrInternal.
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("session aborted", zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	ui.Heading(s.out, "🐙 Git Commit Assistant")
	for _, warning := range s.state.Warnings {
		ui.Warning(s.out, "%s", warning)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.in.Menu("", mainMenu)
		idx, _, err := s.in.Choose("Select option: ", len(mainMenu))
		if err != nil {
			return s.stop(err)
		}

		switch idx {
		case 0:
			err = s.commitFlow(ctx)
		case 1:
			s.showStatus(ctx)
		case 2:
			s.showDiff(ctx)
		case 3:
			s.showHistory()
		case 4:
			err = s.manageTemplates()
		case 5:
			fmt.Fprintln(s.out)
			ui.Info(s.out, "Goodbye!")
			return nil
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

// stop turns the end of input into a normal exit.
func (s *Session) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		ui.Info(s.out, "Goodbye!")
		return nil
	}
	return err
}

func (s *Session) showStatus(ctx context.Context) {
	changes, err := s.gateway.Status(ctx)
	if err != nil {
		ui.Failure(s.out, "Could not read repository status: %v", err)
		return
	}
	if len(changes) == 0 {
		ui.Info(s.out, "Working tree clean")
		return
	}
	ui.Heading(s.out, "Changed files (%d):", len(changes))
	for _, path := range changes {
		fmt.Fprintf(s.out, "  - %s\n", path)
	}
}

func (s *Session) showDiff(ctx context.Context) {
	diff, err := s.gateway.Diff(ctx)
	if err != nil {
		ui.Failure(s.out, "Could not read diff: %v", err)
		return
	}
	if diff == "" {
		ui.Info(s.out, "No differences from HEAD")
		return
	}
	ui.PrintDiff(s.out, diff)
}

func (s *Session) showHistory() {
	records := s.history.Records()
	if len(records) == 0 {
		ui.Info(s.out, "No commits yet in this session")
		return
	}

	tbl := ui.NewTable(s.out, "#", "Message", "Branch", "When")
	for i, r := range records {
		branch := r.Branch
		if branch == "" {
			branch = "(detached)"
		}
		tbl.AppendRow([]interface{}{i + 1, r.Message, branch, humanize.RelTime(r.Timestamp, s.now(), "ago", "from now")})
	}
	tbl.Render()
}

func (s *Session) saveConfig() {
	if err := s.store.SaveConfig(s.state.Config); err != nil {
		ui.Warning(s.out, "Could not save %s: %v", s.store.ConfigPath(), err)
	}
}

// NewCatalog builds a catalog over the custom templates in state that saves
// them back through st whenever one is added.
func NewCatalog(st *store.Store, state *store.State) *catalog.Catalog {
	return catalog.New(state.Config.CustomTemplates, func(custom map[string][]string) error {
		state.Config.CustomTemplates = custom
		return st.SaveConfig(state.Config)
	})
}
