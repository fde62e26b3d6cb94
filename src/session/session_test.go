package session

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gca/src/analyzer"
	"gca/src/store"
	"gca/src/synth"
	"gca/src/ui"
	"gca/src/vcs"
)

var fixedDay = time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)

type fakeGateway struct {
	changes     vcs.ChangeSet
	diff        string
	branch      string
	commitFail  string
	pushResults []vcs.Result
	panicOn     string

	calls   []string
	commits []string
}

func (g *fakeGateway) record(call string) {
	g.calls = append(g.calls, call)
	if g.panicOn == call {
		panic("boom in " + call)
	}
}

func (g *fakeGateway) Status(context.Context) (vcs.ChangeSet, error) {
	g.record("status")
	return g.changes, nil
}

func (g *fakeGateway) Diff(context.Context) (string, error) {
	g.record("diff")
	return g.diff, nil
}

func (g *fakeGateway) CurrentBranch(context.Context) (string, bool) {
	g.record("branch")
	return g.branch, g.branch != ""
}

func (g *fakeGateway) StageAll(context.Context) vcs.Result {
	g.record("add")
	return vcs.Result{Success: true}
}

func (g *fakeGateway) Commit(_ context.Context, message string) vcs.Result {
	g.record("commit")
	if g.commitFail != "" {
		return vcs.Result{Stderr: g.commitFail}
	}
	g.commits = append(g.commits, message)
	return vcs.Result{Success: true}
}

func (g *fakeGateway) Push(context.Context) vcs.Result {
	g.record("push")
	return g.nextPush()
}

func (g *fakeGateway) SetUpstream(_ context.Context, branch string) vcs.Result {
	g.record("set-upstream " + branch)
	return g.nextPush()
}

func (g *fakeGateway) nextPush() vcs.Result {
	if len(g.pushResults) == 0 {
		return vcs.Result{Success: true}
	}
	res := g.pushResults[0]
	g.pushResults = g.pushResults[1:]
	return res
}

func (g *fakeGateway) count(call string) int {
	n := 0
	for _, c := range g.calls {
		if c == call {
			n++
		}
	}
	return n
}

type harness struct {
	session *Session
	out     *bytes.Buffer
	store   *store.Store
	state   *store.State
	synth   *synth.Synthesizer
}

func newHarness(t *testing.T, input string, gw *fakeGateway, editor Editor) *harness {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	dir := t.TempDir()
	st := store.New(filepath.Join(dir, store.CounterFileName), filepath.Join(dir, store.ConfigFileName), nil)
	state := st.Load()
	syn := synth.New(true)
	syn.Now = func() time.Time { return fixedDay }

	// each reading of the session clock is a minute after the last
	tick := 0
	clock := func() time.Time {
		tick++
		return fixedDay.Add(time.Duration(tick) * time.Minute)
	}

	out := &bytes.Buffer{}
	s := New(Config{
		In:          strings.NewReader(input),
		Out:         out,
		Gateway:     gw,
		Store:       st,
		State:       state,
		Catalog:     NewCatalog(st, state),
		Synth:       syn,
		Editor:      editor,
		HistorySize: 2,
		Now:         clock,
	})
	return &harness{session: s, out: out, store: st, state: state, synth: syn}
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

var loginChanges = vcs.ChangeSet{"src/UserAuth/login_form.ts", "docs/readme.md"}

func TestRun_GuidedCommitTakesTopPreview(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges, branch: "main"}
	h := newHarness(t, lines("1", "1", "2", "1", "", "y", "n", "6"), gw, nil)

	templates, err := h.session.catalog.TemplatesFor("feat")
	require.NoError(t, err)
	a := analyzer.Analyze(loginChanges, analyzer.NewTermFrequency())
	want := h.synth.Previews("feat", templates, a, nil)[0].Text

	require.NoError(t, h.session.Run(context.Background()))

	require.Equal(t, []string{want}, gw.commits)
	assert.True(t, strings.HasSuffix(want, " (v1)"))
	assert.Contains(t, h.out.String(), "✓ Commit successful!")
	assert.Zero(t, gw.count("push"))

	reloaded := h.store.Load()
	assert.Equal(t, 1, reloaded.Counters["feat-20240101"])
	assert.Equal(t, []string{"login_form", "readme"}, reloaded.Config.RecentComponents)
	assert.Equal(t, 1, reloaded.Config.FrequentTerms.Count("auth"))

	records := h.session.History().Records()
	require.Len(t, records, 1)
	assert.Equal(t, want, records[0].Message)
	assert.Equal(t, "main", records[0].Branch)
}

func TestRun_DecliningConfirmLeavesCountersAlone(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges}
	h := newHarness(t, lines("1", "1", "2", "1", "", "n", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Empty(t, gw.commits)
	assert.Zero(t, gw.count("add"))
	assert.Empty(t, h.state.Counters)
	assert.Contains(t, h.out.String(), "Commit canceled")
}

func TestRun_CustomMessageDetectsCategory(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		want    string
		key     string
	}{
		{name: "Typed", message: "fix: handle empty input", want: "fix: handle empty input (v1)", key: "fix-20240101"},
		{name: "Untyped", message: "tidy up", want: "chore: tidy up (v1)", key: "chore-20240101"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{changes: loginChanges, branch: "main"}
			h := newHarness(t, lines("1", "2", tc.message, "", "y", "n", "6"), gw, nil)

			require.NoError(t, h.session.Run(context.Background()))

			assert.Equal(t, []string{tc.want}, gw.commits)
			assert.Equal(t, 1, h.state.Counters[tc.key])
			assert.Zero(t, h.state.Config.FrequentTerms.Len())
		})
	}
}

func TestRun_CounterSuffixFollowsStoredCount(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges}
	h := newHarness(t, lines("1", "2", "docs: explain setup", "", "y", "n", "6"), gw, nil)
	h.state.Counters["docs-20240101"] = 4

	require.NoError(t, h.session.Run(context.Background()))

	assert.Equal(t, []string{"docs: explain setup (v5)"}, gw.commits)
	assert.Equal(t, 5, h.state.Counters["docs-20240101"])
}

func TestRun_LineEditorReplacesMessage(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges}
	h := newHarness(t, lines("1", "2", "feat: x", "feat: a better subject", "y", "n", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Equal(t, []string{"feat: a better subject (v1)"}, gw.commits)
	assert.Contains(t, h.out.String(), "Edited: ")
}

func TestRun_EditedTypeMovesCounter(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges}
	h := newHarness(t, lines("1", "2", "fix: x", "feat: add retry to login", "y", "n", "6"), gw, nil)
	h.state.Counters["feat-20240101"] = 2

	require.NoError(t, h.session.Run(context.Background()))

	assert.Equal(t, []string{"feat: add retry to login (v3)"}, gw.commits)
	assert.Equal(t, 3, h.state.Counters["feat-20240101"])
	assert.Zero(t, h.state.Counters["fix-20240101"])
}

type cancellingEditor struct{}

func (cancellingEditor) Edit(context.Context, string) (string, error) {
	return "", ui.ErrCancelled
}

func TestRun_EditorCancelAbortsCommit(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges}
	h := newHarness(t, lines("1", "2", "feat: x", "6"), gw, cancellingEditor{})

	require.NoError(t, h.session.Run(context.Background()))

	assert.Empty(t, gw.commits)
	assert.Contains(t, h.out.String(), "Commit canceled")
}

func TestRun_PushRetriesOnceWithUpstream(t *testing.T) {
	gw := &fakeGateway{
		changes: loginChanges,
		branch:  "feature",
		pushResults: []vcs.Result{
			{Stderr: "fatal: The current branch feature has no upstream branch."},
			{Success: true},
		},
	}
	h := newHarness(t, lines("1", "2", "feat: x", "", "y", "y", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Equal(t, 1, gw.count("push"))
	assert.Equal(t, 1, gw.count("set-upstream feature"))
	assert.Contains(t, h.out.String(), "Successfully pushed to remote!")
}

func TestRun_PushFailureIsReported(t *testing.T) {
	gw := &fakeGateway{
		changes:     loginChanges,
		branch:      "main",
		pushResults: []vcs.Result{{Stderr: "! [rejected] main -> main (fetch first)"}},
	}
	h := newHarness(t, lines("1", "2", "feat: x", "", "y", "y", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Zero(t, gw.count("set-upstream main"))
	assert.Contains(t, h.out.String(), "✗ Push failed: ! [rejected] main -> main (fetch first)")
	assert.Equal(t, 1, h.state.Counters["feat-20240101"])
}

func TestRun_CommitFailureKeepsCounters(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges, commitFail: "nothing added to commit"}
	h := newHarness(t, lines("1", "2", "feat: x", "", "y", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Contains(t, h.out.String(), "✗ Commit failed: nothing added to commit")
	assert.Empty(t, h.state.Counters)
	assert.Zero(t, h.session.History().Len())
}

func TestRun_AddTemplateDuringGuidedCommit(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges}
	h := newHarness(t, lines("1", "1", "2", "a", "feat: wire [component] into routing", "q", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Contains(t, h.out.String(), "feat: wire login_form into routing (v1)")
	reloaded := h.store.Load()
	assert.Equal(t, []string{"feat: wire [component] into routing"}, reloaded.Config.CustomTemplates["feat"])
	assert.Empty(t, gw.commits)
}

func TestRun_CleanTreeSkipsCommit(t *testing.T) {
	gw := &fakeGateway{}
	h := newHarness(t, lines("1", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Contains(t, h.out.String(), "Nothing to commit, working tree clean")
	assert.Equal(t, []string{"status"}, gw.calls)
}

func TestRun_InvalidInputReprompts(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges}
	h := newHarness(t, lines("9", "abc", "", "1", "x", "q", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	assert.Equal(t, 4, strings.Count(h.out.String(), "Invalid option"))
	assert.Empty(t, gw.commits)
}

func TestRun_EndOfInputExitsCleanly(t *testing.T) {
	for _, input := range []string{"", "1\n", "1\n1\n", "1\n1\n2\n1\n", "1\n2\nfeat: x\n\n"} {
		gw := &fakeGateway{changes: loginChanges}
		h := newHarness(t, input, gw, nil)

		assert.NoError(t, h.session.Run(context.Background()), "input %q", input)
		assert.Contains(t, h.out.String(), "Goodbye!")
		assert.Empty(t, gw.commits)
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	gw := &fakeGateway{changes: loginChanges, panicOn: "status"}
	h := newHarness(t, lines("2"), gw, nil)

	err := h.session.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
	assert.Contains(t, err.Error(), "boom in status")
}

func TestRun_StatusDiffAndHistory(t *testing.T) {
	gw := &fakeGateway{
		changes: vcs.ChangeSet{"cmd/root.go"},
		diff:    "--- a/cmd/root.go\n+++ b/cmd/root.go\n@@ -1 +1 @@\n-old\n+new\n",
		branch:  "main",
	}
	h := newHarness(t, lines("4", "2", "3", "1", "2", "chore: bump", "", "y", "n", "4", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "No commits yet in this session")
	assert.Contains(t, out, "Changed files (1):")
	assert.Contains(t, out, "  - cmd/root.go")
	assert.Contains(t, out, "+new")
	assert.Contains(t, out, "chore: bump (v1)")
	assert.Contains(t, out, "1 minute ago")
}

func TestRun_ListTemplatesShowsSources(t *testing.T) {
	gw := &fakeGateway{}
	h := newHarness(t, lines("5", "2", "Security", "security: patch [dependency]", "1", "13", "q", "6"), gw, nil)

	require.NoError(t, h.session.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Template added to Security")
	assert.Contains(t, out, "security: patch [dependency]")
	assert.Contains(t, out, "custom")
}

func TestRun_ShowsLoadWarnings(t *testing.T) {
	h := newHarness(t, lines("6"), &fakeGateway{}, nil)
	h.state.Warnings = []string{"counter file unreadable"}

	require.NoError(t, h.session.Run(context.Background()))

	assert.Contains(t, h.out.String(), "! counter file unreadable")
}
