package vcs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	out := " M src/app.go\x00?? notes/todo.md\x00R  lib/new_name.go\x00lib/old_name.go\x00A  web/My File.ts\x00"

	got := ParseStatus(out)

	assert.Equal(t, ChangeSet{
		filepath.FromSlash("src/app.go"),
		filepath.FromSlash("notes/todo.md"),
		filepath.FromSlash("lib/new_name.go"),
		filepath.FromSlash("web/My File.ts"),
	}, got)
}

func TestParseStatus_Empty(t *testing.T) {
	assert.Empty(t, ParseStatus(""))
}

func TestBuildGitArgs(t *testing.T) {
	assert.Equal(t, []string{"-C", "/repo", "status"}, buildGitArgs("/repo", "status"))
	assert.Equal(t, []string{"status"}, buildGitArgs("  ", "status"))
}

func TestGateway_StatusPinsRepositoryDir(t *testing.T) {
	logPath := setupMockGit(t, map[string]string{
		"MOCK_GIT_STATUS": ` M cmd/root.go\0?? src/UserAuth/login_form.ts\0`,
	})

	g := New("/work/repo", "", nil)
	changes, err := g.Status(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ChangeSet{filepath.FromSlash("cmd/root.go"), filepath.FromSlash("src/UserAuth/login_form.ts")}, changes)
	assert.Equal(t, []string{"status --porcelain=v1 -z --untracked-files=all"}, readMockGitLog(t, logPath))

	dir, err := os.ReadFile(logPath + ".dir")
	require.NoError(t, err)
	assert.Equal(t, "/work/repo\n", string(dir))
}

func TestGateway_DiffNamesFallsBackWithoutHead(t *testing.T) {
	logPath := setupMockGit(t, map[string]string{
		"MOCK_GIT_NO_HEAD": "1",
		"MOCK_GIT_DIFF":    `a.go\nb/c.go\n`,
	})

	names, err := New("/repo", "", nil).DiffNames(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a.go", filepath.FromSlash("b/c.go")}, names)
	assert.Equal(t, []string{"diff --name-only HEAD", "diff --name-only --cached"}, readMockGitLog(t, logPath))
}

func TestGateway_CurrentBranch(t *testing.T) {
	setupMockGit(t, map[string]string{"MOCK_GIT_BRANCH": "feature/login"})
	branch, ok := New("/repo", "", nil).CurrentBranch(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "feature/login", branch)
}

func TestGateway_CurrentBranchDetached(t *testing.T) {
	setupMockGit(t, map[string]string{"MOCK_GIT_BRANCH": ""})
	branch, ok := New("/repo", "", nil).CurrentBranch(context.Background())
	assert.False(t, ok)
	assert.Empty(t, branch)
}

func TestGateway_StageAndCommit(t *testing.T) {
	logPath := setupMockGit(t, map[string]string{"MOCK_GIT_BRANCH": "main"})
	g := New("/repo", "", nil)

	require.True(t, g.StageAll(context.Background()).Success)
	res := g.Commit(context.Background(), "feat: add nav to login (v1)")

	require.True(t, res.Success)
	assert.Contains(t, res.Stdout, "committed")
	assert.Equal(t, []string{"add --all", "commit -m feat: add nav to login (v1)"}, readMockGitLog(t, logPath))
}

func TestGateway_CommitFailureCarriesStderr(t *testing.T) {
	setupMockGit(t, map[string]string{"MOCK_GIT_COMMIT_FAIL": "nothing to commit, working tree clean"})

	res := New("/repo", "", nil).Commit(context.Background(), "fix: x")

	assert.False(t, res.Success)
	assert.True(t, errors.Is(res.Err, ErrFailedToExecuteGit))
	assert.Equal(t, "nothing to commit, working tree clean", res.Message())
}

func TestGateway_PushWithUpstreamRetry(t *testing.T) {
	logPath := setupMockGit(t, map[string]string{
		"MOCK_GIT_PUSH_FAIL": `fatal: The current branch feature has no upstream branch.\nTo push the current branch and set the remote as upstream, use`,
	})
	g := New("/repo", "upstream", nil)

	res, retried := PushWithUpstreamRetry(context.Background(), g, "feature")

	assert.True(t, retried)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"push", "push --set-upstream upstream feature"}, readMockGitLog(t, logPath))
}

func TestGateway_PushOtherFailureIsNotRetried(t *testing.T) {
	logPath := setupMockGit(t, map[string]string{
		"MOCK_GIT_PUSH_FAIL": "! [rejected] main -> main (fetch first)",
	})

	res, retried := PushWithUpstreamRetry(context.Background(), New("/repo", "", nil), "main")

	assert.False(t, retried)
	assert.False(t, res.Success)
	assert.False(t, IsNoUpstream(res))
	assert.Equal(t, []string{"push"}, readMockGitLog(t, logPath))
}

func TestGateway_UpstreamRetryHappensOnce(t *testing.T) {
	logPath := setupMockGit(t, map[string]string{
		"MOCK_GIT_PUSH_FAIL":     "fatal: The current branch x has no upstream branch.",
		"MOCK_GIT_UPSTREAM_FAIL": "fatal: 'origin' does not appear to be a git repository",
	})

	res, retried := PushWithUpstreamRetry(context.Background(), New("/repo", "", nil), "x")

	assert.True(t, retried)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message(), "does not appear to be a git repository")
	assert.Len(t, readMockGitLog(t, logPath), 2)
}

func TestGateway_Version(t *testing.T) {
	setupMockGit(t, map[string]string{"MOCK_GIT_VERSION": "git version 2.39.3 (Apple Git-146)"})

	v, err := New("/repo", "", nil).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.39.3", v)
}

func TestResultMessage(t *testing.T) {
	assert.Equal(t, "err text", Result{Stderr: " err text\n", Stdout: "out"}.Message())
	assert.Equal(t, "out", Result{Stdout: "out\n"}.Message())
	assert.Equal(t, "boom", Result{Err: errors.New("boom")}.Message())
}
