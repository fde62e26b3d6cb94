// Package vcs is the only place gca talks to git. Every command runs the git
// executable with "-C <repo>" so the process working directory never matters.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const DefaultRemote = "origin"

// noUpstreamMarker is what git prints when pushing a branch with no upstream.
const noUpstreamMarker = "has no upstream branch"

// ChangeSet is the list of repository-relative paths that differ from HEAD,
// in the order git reported them.
type ChangeSet []string

// Result is the outcome of a mutating git command.
type Result struct {
	Success bool
	Stdout  string
	Stderr  string
	Err     error
}

// Message returns the most useful text for reporting a failed Result.
func (r Result) Message() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(r.Stdout); s != "" {
		return s
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}

// IsNoUpstream reports whether r failed because the branch has no upstream.
func IsNoUpstream(r Result) bool {
	return !r.Success && strings.Contains(r.Stderr, noUpstreamMarker)
}

type Gateway struct {
	Dir    string
	Remote string
	// Binary defaults to "git" on PATH.
	Binary string
	logger *zap.Logger
}

func New(dir, remote string, logger *zap.Logger) *Gateway {
	if remote == "" {
		remote = DefaultRemote
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{Dir: dir, Remote: remote, Binary: "git", logger: logger}
}

// Status lists changed and untracked files. Untracked directories are
// expanded to the files inside them. Renamed entries report the new path.
func (g *Gateway) Status(ctx context.Context) (ChangeSet, error) {
	out, _, err := g.run(ctx, "status", "--porcelain=v1", "-z", "--untracked-files=all")
	if err != nil {
		return nil, err
	}
	return ParseStatus(out), nil
}

// DiffNames lists tracked paths that differ from HEAD. In a repository
// without commits it falls back to the staged paths.
func (g *Gateway) DiffNames(ctx context.Context) ([]string, error) {
	out, _, err := g.run(ctx, "diff", "--name-only", "HEAD")
	if err != nil {
		g.logger.Debug("diff against HEAD failed, falling back to index", zap.Error(err))
		out, _, err = g.run(ctx, "diff", "--name-only", "--cached")
		if err != nil {
			return nil, err
		}
	}
	return splitLines(out), nil
}

// Diff returns the full working tree diff against HEAD.
func (g *Gateway) Diff(ctx context.Context) (string, error) {
	out, _, err := g.run(ctx, "diff", "HEAD")
	if err != nil {
		out, _, err = g.run(ctx, "diff", "--cached")
	}
	return out, err
}

// CurrentBranch returns the checked out branch, or false on a detached HEAD.
func (g *Gateway) CurrentBranch(ctx context.Context) (string, bool) {
	out, _, err := g.run(ctx, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		return "", false
	}
	branch := strings.TrimSpace(out)
	return branch, branch != ""
}

func (g *Gateway) StageAll(ctx context.Context) Result {
	return g.result(ctx, "add", "--all")
}

func (g *Gateway) Commit(ctx context.Context, message string) Result {
	return g.result(ctx, "commit", "-m", message)
}

func (g *Gateway) Push(ctx context.Context) Result {
	return g.result(ctx, "push")
}

func (g *Gateway) SetUpstream(ctx context.Context, branch string) Result {
	g.logger.Info("setting upstream", zap.String("remote", g.Remote), zap.String("branch", branch))
	return g.result(ctx, "push", "--set-upstream", g.Remote, branch)
}

// Pusher is the part of a gateway that PushWithUpstreamRetry needs.
type Pusher interface {
	Push(ctx context.Context) Result
	SetUpstream(ctx context.Context, branch string) Result
}

// PushWithUpstreamRetry pushes, and if git refuses because the branch has no
// upstream, sets one on branch and pushes exactly once more. The second
// return value reports whether the retry happened.
func PushWithUpstreamRetry(ctx context.Context, p Pusher, branch string) (Result, bool) {
	res := p.Push(ctx)
	if !IsNoUpstream(res) || branch == "" {
		return res, false
	}
	return p.SetUpstream(ctx, branch), true
}

func (g *Gateway) result(ctx context.Context, args ...string) Result {
	stdout, stderr, err := g.run(ctx, args...)
	return Result{Success: err == nil, Stdout: stdout, Stderr: stderr, Err: err}
}

func (g *Gateway) run(ctx context.Context, args ...string) (string, string, error) {
	fullArgs := buildGitArgs(g.Dir, args...)
	cmd := exec.CommandContext(ctx, g.binary(), fullArgs...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	g.logger.Debug("running git", zap.Strings("args", fullArgs))
	err := cmd.Run()
	if err != nil {
		g.logger.Debug("git failed",
			zap.Strings("args", fullArgs),
			zap.String("stderr", strings.TrimSpace(errBuf.String())),
			zap.Error(err))
		return out.String(), errBuf.String(), fmt.Errorf("%w: %w", ErrFailedToExecuteGit, err)
	}
	return out.String(), errBuf.String(), nil
}

func (g *Gateway) binary() string {
	if g.Binary == "" {
		return "git"
	}
	return g.Binary
}

func buildGitArgs(dir string, args ...string) []string {
	if strings.TrimSpace(dir) == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// ParseStatus reads `git status --porcelain=v1 -z` output.
func ParseStatus(out string) ChangeSet {
	var changes ChangeSet
	entries := strings.Split(out, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) < 4 {
			continue
		}
		xy := entry[:2]
		changes = append(changes, filepath.FromSlash(entry[3:]))
		if xy[0] == 'R' || xy[0] == 'C' {
			// the original path follows as its own entry
			i++
		}
	}
	return changes
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, filepath.FromSlash(line))
	}
	return lines
}

