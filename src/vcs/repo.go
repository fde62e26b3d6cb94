package vcs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// RepoInfo describes a repository as seen by go-git, without running git.
type RepoInfo struct {
	Root    string
	Branch  string
	Head    string
	Remotes map[string][]string
}

// DiscoverRoot finds the work tree containing path, walking up parent
// directories the way git does.
func DiscoverRoot(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("%w: %s has no work tree", ErrNotGitRepo, path)
	}
	return wt.Filesystem.Root(), nil
}

func Inspect(path string) (*RepoInfo, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	info := &RepoInfo{Remotes: make(map[string][]string)}
	if wt, err := repo.Worktree(); err == nil {
		info.Root = wt.Filesystem.Root()
	}

	head, err := repo.Head()
	if err == nil {
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		}
		info.Head = head.Hash().String()
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	for _, remote := range remotes {
		cfg := remote.Config()
		info.Remotes[cfg.Name] = append([]string(nil), cfg.URLs...)
	}
	return info, nil
}

// RemoteNames returns the remote names of info in sorted order.
func (info *RepoInfo) RemoteNames() []string {
	names := make([]string, 0, len(info.Remotes))
	for name := range info.Remotes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func openRepo(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrNotGitRepo, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return repo, nil
}
