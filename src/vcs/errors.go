package vcs

import "errors"

var (
	ErrFailedToExecuteGit = errors.New("failed to execute git")
	ErrNotGitRepo         = errors.New("not a git repository")
	ErrGitTooOld          = errors.New("installed git is too old")
	ErrNoGitVersion       = errors.New("could not determine git version")
)
