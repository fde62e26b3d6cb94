package vcs

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
)

// MinimumGitVersion is the oldest git whose push and symbolic-ref flags we
// rely on.
const MinimumGitVersion = "2.0.0"

var gitVersionPattern = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// Version returns the version of the git executable, e.g. "2.43.0".
func (g *Gateway) Version(ctx context.Context) (string, error) {
	out, _, err := g.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return ExtractVersion(out)
}

// ExtractVersion pulls the dotted version out of `git --version` output such
// as "git version 2.39.3 (Apple Git-146)".
func ExtractVersion(output string) (string, error) {
	matches := gitVersionPattern.FindStringSubmatch(strings.TrimSpace(output))
	if len(matches) < 2 {
		return "", fmt.Errorf("%w from %q", ErrNoGitVersion, strings.TrimSpace(output))
	}
	return matches[1], nil
}

// CheckVersion fails when installed is older than MinimumGitVersion.
func CheckVersion(installed string) error {
	current, err := version.NewVersion(installed)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGitVersion, err)
	}
	minimum := version.Must(version.NewVersion(MinimumGitVersion))
	if current.LessThan(minimum) {
		return fmt.Errorf("%w: have %s, need %s or newer", ErrGitTooOld, current, minimum)
	}
	return nil
}
