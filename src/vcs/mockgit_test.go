package vcs

import (
	_ "embed"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/mockgit.sh
var mockGitText string

// setupMockGit puts a "git" shim at the front of PATH. The shim is driven by
// environment variables so tests need neither git nor a repository.
func setupMockGit(t *testing.T, env map[string]string) (logPath string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("mock git shim requires a POSIX shell")
	}

	rootDir := t.TempDir()
	binDir := filepath.Join(rootDir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))

	logPath = filepath.Join(rootDir, "git.log")
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "git"), []byte(mockGitText), 0o755))

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("MOCK_GIT_LOG", logPath)
	for k, v := range env {
		t.Setenv(k, v)
	}
	return logPath
}

func readMockGitLog(t *testing.T, logPath string) []string {
	t.Helper()
	bs, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(string(bs), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
