package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"

	"gca/src"
	"gca/src/config"
	"gca/src/store"
	"gca/src/vcs"
)

// CheckResult is one line of the health check.
type CheckResult struct {
	Name   string
	OK     bool
	Detail string
}

// RunChecks verifies everything a commit session depends on without changing
// anything.
func RunChecks(ctx context.Context, settings src.Settings) []CheckResult {
	var results []CheckResult

	path, err := exec.LookPath("git")
	if err != nil {
		results = append(results, CheckResult{Name: "git", Detail: "Not found in PATH"})
	} else {
		results = append(results, checkGit(ctx, path))
	}

	start := settings.Repo
	if start == "" {
		start, _ = os.Getwd()
	}
	root, err := vcs.DiscoverRoot(start)
	if err != nil {
		results = append(results, CheckResult{Name: "repository", Detail: err.Error()})
	} else {
		results = append(results, CheckResult{Name: "repository", OK: true, Detail: root})
		results = append(results, checkProject(root))
	}

	state := store.New(settings.CounterFile, settings.ConfigFile, nil).Load()
	results = append(results, checkStateFile("counters", settings.CounterFile, state.Warnings))
	results = append(results, checkStateFile("config", settings.ConfigFile, state.Warnings))
	return results
}

func checkGit(ctx context.Context, path string) CheckResult {
	installed, err := vcs.New("", "", nil).Version(ctx)
	if err != nil {
		return CheckResult{Name: "git", Detail: fmt.Sprintf("Version check failed (at: %s): %v", path, err)}
	}
	if err := vcs.CheckVersion(installed); err != nil {
		return CheckResult{Name: "git", Detail: err.Error()}
	}
	return CheckResult{Name: "git", OK: true, Detail: fmt.Sprintf("Version %s (at: %s)", installed, path)}
}

func checkProject(root string) CheckResult {
	project, err := config.Find(root, root)
	switch {
	case errors.Is(err, config.ErrNoProjectFile):
		return CheckResult{Name: "project file", OK: true, Detail: "none"}
	case err != nil:
		return CheckResult{Name: "project file", Detail: err.Error()}
	}
	n := 0
	for _, templates := range project.Templates {
		n += len(templates)
	}
	return CheckResult{Name: "project file", OK: true, Detail: fmt.Sprintf("%s (%d shared templates)", project.Path, n)}
}

func checkStateFile(name, path string, warnings []string) CheckResult {
	for _, w := range warnings {
		if strings.HasPrefix(w, path+" ") {
			return CheckResult{Name: name, Detail: w}
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CheckResult{Name: name, OK: true, Detail: path + " (not created yet)"}
	}
	return CheckResult{Name: name, OK: true, Detail: path}
}

// PrintChecks writes results and reports whether all of them passed.
func PrintChecks(w io.Writer, results []CheckResult) bool {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintln(w, cyan("🏥 Running gca Health Check"))
	fmt.Fprintln(w)
	allPassed := true
	for _, r := range results {
		if r.OK {
			fmt.Fprintf(w, "  %s %s: %s\n", green("✓"), r.Name, r.Detail)
			continue
		}
		allPassed = false
		fmt.Fprintf(w, "  %s %s: %s\n", red("✗"), r.Name, r.Detail)
	}
	return allPassed
}
