package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gca/src"
	"gca/src/vcs"
)

func InfoCommand(ctx context.Context, env *Env) error {
	info, err := vcs.Inspect(env.Root)
	if err != nil {
		return err
	}
	yellow := src.Yellow()

	src.PrintHighlight("--- Repository ---")
	fmt.Printf("Root:          %s\n", yellow.Sprint(info.Root))
	branch := info.Branch
	if branch == "" {
		branch = "(detached or no commits)"
	}
	fmt.Printf("Branch:        %s\n", yellow.Sprint(branch))
	if info.Head != "" {
		fmt.Printf("HEAD:          %s\n", yellow.Sprint(info.Head[:min(12, len(info.Head))]))
	}
	if names := info.RemoteNames(); len(names) > 0 {
		for _, name := range names {
			marker := ""
			if name == env.Gateway.Remote {
				marker = " (push target)"
			}
			fmt.Printf("Remote:        %s %s%s\n", yellow.Sprint(name), strings.Join(info.Remotes[name], ", "), marker)
		}
	} else {
		fmt.Printf("Remote:        %s\n", yellow.Sprint("none configured"))
	}

	version, err := env.Gateway.Version(ctx)
	if err != nil {
		version = "unknown"
	}
	fmt.Printf("Git:           %s\n", yellow.Sprint(version))

	fmt.Println()
	src.PrintHighlight("--- gca ---")
	settingsFile := viper.ConfigFileUsed()
	if settingsFile == "" {
		settingsFile = "Not found (using defaults)"
	}
	fmt.Printf("Settings:      %s\n", yellow.Sprint(settingsFile))
	project := "none"
	if env.Project != nil {
		project = env.Project.Path
	}
	fmt.Printf("Project file:  %s\n", yellow.Sprint(project))
	fmt.Printf("Counters:      %s\n", yellow.Sprint(env.Store.CounterPath()))
	fmt.Printf("Config:        %s\n", yellow.Sprint(env.Store.ConfigPath()))
	fmt.Printf("Date buckets:  %s\n", yellow.Sprint(env.Settings.DateBucket))
	fmt.Printf("Editor:        %s\n", yellow.Sprint(env.Settings.Editor))
	return nil
}
