package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
)

func VersionCommand(verBranch, verStatus, verNumber, verCommit string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	versionString := fmt.Sprintf("%s %s %s", verBranch, verStatus, verNumber)
	fmt.Printf("%s %s\n", cyan("gca"), green(versionString))
	fmt.Printf("Runtime: %s\n", green(fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))

	if verCommit != "" && verCommit != "dev" {
		fmt.Printf("Commit: %s\n", yellow(verCommit))
	} else {
		fmt.Printf("Commit: %s\n", yellow("Not set (dev build)"))
	}
}
