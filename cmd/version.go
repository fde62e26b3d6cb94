package cmd

import (
	"github.com/spf13/cobra"

	"gca/src/commands"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the version number of gca",
	Aliases: []string{"v"},
	Run: func(cmd *cobra.Command, args []string) {
		commands.VersionCommand(currentVersionInfo.Branch, currentVersionInfo.Status,
			currentVersionInfo.Number, currentVersionInfo.Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
