package cmd

import (
	"github.com/spf13/cobra"

	"gca/src/commands"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display the repository, remotes and gca file locations",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, env *commands.Env, args []string) error {
		return commands.InfoCommand(cmd.Context(), env)
	}),
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
