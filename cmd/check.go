package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gca/src"
	"gca/src/commands"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify git, the repository and gca's state files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := commands.RunChecks(cmd.Context(), src.LoadSettings(viper.GetViper()))
		if commands.PrintChecks(os.Stdout, results) {
			src.PrintSuccess("\nAll checks passed.")
			return nil
		}
		src.PrintError("\nSome checks failed. gca may not work until they are fixed.")
		return errors.New("health check failed")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
