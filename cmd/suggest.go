package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"gca/src"
	"gca/src/commands"
)

var suggestOpts commands.SuggestOptions

var suggestCmd = &cobra.Command{
	Use:   "suggest <category>",
	Short: "Print ranked commit message suggestions without committing",
	Long: `Analyze the working tree and print the templates of <category> filled in
from the changed files, best match first. Counters and learned terms are not
touched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.Sync()

		err = commands.SuggestCommand(cmd.Context(), env, args[0], suggestOpts)
		if errors.Is(err, commands.ErrNoChanges) {
			src.PrintInfo("Nothing to suggest, working tree clean.")
			return nil
		}
		if err != nil {
			src.PrintError("✗ %v", err)
		}
		return err
	},
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestOpts.Copy, "copy", false, "copy the top suggestion to the clipboard")
	suggestCmd.Flags().BoolVar(&suggestOpts.View, "view", false, "open the suggestions in a scrollable viewer")
	rootCmd.AddCommand(suggestCmd)
}
