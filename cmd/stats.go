package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gca/src/commands"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show commit counters and the terms gca has learned",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, env *commands.Env, args []string) error {
		commands.StatsCommand(os.Stdout, env.State, statsTop)
		return nil
	}),
}

func init() {
	statsCmd.Flags().IntVarP(&statsTop, "top", "n", 10, "number of learned terms to show")
	rootCmd.AddCommand(statsCmd)
}
