package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gca/src"
	"gca/src/commands"
	"gca/src/logging"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write gca settings and check the installed git",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(viper.GetString(src.KeyLogLevel), verbose)
		defer func() { _ = logger.Sync() }()

		if err := commands.InitCommand(cmd.Context(), logger); err != nil {
			src.PrintError("Error initializing gca: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
