package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gca/src"
	"gca/src/commands"
)

type VersionInfo struct {
	Branch string
	Status string
	Number string
	Commit string
}

var rootCmd = &cobra.Command{
	Use:   "gca",
	Short: "gca - Git Commit Assistant with learned, template based commit messages.",
	Long: `gca wraps git status, add, commit and push behind a numbered menu and
suggests Conventional Commits messages filled in from the files you changed.
Run without a subcommand to start the interactive session.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd.Context())
	},
}

var (
	currentVersionInfo VersionInfo
	verbose            bool
)

func Execute(versionInfo VersionInfo) {
	currentVersionInfo = versionInfo

	fullVersion := fmt.Sprintf("%s %s %s %s",
		versionInfo.Branch, versionInfo.Status, versionInfo.Number, versionInfo.Commit)
	rootCmd.Version = fullVersion

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("repo", "C", "", "run as if gca was started in this repository")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log git invocations and other diagnostics")
	cobra.CheckErr(viper.BindPFlag(src.KeyRepo, rootCmd.PersistentFlags().Lookup("repo")))
}

func initConfig() {
	home, err := src.HomeDir()
	cobra.CheckErr(err)

	src.SetDefaults(viper.GetViper(), home)
	viper.AddConfigPath(home)
	viper.SetConfigName(src.SettingsName)
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(src.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			cobra.CheckErr(err)
		}
	}
}

// loadEnv resolves settings against the repository, reporting failures the
// way every command does.
func loadEnv() (*commands.Env, error) {
	env, err := commands.NewEnv(src.LoadSettings(viper.GetViper()), verbose)
	if err != nil {
		src.PrintError("✗ %v", err)
		return nil, err
	}
	for _, warning := range env.State.Warnings {
		src.PrintWarning("%s", warning)
	}
	env.State.Warnings = nil
	return env, nil
}

func runSession(ctx context.Context) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.Sync()

	if err := commands.CommitCommand(ctx, env); err != nil {
		src.PrintError("✗ %v", err)
		return err
	}
	return nil
}
