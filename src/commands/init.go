package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gca/src"
	"gca/src/vcs"
)

// InitCommand writes settings.yaml with the current values and checks that
// the installed git is new enough.
func InitCommand(ctx context.Context, logger *zap.Logger) error {
	home, err := src.HomeDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return err
	}

	path := filepath.Join(home, src.SettingsName+".yaml")
	if err := viper.WriteConfigAs(path); err != nil {
		return err
	}
	src.PrintSuccess("gca settings written to %s", path)

	src.PrintInfo("Checking git...")
	installed, err := vcs.New("", "", logger).Version(ctx)
	if err != nil {
		src.PrintError("Could not run git: %v", err)
		return err
	}
	if err := vcs.CheckVersion(installed); err != nil {
		src.PrintError("%v", err)
		return err
	}
	src.PrintSuccess("git %s found", installed)
	return nil
}
