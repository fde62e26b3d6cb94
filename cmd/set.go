package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gca/src"
	"gca/src/store"
)

var setCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value, interactively or directly",
	Long: `Set a configuration value in your ~/.gca/settings.yaml file.
preferredBranch is kept with the learned state in the JSON config file.
- Call with a key and value to set it directly.
- Call without arguments to launch an interactive prompt.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args) == 2 {
			return nil
		}
		return errors.New("this command requires either 0 or 2 arguments")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			return setKeyValue(args[0], args[1])
		}

		templates := &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   `{{ "›" | green | bold }} {{ . | green | bold }}`,
			Inactive: "  {{ . | faint }}",
			Selected: `{{ "✔" | green | bold }} {{ "Selected key:" | bold }} {{ . | yellow }}`,
		}

		selectPrompt := promptui.Select{
			Label:     "Select a configuration key to change",
			Items:     src.ConfigurableKeys,
			Templates: templates,
		}

		_, selectedKey, err := selectPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Configuration cancelled.")
				return nil
			}
			return err
		}

		inputPrompt := promptui.Prompt{
			Label:   "Enter the new value for '" + selectedKey + "'",
			Default: currentValue(selectedKey),
			Validate: func(input string) error {
				_, err := src.ParseSetting(selectedKey, input)
				return err
			},
		}

		newValue, err := inputPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				src.PrintInfo("Configuration cancelled.")
				return nil
			}
			return err
		}

		return setKeyValue(selectedKey, newValue)
	},
}

func currentValue(key string) string {
	if key == src.KeyPreferredBranch {
		s := src.LoadSettings(viper.GetViper())
		return store.New(s.CounterFile, s.ConfigFile, nil).Load().Config.PreferredBranch
	}
	return fmt.Sprint(viper.Get(key))
}

func setKeyValue(key, value string) error {
	parsed, err := src.ParseSetting(key, value)
	if err != nil {
		src.PrintError("%v", err)
		return err
	}

	if key == src.KeyPreferredBranch {
		s := src.LoadSettings(viper.GetViper())
		st := store.New(s.CounterFile, s.ConfigFile, nil)
		state := st.Load()
		state.Config.PreferredBranch = parsed.(string)
		if err := st.SaveConfig(state.Config); err != nil {
			src.PrintError("Error writing %s: %v", st.ConfigPath(), err)
			return err
		}
	} else {
		viper.Set(key, parsed)
		if err := writeSettings(); err != nil {
			src.PrintError("Error writing configuration: %v", err)
			return err
		}
	}

	yellow := src.Yellow()
	src.PrintSuccess("Set %s to %s", key, yellow.Sprint(parsed))
	return nil
}

func writeSettings() error {
	if viper.ConfigFileUsed() != "" {
		return viper.WriteConfig()
	}
	home, err := src.HomeDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(home, src.SettingsName+".yaml"))
}

func init() {
	rootCmd.AddCommand(setCmd)
}
