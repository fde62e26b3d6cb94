package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gca/src"
	"gca/src/commands"
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Short:   "List, add, import and export commit message templates",
	Aliases: []string{"tpl"},
}

var templatesListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List templates, optionally for one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: withEnv(func(cmd *cobra.Command, env *commands.Env, args []string) error {
		category := ""
		if len(args) == 1 {
			category = strings.ToLower(args[0])
		}
		return commands.TemplatesListCommand(os.Stdout, env.Catalog, category)
	}),
}

var templatesAddCmd = &cobra.Command{
	Use:   "add <category> <template>",
	Short: "Add a custom template, e.g. gca templates add feat \"feat: add [feature] to [component]\"",
	Args:  cobra.MinimumNArgs(2),
	RunE: withEnv(func(cmd *cobra.Command, env *commands.Env, args []string) error {
		return commands.TemplatesAddCommand(env.Catalog, args[0], strings.Join(args[1:], " "))
	}),
}

var templatesImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Add every template from a YAML template pack",
	Args:  cobra.ExactArgs(1),
	RunE: withEnv(func(cmd *cobra.Command, env *commands.Env, args []string) error {
		return commands.TemplatesImportCommand(env.Catalog, args[0])
	}),
}

var templatesExportCmd = &cobra.Command{
	Use:   "export [file.yaml]",
	Short: "Write your custom templates as a YAML template pack (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withEnv(func(cmd *cobra.Command, env *commands.Env, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		return commands.TemplatesExportCommand(env.Catalog, path)
	}),
}

// withEnv loads the environment before running fn and reports its error.
func withEnv(fn func(cmd *cobra.Command, env *commands.Env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		defer env.Sync()

		if err := fn(cmd, env, args); err != nil {
			src.PrintError("✗ %v", err)
			return err
		}
		return nil
	}
}

func init() {
	templatesCmd.AddCommand(templatesListCmd, templatesAddCmd, templatesImportCmd, templatesExportCmd)
	rootCmd.AddCommand(templatesCmd)
}
