package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mossline/sitenav/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sitenav configuration",
}

// resolveConfigPath honors --config, falling back to the default
// location.
func resolveConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.DefaultConfigPath()
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		return printerFromContext(ctx).Print(ctx, map[string]any{
			"content_dir":     loaded.ContentDir,
			"menu_collection": loaded.MenuCollection,
			"output_format":   loaded.OutputFormat,
		})
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdoutFromContext(cmd.Context()), path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

Keys: content_dir, menu_collection, output_format.

Examples:
  sitenav config set content_dir ./content
  sitenav config set output_format json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := loaded.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := loaded.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(stdoutFromContext(cmd.Context()), "%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
