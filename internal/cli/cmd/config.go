package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/kioskclock/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Print the config file location or the JSON schema it is validated against.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON schema",
	Long: `Print the JSON schema of config.toml. Editors with TOML schema support
can use it for completion and validation.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := configFileOf(app.Manager)
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return fmt.Errorf("resolve config file: %w", err)
		}
	}
	fmt.Println(path)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	schema, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Println(string(schema))
	return nil
}

// configFileOf returns the file mgr loaded, or "" when running on defaults.
func configFileOf(mgr *config.Manager) string {
	if mgr == nil {
		return ""
	}
	return mgr.GetConfigFile()
}
