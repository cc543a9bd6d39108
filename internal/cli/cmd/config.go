package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GameraCC/gym/internal/cli"
	"github.com/GameraCC/gym/internal/cli/styles"
	"github.com/GameraCC/gym/internal/infrastructure/config"
)

const filePerm = 0o644

var configSchemaOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View configuration status and export the config JSON schema.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file path, keypad settings and screens",
	Long:  `Load and validate the config file, then list the configured screens.`,
	RunE:  runConfigStatus,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing config.toml, for editor completion
and validation.

Examples:
  gym config schema                     # Print to stdout
  gym config schema -o gym.schema.json  # Write to a file`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to a file")
}

// runConfigStatus shows the config file path and its screens.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	cfg := app.Config

	screens := make([]styles.ScreenSummary, 0, len(cfg.Screens))
	for _, s := range cfg.Screens {
		// Field options are only checked when a screen is opened; surface them here.
		if _, err := cli.ScreenFields(s, cfg.Keypad.Kind); err != nil {
			fmt.Println(renderer.RenderError(err))
			return err
		}
		summary := styles.ScreenSummary{
			Name:    s.Name,
			Title:   s.Title,
			Default: s.Name == cfg.Keypad.DefaultScreen,
		}
		for _, f := range s.Fields {
			summary.Fields = append(summary.Fields, fmt.Sprint(f["key"]))
		}
		screens = append(screens, summary)
	}

	fmt.Print(renderer.RenderStatus(app.ConfigManager.ConfigFile(), cfg.Keypad.IncrementStep, screens))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	if configSchemaOutput == "" {
		fmt.Println(string(schema))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configSchemaOutput), dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(configSchemaOutput, append(schema, '\n'), filePerm); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	fmt.Printf("Wrote config schema to %s\n", configSchemaOutput)
	return nil
}
