package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jfox85/rsinit/config"
	"github.com/spf13/cobra"
)

var (
	configInitForce   bool
	configInitProject bool
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Create ~/.config/rsinit/config.yaml with the default settings so they can be
customized. With --project the file is written to ./.rsinit/config.yaml instead,
which takes precedence in this directory and below.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&configInitProject, "project", false, "Write the config to ./.rsinit instead of the global location")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	configDir := config.GlobalConfigDir()
	if configInitProject {
		configDir = config.ProjectConfigDirName
	}
	if configDir == "" {
		return fmt.Errorf("failed to determine config directory")
	}

	configPath := filepath.Join(configDir, config.FileName)

	if _, err := os.Stat(configPath); err == nil && !configInitForce {
		fmt.Fprintf(out, "Config file already exists at %s\n", configPath)
		fmt.Fprintf(out, "Use --force to overwrite\n")
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Created config at %s\n", configPath)
	return nil
}
