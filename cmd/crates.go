package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jfox85/rsinit/config"
	"github.com/jfox85/rsinit/registry"
	"github.com/jfox85/rsinit/scaffold"
	"github.com/spf13/cobra"
)

var cratesOffline bool

var cratesErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

var cratesCmd = &cobra.Command{
	Use:   "crates",
	Short: "List the dependencies added to new projects",
	Long: `List the crates 'rsinit init' adds to crates/app, with the latest version
published on crates.io. Use --offline to only print the names.`,
	Args: cobra.NoArgs,
	RunE: runCrates,
}

func init() {
	rootCmd.AddCommand(cratesCmd)
	cratesCmd.Flags().BoolVar(&cratesOffline, "offline", false, "Do not query crates.io")
}

func runCrates(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	if cratesOffline {
		for _, name := range scaffold.DefaultDependencies() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client := registry.NewClient(cfg.CratesAPI)

	var failed int
	for _, name := range scaffold.DefaultDependencies() {
		latest, err := client.LatestVersion(cmd.Context(), name)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%-20s %s\n", name, cratesErrorStyle.Render(err.Error()))
			continue
		}
		fmt.Fprintf(out, "%-20s %s\n", name, latest)
	}

	if failed > 0 {
		return fmt.Errorf("failed to look up %d of %d crates", failed, len(scaffold.DefaultDependencies()))
	}
	return nil
}
