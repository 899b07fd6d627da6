package cmd

import (
	"fmt"

	"github.com/jfox85/rsinit/update"
	"github.com/spf13/cobra"
)

var (
	checkOnly   bool
	forceUpdate bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update rsinit to the latest version",
	Long: `Update rsinit to the latest version from GitHub releases.

If rsinit was installed with Homebrew, 'go install' or 'cargo install', the
matching upgrade command is printed instead of replacing the binary.

Examples:
  rsinit update              # Update to latest version
  rsinit update --check      # Only check for updates
  rsinit update --force      # Force update even if same version`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if checkOnly {
			return checkForUpdates(cmd)
		}
		return performUpdate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "Only check for updates without downloading")
	updateCmd.Flags().BoolVar(&forceUpdate, "force", false, "Force update even if current version is latest")
}

func printUpdateInfo(cmd *cobra.Command, info *update.UpdateInfo) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %s\n", info.CurrentVersion)
	fmt.Fprintf(out, "Latest version:  %s\n", info.LatestVersion)
}

func checkForUpdates(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Checking for updates...")

	info, err := update.CheckForUpdates()
	if err != nil {
		return err
	}
	printUpdateInfo(cmd, info)

	if !info.Available {
		fmt.Fprintln(out, "✅ You are running the latest version!")
		return nil
	}

	fmt.Fprintf(out, "🆙 A newer version is available: %s → %s\n", info.CurrentVersion, info.LatestVersion)
	fmt.Fprintf(out, "Release URL: %s\n", info.ReleaseURL)
	fmt.Fprintln(out, "\nRun 'rsinit update' to upgrade.")
	return nil
}

func performUpdate(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if !update.CanSelfUpdate() {
		fmt.Fprintln(out, update.GetUpdateInstructions())
		return nil
	}

	fmt.Fprintln(out, "Checking for updates...")

	info, err := update.CheckForUpdates()
	if err != nil {
		return err
	}
	printUpdateInfo(cmd, info)

	if !info.Available && !forceUpdate {
		fmt.Fprintln(out, "✅ You are already running the latest version!")
		return nil
	}

	if forceUpdate && !info.Available {
		fmt.Fprintln(out, "Forcing update due to --force flag...")
	} else {
		fmt.Fprintf(out, "🔄 Updating from %s to %s...\n", info.CurrentVersion, info.LatestVersion)
	}

	fmt.Fprintln(out, "📥 Downloading update...")
	return update.PerformUpdate(out, forceUpdate)
}
