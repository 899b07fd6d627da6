package cmd

import (
	"fmt"
	"strings"

	"github.com/jfox85/rsinit/deps"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check system dependencies",
	Long:  `Check that cargo is installed and report the optional tools (rustfmt, git) a new workspace uses.`,
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	results := deps.CheckAllDependencies()
	deps.PrintResults(cmd.OutOrStdout(), results)

	if missing := deps.MissingRequired(results); len(missing) > 0 {
		return fmt.Errorf("missing required dependencies: %s", strings.Join(missing, ", "))
	}
	return nil
}
