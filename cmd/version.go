package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jfox85/rsinit/version"
	"github.com/spf13/cobra"
)

var (
	versionOutput string
	detailedFlag  bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for rsinit including build details.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "", "Output format: json")
	versionCmd.Flags().BoolVar(&detailedFlag, "detailed", false, "Show detailed version information")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	switch versionOutput {
	case "json":
		output, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("formatting JSON: %w", err)
		}
		fmt.Fprintln(out, string(output))
	case "":
		if detailedFlag {
			fmt.Fprintln(out, info.Detailed())
		} else {
			fmt.Fprintln(out, info.String())
		}
	default:
		return fmt.Errorf("unknown output format %q (supported: json)", versionOutput)
	}
	return nil
}
