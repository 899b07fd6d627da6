package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jfox85/rsinit/manifest"
	"github.com/spf13/cobra"
)

var (
	inspectTitleStyle = lipgloss.NewStyle().Bold(true)
	inspectCrateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	inspectDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Show the members of a Cargo workspace",
	Long: `Read the workspace manifest at [path] (default: the current directory) and
list each member crate with its version and dependencies.

Examples:
  rsinit inspect
  rsinit inspect ./demo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	ws, err := manifest.LoadWorkspace(root)
	if err != nil {
		return err
	}

	crates, err := manifest.LoadMembers(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, inspectTitleStyle.Render("Workspace"))
	fmt.Fprintf(out, "  members:  %s\n", strings.Join(ws.Members, ", "))
	if ws.Resolver != "" {
		fmt.Fprintf(out, "  resolver: %s\n", ws.Resolver)
	}
	fmt.Fprintln(out)

	if len(crates) == 0 {
		fmt.Fprintln(out, inspectDimStyle.Render("No member crates found."))
		return nil
	}

	fmt.Fprintln(out, inspectTitleStyle.Render("Crates"))
	for _, crate := range crates {
		fmt.Fprintf(out, "  %s %s\n",
			inspectCrateStyle.Render(crate.Package.Name),
			inspectDimStyle.Render(crate.Package.Version))
		if len(crate.Dependencies) == 0 {
			fmt.Fprintln(out, inspectDimStyle.Render("    (no dependencies)"))
			continue
		}
		fmt.Fprintf(out, "    deps: %s\n", strings.Join(crate.Dependencies, ", "))
	}

	return nil
}
