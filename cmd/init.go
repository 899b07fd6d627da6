package cmd

import (
	"fmt"

	"github.com/jfox85/rsinit/cargo"
	"github.com/jfox85/rsinit/config"
	"github.com/jfox85/rsinit/logging"
	"github.com/jfox85/rsinit/scaffold"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new Rust workspace",
	Long: `Create a new Rust project named <name> in the current directory using a
workspace layout.

The project is created with 'cargo new', its Cargo.toml is replaced with a
workspace manifest (members = ["crates/*"], resolver = "2"), a rustfmt.toml is
added, and a binary crate is created in crates/app with the snafu, tracing,
tracing-subscriber and ir_aquila dependencies.

Steps stop at the first failure. Files created before the failure are left in
place. Failures are reported on stderr; the exit code stays 0 unless --strict
is given or strict: true is configured.

Examples:
  rsinit init demo
  rsinit init demo --strict
  RSINIT_CARGO=~/.cargo/bin/cargo rsinit init demo`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Errors past argument validation are not usage errors
	cmd.SilenceUsage = true

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	runner := cargo.NewRunner(cfg.Cargo)
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()

	initializer := scaffold.NewInitializer(runner, scaffold.WithLogger(logging.L()))

	if err := initializer.Run(cmd.Context(), scaffold.InitRequest{Name: args[0]}); err != nil {
		logging.L().Debug("init.failed", "step", scaffold.FailedOp(err))
		if cfg.Strict {
			// cobra prints "Error: <message>" and Execute exits 1
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	return nil
}
