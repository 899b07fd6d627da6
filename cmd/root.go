package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jfox85/rsinit/config"
	"github.com/jfox85/rsinit/logging"
	"github.com/jfox85/rsinit/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rsinit",
	Short: "Scaffold Rust projects as Cargo workspaces",
	Long: `rsinit creates new Rust projects with a workspace layout: a root Cargo.toml
declaring crates/* as members, a shared rustfmt.toml, and a binary crate in
crates/app with a default set of dependencies.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.Config{
			Debug:  viper.GetBool(config.KeyDebug),
			Writer: cmd.ErrOrStderr(),
		})
	},
	// Without a subcommand there is nothing to do.
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/rsinit/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log each step to stderr")
	rootCmd.PersistentFlags().Bool("strict", false, "Exit non-zero when project initialization fails")

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Project-level .rsinit first, then the global config
		if projectConfigDir := config.FindProjectConfigDir(); projectConfigDir != "" {
			viper.AddConfigPath(projectConfigDir)
		}

		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(home, ".config", config.AppName))

		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("RSINIT")
	viper.AutomaticEnv() // read in environment variables that match

	config.SetDefaults()

	viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag(config.KeyStrict, rootCmd.PersistentFlags().Lookup("strict"))

	// A missing config file is fine
	viper.ReadInConfig()
}
