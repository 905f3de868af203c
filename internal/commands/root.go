package commands

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Persistent flags shared by every command
var (
	configPath   string
	workspaceDir string
	debugLog     bool
)

var rootCmd = &cobra.Command{
	Use:   "colorspace",
	Short: "Give every editor workspace its own accent colour",
	Long: `colorspace colours the title bar, activity bar and status bar of each
editor workspace so you can tell projects apart at a glance. Colours are picked
from the workspace name, so the same project always gets the same colour.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/colorspace/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&workspaceDir, "workspace", "w", "", "workspace directory (default current directory)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "write debug log to ~/.colorspace/debug.log")

	// Add subcommands here
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(ignoreCmd)
	rootCmd.AddCommand(unignoreCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
