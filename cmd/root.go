package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"checkconnect/internal/configuration"
	"checkconnect/pkg/log"
)

const VERSION = "0.2.0"

// Constants for exit codes
const (
	ExitSuccess          = 0
	ExitErrorInvalidArgs = 1
	ExitErrorUnreachable = 2
	ExitErrorConfig      = 3
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "checkconnect",
	Short: "An application to check connectivity to websites and NTP servers",
	Long: `A command-line tool that checks whether the configured websites and
NTP servers are reachable.

Targets and the probe timeout are read from a JSON configuration file:

  {"websites": ["https://example.com"], "ntp_servers": ["pool.ntp.org"], "timeout": 5}

Usage: checkconnect [--config=path/to/checkconnect.json] run`,
	Version: VERSION,
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(configuration.App.LogFile)
		log.SetLevel(configuration.App.LogLevel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(ExitErrorInvalidArgs)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configuration.App.ConfigFile, "config", "c", configuration.DefaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&configuration.App.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configuration.App.LogFile, "log-file", "", "Mirror logs into this file")
}
