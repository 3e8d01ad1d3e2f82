package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"checkconnect/internal/configuration"
)

// setConfigCmd represents the set-config command
var setConfigCmd = &cobra.Command{
	Use:   "set-config",
	Short: "Validate a JSON configuration string and save it to the configuration file",
	Long: `This command takes a JSON configuration document as an argument,
validates it (websites, ntp_servers, timeout) and writes it to the
configuration file. Invalid documents are rejected without touching the file.

Example:
  checkconnect set-config '{"websites":["https://example.com"],"ntp_servers":["pool.ntp.org"],"timeout":5}'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := configuration.Update(configuration.App.ConfigFile, []byte(args[0])); err != nil {
			fmt.Fprintf(os.Stderr, "Error while writing configuration: %v\n", err)
			os.Exit(ExitErrorConfig)
		}

		fmt.Printf("Configuration written to %s\n", configuration.App.ConfigFile)
	},
}

func init() {
	rootCmd.AddCommand(setConfigCmd)
}
