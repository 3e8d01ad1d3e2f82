package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"checkconnect/internal/api"
	"checkconnect/internal/configuration"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the connectivity checks over a small HTTP API",
	Long: `Starts an HTTP server that runs the probe sequence on demand.

Endpoints:
  GET /healthz          liveness probe
  GET /api/v1/check     run all checks, return results as JSON
  GET /api/v1/config    show the loaded configuration
  PUT /api/v1/config    validate and write a new configuration file

The listen address and timeouts are read from CHECKCONNECT_* environment
variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configuration.Load(configuration.App.ConfigFile)
		if err != nil {
			log.Error().Err(err).Str("config", configuration.App.ConfigFile).Msg("failed to load configuration")
			os.Exit(ExitErrorConfig)
		}

		props, err := api.NewServerProperties(cmd.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to read server properties")
			os.Exit(ExitErrorConfig)
		}

		server := api.NewServer(props, cfg, configuration.App.ConfigFile)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			errChan <- server.Start()
		}()

		select {
		case <-sigChan:
			server.Shutdown()
			return nil
		case err := <-errChan:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
