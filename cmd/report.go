package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"checkconnect/internal/checker"
	"checkconnect/internal/configuration"
	"checkconnect/internal/models"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run all checks once and print the results as JSON",
	Long: `Probes every configured target, exactly like 'run', but emits the
result sequence as a JSON document on stdout instead of OK/FAIL lines.
Nothing is stored; each invocation probes the live network state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configuration.Load(configuration.App.ConfigFile)
		if err != nil {
			log.Error().Err(err).Str("config", configuration.App.ConfigFile).Msg("failed to load configuration")
			os.Exit(ExitErrorConfig)
		}

		results := checker.New(cfg).Run(cmd.Context())

		output, err := json.Marshal(struct {
			Summary models.Summary       `json:"summary"`
			Results []models.CheckResult `json:"results"`
		}{
			Summary: models.Summarize(results),
			Results: results,
		})
		if err != nil {
			models.Response{
				Message: "Error while serializing output",
			}.Print()
			os.Exit(ExitErrorInvalidArgs)
		}

		fmt.Println(string(output))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
