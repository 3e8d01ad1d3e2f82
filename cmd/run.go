package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"checkconnect/internal/checker"
	"checkconnect/internal/configuration"
	"checkconnect/internal/models"
)

var strict bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check every configured website and NTP server once",
	Long: `The 'run' command probes every configured target in order, websites
first, then NTP servers, and prints one OK/FAIL line per target.

A failing target does not stop the run. The process exits 0 regardless of
probe outcomes unless --strict is given.

Example:
  checkconnect run --config /path/to/checkconnect.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configuration.Load(configuration.App.ConfigFile)
		if err != nil {
			log.Error().Err(err).Str("config", configuration.App.ConfigFile).Msg("failed to load configuration")
			os.Exit(ExitErrorConfig)
		}

		chk := checker.New(cfg)
		ctx := cmd.Context()

		printResult := func(r models.CheckResult) {
			fmt.Printf("%s: %s\n", r.Target, r.Status())
		}

		fmt.Println("Checking websites...")
		results := chk.CheckWebsites(ctx, printResult)

		fmt.Println("Checking NTP servers...")
		results = append(results, chk.CheckNTPServers(ctx, printResult)...)

		summary := models.Summarize(results)
		log.Info().
			Int("total", summary.Total).
			Int("reachable", summary.Reachable).
			Int("failed", summary.Failed).
			Msg("check run finished")

		if strict && summary.Failed > 0 {
			os.Exit(ExitErrorUnreachable)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when at least one target is unreachable")
}
