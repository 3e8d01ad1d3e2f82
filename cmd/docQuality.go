package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"checkconnect/internal/docs"
)

var (
	docsDir       string
	docConfigPath string
)

// docQualityCmd represents the doc-quality command
var docQualityCmd = &cobra.Command{
	Use:   "doc-quality",
	Short: "Run documentation quality checks over a Markdown tree",
	Long: `Checks every Markdown file under the docs directory for quality
issues: minimum content length, a main header, code examples, required
sections, images, link validity and language suffixes. Documents missing a
translation in one of the supported languages are reported as well.

Settings are read from a TOML file; a default one is created on first run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := docs.LoadConfig(docConfigPath)
		if err != nil {
			log.Error().Err(err).Str("config", docConfigPath).Msg("failed to load doc-quality configuration")
			os.Exit(ExitErrorConfig)
		}

		checker := docs.NewChecker(cfg)
		if err := checker.CheckDirectory(docsDir); err != nil {
			return err
		}
		if err := checker.CheckTranslations(docsDir); err != nil {
			return err
		}

		checker.Report(os.Stdout)

		if checker.HasIssues() {
			os.Exit(ExitErrorInvalidArgs)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(docQualityCmd)
	docQualityCmd.Flags().StringVarP(&docsDir, "docs-dir", "d", "docs", "Directory containing the Markdown documentation")
	docQualityCmd.Flags().StringVar(&docConfigPath, "doc-config", docs.DefaultConfigPath, "Path to the doc-quality TOML configuration")
}
