package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"checkconnect/internal/docs"
)

var translationDocsDir string

// translationStatusCmd represents the translation-status command
var translationStatusCmd = &cobra.Command{
	Use:   "translation-status",
	Short: "Calculate the translation coverage of the documentation",
	Long: `Calculates how much of the documentation is translated. English
documents use the plain "name.md" scheme; translations use "name.lang.md"
(e.g. "index.de.md"). Coverage is reported across all observed languages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		coverage, err := docs.Coverage(translationDocsDir)
		if err != nil {
			return err
		}

		fmt.Printf("translation_coverage=%.2f%%\n", coverage)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translationStatusCmd)
	translationStatusCmd.Flags().StringVarP(&translationDocsDir, "docs-dir", "d", "docs", "Directory containing the Markdown documentation")
}
