package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-fit-scorer/internal/density"
	"github.com/jonathan/job-fit-scorer/internal/ingestion"
)

var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Measure the technical keyword density of a text",
	Long:  "Scores free text (a job description or resume section) for technical keyword coverage across languages, frameworks, databases, cloud/devops, concepts and role titles.",
	RunE:  runDensity,
}

var (
	densityText   string
	densityFile   string
	densityOutput string
)

func init() {
	densityCmd.Flags().StringVarP(&densityText, "text", "t", "", "Text to analyze")
	densityCmd.Flags().StringVarP(&densityFile, "file", "f", "", "Path to a text, Markdown or HTML file to analyze")
	densityCmd.Flags().StringVarP(&densityOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	densityCmd.MarkFlagsMutuallyExclusive("text", "file")

	rootCmd.AddCommand(densityCmd)
}

func runDensity(cmd *cobra.Command, _ []string) error {
	text := densityText
	if densityFile != "" {
		content, err := os.ReadFile(densityFile)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", densityFile, err)
		}
		text, err = ingestion.NormalizeDescription(string(content))
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("either --text or --file with content is required")
	}

	result := density.Analyze(text)
	if p := printer(cmd); p != nil {
		p.PrintDensity(result)
	}
	return writeJSON(cmd, densityOutput, result)
}
