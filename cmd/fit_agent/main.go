// Package main provides the fit_agent CLI for scoring resumes against job descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "fit_agent",
	Short:        "Job fit scoring engine",
	Long:         "fit_agent scores how well a resume matches a job description: a compatibility gate, five weighted component scores and a penalty compensation model produce a 0-10 score with an explanation.",
	SilenceUsage: true,
}

var (
	cfgFile string
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().String("mode", "", "Scoring mode: standard or lenient (overrides config)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a human-readable analysis to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
