package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the compatibility gate only",
	Long:  "Runs the compatibility gate (critical skills, role type, experience level, skills match) and prints the AssessmentResult as JSON.",
	RunE:  runAssess,
}

var (
	assessResume  string
	assessJob     string
	assessTitle   string
	assessCompany string
	assessOutput  string
)

func init() {
	assessCmd.Flags().StringVarP(&assessResume, "resume", "r", "", "Path to resume JSON file (required)")
	assessCmd.Flags().StringVarP(&assessJob, "job", "j", "", "Path to job file (required)")
	assessCmd.Flags().StringVar(&assessTitle, "title", "", "Job title (overrides the job file)")
	assessCmd.Flags().StringVar(&assessCompany, "company", "", "Company name (overrides the job file)")
	assessCmd.Flags().StringVarP(&assessOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := assessCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := assessCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	resume, err := a.loadResume(ctx, assessResume, "")
	if err != nil {
		return err
	}
	job, _, err := a.loadJob(ctx, assessJob, "", assessTitle, assessCompany)
	if err != nil {
		return err
	}

	assessment, err := a.engine.Assess(ctx, resume, job)
	if err != nil {
		return fmt.Errorf("failed to assess resume: %w", err)
	}

	if p := printer(cmd); p != nil {
		p.PrintAssessment(assessment)
	}
	return writeJSON(cmd, assessOutput, assessment)
}
