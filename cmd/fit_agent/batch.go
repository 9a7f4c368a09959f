package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-fit-scorer/internal/config"
	"github.com/jonathan/job-fit-scorer/internal/ingestion"
	"github.com/jonathan/job-fit-scorer/internal/pipeline"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score many resumes against one job and rank them",
	Long: `Scores every resume against the job with bounded concurrency (max_concurrent) and prints
the items in input order plus the ranking. Directories are expanded to their *.json files.
A resume that fails to load is reported on its item and does not stop the batch.`,
	RunE: runBatch,
}

var (
	batchJob     string
	batchTitle   string
	batchCompany string
	batchResumes []string
	batchOutput  string
)

// BatchOutput is the JSON document written by the batch command
type BatchOutput struct {
	JobTitle string               `json:"job_title"`
	Company  string               `json:"company,omitempty"`
	Items    []pipeline.BatchItem `json:"items"`
	Ranked   []pipeline.BatchItem `json:"ranked"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job file (required)")
	batchCmd.Flags().StringVar(&batchTitle, "title", "", "Job title (overrides the job file)")
	batchCmd.Flags().StringVar(&batchCompany, "company", "", "Company name (overrides the job file)")
	batchCmd.Flags().StringSliceVarP(&batchResumes, "resumes", "r", nil, "Resume JSON files or directories (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	batchCmd.Flags().Int("max-concurrent", 4, "Maximum resumes scored at once (overrides config)")

	if err := batchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("resumes"); err != nil {
		panic(fmt.Sprintf("failed to mark resumes flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, config.BindFlag("max_concurrent", cmd.Flags().Lookup("max-concurrent")))
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	job, _, err := a.loadJob(ctx, batchJob, "", batchTitle, batchCompany)
	if err != nil {
		return err
	}

	paths, err := expandResumePaths(batchResumes)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no resume files found")
	}

	resumes := make([]*types.Resume, len(paths))
	loadErrs := make(map[int]error)
	for i, path := range paths {
		resume, err := ingestion.LoadResumeFile(path)
		if err != nil {
			loadErrs[i] = err
			continue
		}
		resumes[i] = resume
	}

	items, err := a.engine.ScoreBatch(ctx, job, resumes)
	if err != nil {
		return fmt.Errorf("batch scoring failed: %w", err)
	}
	for i, loadErr := range loadErrs {
		items[i].ResumeID = resumeIDFromPath(paths[i])
		items[i].Error = loadErr.Error()
	}

	if p := printer(cmd); p != nil {
		p.PrintBatch(items)
	}

	return writeJSON(cmd, batchOutput, BatchOutput{
		JobTitle: job.JobTitle,
		Company:  job.Company,
		Items:    items,
		Ranked:   pipeline.RankBatch(items),
	})
}

// expandResumePaths replaces directories with their sorted *.json files
func expandResumePaths(inputs []string) ([]string, error) {
	var paths []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume path %s: %w", input, err)
		}
		if !info.IsDir() {
			paths = append(paths, input)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(input, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", input, err)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

func resumeIDFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
