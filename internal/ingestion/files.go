package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/schemas"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}

// LoadResumeFile reads a resume JSON document, validates it against the resume schema and
// decodes it. A missing id defaults to the file name without extension.
func LoadResumeFile(path string) (*types.Resume, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateResume(content); err != nil {
		return nil, fmt.Errorf("resume %s: %w", path, err)
	}

	var record map[string]any
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, &DecodeError{Record: "resume", Cause: err}
	}

	resume, err := DecodeResume(record)
	if err != nil {
		return nil, err
	}
	if resume.ID == "" {
		resume.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return resume, nil
}

// LoadJobFile reads a job. JSON files are schema-validated job records. Text, Markdown and
// HTML files become the description; the title falls back to the first non-empty line.
func LoadJobFile(path, title, company string) (*types.JobDetails, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := schemas.ValidateJob(content); err != nil {
			return nil, fmt.Errorf("job %s: %w", path, err)
		}
		var record map[string]any
		if err := json.Unmarshal(content, &record); err != nil {
			return nil, &DecodeError{Record: "job", Cause: err}
		}
		if title != "" {
			record["job_title"] = title
		}
		if company != "" {
			record["company"] = company
		}
		return DecodeJob(record)
	}

	description, err := NormalizeDescription(string(content))
	if err != nil {
		return nil, &DecodeError{Record: "job", Cause: err}
	}
	if title == "" {
		title = firstLine(description)
	}

	return DecodeJob(map[string]any{
		"job_title":       title,
		"company":         company,
		"job_description": description,
	})
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		if line != "" {
			return line
		}
	}
	return ""
}
