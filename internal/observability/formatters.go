// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-fit-scorer/internal/density"
	"github.com/jonathan/job-fit-scorer/internal/penalty"
	"github.com/jonathan/job-fit-scorer/internal/pipeline"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(items[i], 48)))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintAssessment outputs the compatibility gate verdict with its suggestions.
func (p *Printer) PrintAssessment(a *types.AssessmentResult) {
	if a == nil {
		return
	}

	var sb strings.Builder
	verdict := "✅ COMPATIBLE"
	if !a.IsCompatible {
		verdict = "⛔ NOT COMPATIBLE"
	}
	sb.WriteString(verdict + "\n")
	sb.WriteString(fmt.Sprintf("Skills score:  %.2f\n", a.CompatibilityScore))
	if a.Metadata.JobRoleType != "" {
		sb.WriteString(fmt.Sprintf("Role type:     %s\n", a.Metadata.JobRoleType))
	}
	if a.Metadata.RequiredYears > 0 {
		sb.WriteString(fmt.Sprintf("Experience:    %.1f of %.0f years\n", a.Metadata.ActualYears, a.Metadata.RequiredYears))
	}
	if a.Metadata.BlockedBy != "" {
		sb.WriteString(fmt.Sprintf("Blocked by:    %s\n", a.Metadata.BlockedBy))
	}

	if len(a.Suggestions) > 0 {
		sb.WriteString("\n")
		for i, s := range a.Suggestions {
			if i == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("... and %d more\n", len(a.Suggestions)-maxItemsToShow))
				break
			}
			marker := "•"
			switch s.Severity {
			case types.SeverityBlocking:
				marker = "⛔"
			case types.SeverityWarning:
				marker = "⚠"
			}
			sb.WriteString(fmt.Sprintf("%s %s\n", marker, s.Message))
		}
	}

	p.printBox("COMPATIBILITY ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoringResult outputs the final score, component breakdown and compensation summary.
func (p *Printer) PrintScoringResult(r *types.ScoringResult) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final score:  %.2f / 10\n", r.FinalScore))
	if r.Reason != "" {
		sb.WriteString(fmt.Sprintf("Reason:       %s\n", r.Reason))
	}
	sb.WriteString(fmt.Sprintf("Policy:       %s\n", r.Analytics.Policy))
	if r.ResumeID != "" {
		sb.WriteString(fmt.Sprintf("Resume:       %s\n", r.ResumeID))
	}

	if r.Compatible {
		c, w := r.Analytics.ComponentScores, r.Analytics.WeightedScores
		sb.WriteString("\nComponent        raw   weighted\n")
		rows := []struct {
			name     string
			raw, wtd float64
		}{
			{"skills", c.Skills, w.Skills},
			{"experience", c.Experience, w.Experience},
			{"projects", c.Projects, w.Projects},
			{"education", c.Education, w.Education},
			{"job title", c.JobTitle, w.JobTitle},
		}
		for _, row := range rows {
			sb.WriteString(fmt.Sprintf("  %-12s  %.2f   %.3f\n", row.name, row.raw, row.wtd))
		}
		if r.Analytics.TitleBonus > 0 {
			sb.WriteString(fmt.Sprintf("  title bonus         +%.2f\n", r.Analytics.TitleBonus))
		}
	}

	q := r.Analytics.SkillMatch
	sb.WriteString(fmt.Sprintf("\nSkill match:  %.0f%% overall, %.0f%% core\n", q.OverallMatch*100, q.CoreSkillMatch*100))
	sb.WriteString(fmt.Sprintf("Density:      %.2f\n", r.Analytics.TechnicalDensity))

	p.printBox("JOB FIT SCORE", strings.TrimSuffix(sb.String(), "\n"))

	if r.Analytics.Compensation != nil {
		p.PrintCompensation(r.Analytics.Compensation)
	}
	if len(r.Analytics.ProjectRelevance) > 0 {
		p.PrintProjects(r.Analytics.ProjectRelevance)
	}
	if r.Explanation != "" {
		p.printBox("EXPLANATION", wrap(r.Explanation, boxWidth-4))
	}
}

// PrintCompensation outputs original and adjusted penalties per category.
func (p *Printer) PrintCompensation(c *types.CompensationResult) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill match level:  %s\n", c.SkillMatchLevel))
	sb.WriteString(fmt.Sprintf("Experience tier:    %s (%.1f years)\n", c.Analysis.ExperienceTier, c.Analysis.ExperienceYears))
	if c.Analysis.SynergyApplied {
		sb.WriteString("Synergy bonus:      applied\n")
	}

	sb.WriteString("\nCategory       original  adjusted\n")
	for _, cat := range penalty.Categories() {
		orig, adj := c.OriginalPenalties[cat], c.AdjustedPenalties[cat]
		if orig == 0 && adj == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-12s  %.3f     %.3f\n", cat, orig, adj))
	}

	writeList(&sb, "\nFloors", c.Analysis.FloorsApplied, maxItemsToShow)
	writeList(&sb, "\nNotes", c.Analysis.Notes, maxItemsToShow)

	p.printBox("PENALTY COMPENSATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs project relevance, most relevant first as scored.
func (p *Printer) PrintProjects(projects []types.ProjectRelevance) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		pr := projects[i]
		sb.WriteString(fmt.Sprintf("%s  (%.2f)\n", truncate(pr.Name, 40), pr.RelevanceScore))
		if len(pr.MatchedTechnologies) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", truncate(strings.Join(pr.MatchedTechnologies, ", "), 40)))
		}
	}
	if len(projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more projects\n", len(projects)-maxItemsToShow))
	}

	p.printBox("PROJECT RELEVANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDensity outputs a technical density analysis by category.
func (p *Printer) PrintDensity(r density.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall density:  %.3f (%d keywords)\n\n", r.Score, r.MatchCount()))
	for _, name := range density.Categories() {
		cs := r.CategoryScores[name]
		sb.WriteString(fmt.Sprintf("  %-14s %.2f", name, cs.Score))
		if len(cs.Matches) > 0 {
			sb.WriteString("  " + truncate(strings.Join(cs.Matches, ", "), 28))
		}
		sb.WriteString("\n")
	}
	p.printBox("TECHNICAL DENSITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatch outputs a ranked batch with failures listed last.
func (p *Printer) PrintBatch(items []pipeline.BatchItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	ranked := pipeline.RankBatch(items)
	for i, it := range ranked {
		mark := ""
		if !it.Result.Compatible {
			mark = "  (blocked)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %-24s %5.2f%s\n", i+1, truncate(it.ResumeID, 24), it.Result.FinalScore, mark))
	}

	var failed []string
	for _, it := range items {
		if it.Error != "" {
			failed = append(failed, fmt.Sprintf("%s: %s", it.ResumeID, it.Error))
		}
	}
	if len(failed) > 0 {
		sb.WriteString("\n")
		writeList(&sb, "Failed", failed, maxItemsToShow)
	}

	p.printBox(fmt.Sprintf("BATCH RANKING (%d resumes)", len(items)), strings.TrimSuffix(sb.String(), "\n"))
}

// wrap breaks text into lines no wider than width, keeping existing line breaks
func wrap(text string, width int) string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			if line != "" && len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			if line == "" {
				line = word
			} else {
				line += " " + word
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
