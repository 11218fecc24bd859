// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
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

// PrintAnalysis outputs a human-readable summary of an analysis result
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %d/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("ATS:         %d/100\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Readability: %d/100\n", result.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("Formatting:  %d/100\n", result.FormattingScore))
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	for _, section := range []struct {
		name string
		set  bool
	}{
		{"Contact", result.Sections.HasContactInfo},
		{"Experience", result.Sections.HasExperience},
		{"Education", result.Sections.HasEducation},
		{"Skills", result.Sections.HasSkills},
		{"Projects", result.Sections.HasProjects},
	} {
		mark := "✗"
		if section.set {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, section.name))
	}

	if len(result.SkillsFound) > 0 {
		sb.WriteString("\nSkills Found:\n")
		count := min(len(result.SkillsFound), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := result.SkillsFound[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %.1f)\n", skill.Skill, skill.Category, skill.Confidence))
		}
		if len(result.SkillsFound) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.SkillsFound)-maxItemsToShow))
		}
	}

	if len(result.Improvements) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, imp := range result.Improvements {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", imp.Priority, imp.Category))
		}
	}

	p.printBox("Resume Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatches outputs a human-readable summary of ranked job matches
func (p *Printer) PrintMatches(ranked []types.RankedJob) {
	var sb strings.Builder

	if len(ranked) == 0 {
		sb.WriteString("No jobs to rank")
	}

	for i, match := range ranked {
		sb.WriteString(fmt.Sprintf("%2d. %s — %d/100\n", i+1, match.Job.Title, match.MatchScore))
		if len(match.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    matched: %s\n", strings.Join(match.MatchedSkills, ", ")))
		}
		if len(match.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    missing: %s\n", strings.Join(match.MissingSkills, ", ")))
		}
	}

	p.printBox("Job Matches", strings.TrimRight(sb.String(), "\n"))
}
