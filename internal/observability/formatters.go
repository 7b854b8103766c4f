// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/coltonk1/trackify-jobs/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreRecord outputs a human-readable summary of a scoring run.
func (p *Printer) PrintScoreRecord(record *types.ScoreRecord) {
	if record == nil {
		return
	}

	if record.Reason != "" {
		p.printBox("SCORE", fmt.Sprintf("No score: %s", record.Reason))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final score:   %.2f\n", record.Similarity))
	sb.WriteString(fmt.Sprintf("Phrase range:  %.2f avg / %.2f max\n", record.AverageSimilarity, record.MaxSimilarity))
	if record.AIScore != 0 {
		sb.WriteString(fmt.Sprintf("Model score:   %.2f\n", record.AIScore))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Hard skills:     %.2f avg (%d matched)\n",
		record.AverageHardSkillSimilarity, len(record.MatchedHardSkills)))
	sb.WriteString(fmt.Sprintf("Soft skills:     %.2f avg (%d matched)\n",
		record.AverageSoftSkillSimilarity, len(record.MatchedSoftSkills)))
	sb.WriteString(fmt.Sprintf("Certifications:  %.2f avg (%d matched)",
		record.AverageCertificationSimilarity, len(record.MatchedCertifications)))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintMatchedSkills outputs the top matched pairs for one skill type.
func (p *Printer) PrintMatchedSkills(title string, matches []types.MatchedPair) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	count := len(matches)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("%-20s → %-20s %6.2f", m.JobSkill.Name, m.ClosestResumeSkill.Name, m.Similarity))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(matches)-maxItemsToShow))
	}

	p.printBox(title, sb.String())
}

// PrintSkills outputs one side's extracted skills grouped under a title.
func (p *Printer) PrintSkills(title string, skills []types.SkillRecord) {
	if len(skills) == 0 {
		return
	}

	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	p.printBox(title, strings.Join(names, ", "))
}
