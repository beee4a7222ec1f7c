// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dovydas-v/uniguide/internal/results"
	"github.com/dovydas-v/uniguide/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the recommend command
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

// PrintPreferences outputs a human-readable summary of the preference profile.
func (p *Printer) PrintPreferences(prefs *types.Preferences) {
	if prefs == nil {
		return
	}

	var sb strings.Builder

	if prefs.Academic.DegreeType != "" {
		sb.WriteString(fmt.Sprintf("Degree:    %s\n", prefs.Academic.DegreeType))
	}
	if len(prefs.Academic.FieldOfStudy) > 0 {
		sb.WriteString(fmt.Sprintf("Fields:    %s\n", strings.Join(prefs.Academic.FieldOfStudy, ", ")))
	}
	if len(prefs.Academic.Locations) > 0 {
		sb.WriteString(fmt.Sprintf("Locations: %s\n", strings.Join(prefs.Academic.Locations, ", ")))
	}
	if prefs.Academic.MinRating > 0 {
		sb.WriteString(fmt.Sprintf("Min rating: %.1f\n", prefs.Academic.MinRating))
	}
	if prefs.Financial.StateFinanced {
		sb.WriteString("State financed only\n")
	}
	if prefs.Financial.MaxYearlyCost > 0 {
		sb.WriteString(fmt.Sprintf("Max yearly cost: %.0f\n", prefs.Financial.MaxYearlyCost))
	}
	if len(prefs.CareerGoals) > 0 {
		sb.WriteString(fmt.Sprintf("Career goals: %s\n", strings.Join(prefs.CareerGoals, ", ")))
	}
	if len(prefs.Interests) > 0 {
		interests := strings.Join(prefs.Interests, ", ")
		if len(interests) > 45 {
			interests = interests[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Interests: %s\n", interests))
	}
	if sb.Len() == 0 {
		sb.WriteString("(no preferences set)\n")
	}

	p.printBox("PREFERENCE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPage outputs one page of recommendation results with relevance scores.
func (p *Printer) PrintPage(title string, page results.Page) {
	if page.Total == 0 {
		p.printBox(title, "(no matching programs)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Page %d, showing %d of %d programs\n\n",
		page.Page, len(page.Programs), page.Total))

	for i, program := range page.Programs {
		if program == nil {
			continue
		}
		rank := (page.Page-1)*page.PageSize + i + 1
		programTitle := program.Title
		if len(programTitle) > 40 {
			programTitle = programTitle[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", rank, programTitle))
		sb.WriteString(fmt.Sprintf("    Score: %.1f", program.RelevanceScore))
		if name := program.UniversityName(); name != "" {
			sb.WriteString(fmt.Sprintf("  %s", name))
		}
		sb.WriteString("\n")
		if i < len(page.Programs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, sb.String())
}

// PrintCandidateSummary outputs a short listing of top candidates, used in
// verbose mode before pagination.
func (p *Printer) PrintCandidateSummary(programs []*types.Program) {
	if len(programs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total programs scored: %d\n\n", len(programs)))

	count := min(len(programs), maxItemsToShow)
	for i := 0; i < count; i++ {
		program := programs[i]
		if program == nil {
			continue
		}
		title := program.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  Rating: %.1f\n", program.RelevanceScore, program.Rating))
	}

	if len(programs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more programs", len(programs)-maxItemsToShow))
	}

	p.printBox("TOP SCORED PROGRAMS", sb.String())
}
