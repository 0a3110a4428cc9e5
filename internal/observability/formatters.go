// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/content-planner/internal/types"
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

// PrintBrief outputs a human-readable summary of one content brief.
func (p *Printer) PrintBrief(brief *types.ContentBrief) {
	if brief == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Primary:  %s\n", brief.PrimaryKeyword))
	sb.WriteString(fmt.Sprintf("Intent:   %s\n", brief.Intent))
	sb.WriteString(fmt.Sprintf("URL:      %s\n", brief.URLPath))
	if brief.ParentCluster != "" {
		sb.WriteString(fmt.Sprintf("Cluster:  %s\n", brief.ParentCluster))
	}
	sb.WriteString(fmt.Sprintf("Risk:     %s", brief.Cannibalization.Risk))
	if brief.Cannibalization.Recommendation != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", brief.Cannibalization.Recommendation))
	}
	sb.WriteString("\n")

	if len(brief.SecondaryKeywords) > 0 {
		sb.WriteString("Secondary Keywords:\n")
		count := min(len(brief.SecondaryKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", brief.SecondaryKeywords[i]))
		}
	}

	if len(brief.InternalLinks.SameCluster) > 0 {
		sb.WriteString("Internal Links:\n")
		for _, link := range brief.InternalLinks.SameCluster {
			sb.WriteString(fmt.Sprintf("  • %s -> %s\n", link.Anchor, link.Target))
		}
	}

	p.printBox(fmt.Sprintf("Brief: %s", brief.Title), sb.String())
}

// PrintSummary outputs the run summary with intent and risk breakdowns.
func (p *Printer) PrintSummary(summary *types.RunSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total briefs:   %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("Pillar briefs:  %d\n", summary.PillarCount))
	if summary.FlaggedCount > 0 {
		sb.WriteString(fmt.Sprintf("Flagged:        %d (non-unique fallback keywords)\n", summary.FlaggedCount))
	}
	if summary.Skipped > 0 {
		sb.WriteString(fmt.Sprintf("Skipped:        %d malformed candidates\n", summary.Skipped))
	}

	sb.WriteString("\nBy intent:\n")
	for _, intent := range []types.Intent{
		types.IntentInformational, types.IntentTransactional, types.IntentComparison,
		types.IntentPricing, types.IntentLocation, types.IntentMixed,
	} {
		if n := summary.ByIntent[intent]; n > 0 {
			sb.WriteString(fmt.Sprintf("  %-15s %d\n", intent, n))
		}
	}

	sb.WriteString("\nBy cannibalization risk:\n")
	for _, risk := range []types.Risk{types.RiskNone, types.RiskPossible, types.RiskHigh} {
		sb.WriteString(fmt.Sprintf("  %-15s %d\n", risk, summary.ByRisk[risk]))
	}

	if summary.Degraded {
		sb.WriteString(fmt.Sprintf("\nDEGRADED MODE: %s\n", summary.DegradedWhy))
	}

	p.printBox("Planning Run Summary", sb.String())
}
