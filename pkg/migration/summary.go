package migration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Summary styling. Adaptive colors keep the output readable on both light
// and dark terminals; lipgloss degrades to plain text when the output is
// not a terminal.
var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true)
	summaryCountStyle  = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"})
	summaryWarnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"})
	summaryMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#57606a", Dark: "#8b949e"})
)

// renderSummary renders the human-readable description of everything the
// run is about to create, shown right before the confirmation gate.
func renderSummary(target string, prep *importPlan) string {
	var sb strings.Builder

	sb.WriteString(summaryHeaderStyle.Render(fmt.Sprintf("You are about to add to '%s':", target)))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, " * %s new issues:\n", summaryCountStyle.Render(strconv.Itoa(len(prep.issues))))
	for _, p := range prep.issues {
		fmt.Fprintf(&sb, "   * %s\n",
			summaryMutedStyle.Render(fmt.Sprintf("%s -> %s", p.record.Source, p.record.Destination)))
	}

	fmt.Fprintf(&sb, " * %s new comments\n", summaryCountStyle.Render(strconv.Itoa(prep.commentCount)))

	fmt.Fprintf(&sb, " * %s new milestones:\n", summaryCountStyle.Render(strconv.Itoa(len(prep.newMilestones))))
	for _, milestone := range prep.newMilestones {
		fmt.Fprintf(&sb, "   * %s\n", summaryMutedStyle.Render(milestone.Title))
	}

	fmt.Fprintf(&sb, " * %s new labels:\n", summaryCountStyle.Render(strconv.Itoa(len(prep.newLabels))))
	for _, label := range prep.newLabels {
		fmt.Fprintf(&sb, "   * %s\n", summaryMutedStyle.Render(label.Name))
	}

	if len(prep.skipped) > 0 {
		sb.WriteString(summaryWarnStyle.Render(
			fmt.Sprintf("%d issues were already migrated and will be skipped:", len(prep.skipped))))
		sb.WriteString("\n")
		for _, record := range prep.skipped {
			fmt.Fprintf(&sb, "   * %s\n",
				summaryMutedStyle.Render(fmt.Sprintf("%s -> %s", record.Source, record.Destination)))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
