// Package report renders aggregate statistics for the console. It knows
// nothing about the games; it only formats a montecarlo.Report.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/cardsim/internal/montecarlo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Render formats a report as styled console output: numeric fields first,
// then categorical breakdowns, then the run footer.
func Render(title string, rep *montecarlo.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(rep.Numeric) > 0 {
		b.WriteString(sectionStyle.Render("Numeric fields"))
		b.WriteString("\n")
		for _, field := range sortedKeys(rep.Numeric) {
			stats := rep.Numeric[field]
			b.WriteString(fmt.Sprintf("  %s  total=%.4f mean=%.4f min=%.4f max=%.4f\n",
				fieldStyle.Render(fmt.Sprintf("%-16s", field)),
				stats.Total, stats.Mean, stats.Min, stats.Max))
		}
		b.WriteString("\n")
	}

	if len(rep.Counts) > 0 {
		b.WriteString(sectionStyle.Render("Categorical fields"))
		b.WriteString("\n")
		for _, field := range sortedKeys(rep.Counts) {
			b.WriteString(fmt.Sprintf("  %s\n", fieldStyle.Render(field)))
			counts := rep.Counts[field]
			pcts := rep.Percentages[field]
			for _, value := range sortedKeys(counts) {
				b.WriteString(fmt.Sprintf("    %-14s %8d  %6.2f%%\n",
					value, counts[value], pcts[value]))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"%d iterations in %.2fs (%.0f iterations/sec)",
		rep.TotalIterations,
		rep.TotalTime.Seconds(),
		rep.IterationsPerSecond())))
	b.WriteString("\n")

	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
