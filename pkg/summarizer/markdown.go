package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

// MarkdownFormatter renders a Summary as Markdown tables.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l10n.T("Apply Summary"))
	fmt.Fprintf(&b, "%s: %s\n\n", l10n.T("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## %s\n\n", l10n.T("Manifest"))
	writeTable(&b, []string{l10n.T("Item"), l10n.T("Value")}, [][]string{
		{l10n.T("Source"), orNone(s.Manifest.Source)},
		{l10n.T("Root"), orNone(s.Manifest.Root)},
		{l10n.T("Continue on error"), yesNo(s.Settings.ContinueOnError)},
	})

	fmt.Fprintf(&b, "## %s\n\n", l10n.T("Results"))
	writeTable(&b, []string{l10n.T("Item"), l10n.T("Value")}, [][]string{
		{l10n.T("Steps"), fmt.Sprint(s.Totals.Steps)},
		{l10n.T("Succeeded"), fmt.Sprint(s.Totals.Succeeded)},
		{l10n.T("Failed"), fmt.Sprint(s.Totals.Failed)},
		{l10n.T("Total Duration"), fmt.Sprintf("%d ms", s.Totals.DurationMs)},
	})

	if len(s.Steps) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", l10n.T("Steps"))
		rows := make([][]string, 0, len(s.Steps))
		for _, step := range s.Steps {
			result := l10n.T("ok")
			if step.Error != "" {
				result = l10n.T("failed") + ": " + step.Error
			}
			rows = append(rows, []string{
				fmt.Sprint(step.Index),
				step.Op,
				"`" + step.Path + "`",
				result,
				fmt.Sprintf("%d ms", step.DurationMs),
			})
		}
		writeTable(&b, []string{"#", l10n.T("Operation"), l10n.T("Path"), l10n.T("Result"), l10n.T("Time")}, rows)
	}

	return b.String()
}

func writeTable(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}

func orNone(s string) string {
	if s == "" {
		return l10n.T("None")
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return l10n.T("Yes")
	}
	return l10n.T("No")
}
