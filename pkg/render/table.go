package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tandem-lab/tandem/pkg/domain/model"
)

// DefaultEmptyMessage is shown when a report holds no overlapping pairs
const DefaultEmptyMessage = "No overlapping work periods found."

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Faint(true)
)

// Table renders overlap records as a bordered table preceded by a
// result-count line. An empty set renders the fallback message instead;
// emptyMessage overrides the default one when non-empty.
func Table(overlaps []model.ProjectPairOverlap, emptyMessage string) string {
	if len(overlaps) == 0 {
		if emptyMessage == "" {
			emptyMessage = DefaultEmptyMessage
		}
		return emptyStyle.Render(emptyMessage)
	}

	rows := make([][]string, 0, len(overlaps))
	for _, o := range overlaps {
		rows = append(rows, []string{
			o.Pair.Low.String(),
			o.Pair.High.String(),
			o.ProjectID.String(),
			strconv.Itoa(o.Days),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Employee ID #1", "Employee ID #2", "Project ID", "Days worked").
		Rows(rows...)

	count := countStyle.Render(fmt.Sprintf("%d result(s)", len(overlaps)))
	return count + "\n" + tbl.Render()
}

// Text renders a plain fixed-width variant of the table, suitable for
// monospace contexts such as Slack code blocks.
func Text(overlaps []model.ProjectPairOverlap) string {
	if len(overlaps) == 0 {
		return DefaultEmptyMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %-14s %-10s %s\n", "Employee #1", "Employee #2", "Project", "Days worked")
	for _, o := range overlaps {
		fmt.Fprintf(&b, "%-14d %-14d %-10d %d\n", o.Pair.Low.Int(), o.Pair.High.Int(), o.ProjectID.Int(), o.Days)
	}
	return strings.TrimRight(b.String(), "\n")
}
