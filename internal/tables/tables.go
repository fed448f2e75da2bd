// Package tables renders tick plans as static terminal tables.
package tables

import (
	"time"

	"github.com/akasprzok/chartfmt"
	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"
)

const (
	tickColumnMinWidth = 16
	tickColumnMaxWidth = 32
)

// TickPlan renders the major and minor ticks of a plan as a two-column
// table, labels formatted with the plan's layout.
func TickPlan(plan chartfmt.DateTickPlan) string {
	type row struct {
		kind string
		tick time.Time
	}

	rows := make([]row, 0, len(plan.Major)+len(plan.Minor))
	for _, tick := range plan.Major {
		rows = append(rows, row{kind: "major", tick: tick})
	}
	for _, tick := range plan.Minor {
		rows = append(rows, row{kind: "minor", tick: tick})
	}

	longestLabel := len("Tick")
	tableRows := make([]teatable.Row, 0, len(rows))
	for _, r := range rows {
		label := r.tick.Format(plan.Layout)
		if len(label) > longestLabel {
			longestLabel = len(label)
		}
		tableRows = append(tableRows, teatable.NewRow(teatable.RowData{
			"tick": label,
			"kind": r.kind,
		}))
	}

	colWidth := longestLabel + 1
	if colWidth < tickColumnMinWidth {
		colWidth = tickColumnMinWidth
	}
	if colWidth > tickColumnMaxWidth {
		colWidth = tickColumnMaxWidth
	}

	columns := []teatable.Column{
		teatable.NewColumn("tick", "Tick", colWidth),
		teatable.NewColumn("kind", "Kind", 7),
	}

	return teatable.
		New(columns).
		WithRows(tableRows).
		WithBaseStyle(lipgloss.NewStyle()).
		WithFooterVisibility(false).
		View()
}
