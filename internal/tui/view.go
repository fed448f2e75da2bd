package tui

import (
	"fmt"
	"strings"

	"github.com/akasprzok/chartfmt"
	"github.com/akasprzok/chartfmt/internal/demo"
)

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	s.WriteString(PaneStyle.Render(m.chartContent))

	if len(m.legendEntries) > 0 {
		s.WriteString("\n")
		s.WriteString(LegendStyle.Render(m.legendTable.View()))
	}

	s.WriteString("\n")
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m Model) renderStatusBar() string {
	span := m.span()
	plan := chartfmt.PlanDateTicks(demo.Start, span.End, m.maxTicks)

	status := fmt.Sprintf("  Span: %s   %s to %s   maxticks: %d   granularity: %s   layout: %s",
		span.Name,
		demo.Start.Format("2006-01-02"),
		span.End.Format("2006-01-02"),
		m.maxTicks,
		plan.Granularity,
		plan.Layout)

	return StatusStyle.Width(m.width).Render(status)
}

func (m Model) renderHelpBar() string {
	helpText := "  tab: next span | shift+tab: previous | +/-: maxticks | q: quit"
	return StatusStyle.Width(m.width).Render(helpText)
}
