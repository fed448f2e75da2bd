package tui

import (
	"github.com/akasprzok/chartfmt/internal/charts"
	"github.com/akasprzok/chartfmt/internal/demo"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	return m.render()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.loadSpan((m.spanIndex + 1) % len(demo.Spans)), nil
	case "shift+tab":
		return m.loadSpan((m.spanIndex + len(demo.Spans) - 1) % len(demo.Spans)), nil
	case "+", "=":
		if m.maxTicks < MaxMaxTicks {
			m.maxTicks++
			m = m.render()
		}
		return m, nil
	case "-":
		if m.maxTicks > MinMaxTicks {
			m.maxTicks--
			m = m.render()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) render() Model {
	m.chartContent, m.legendEntries = charts.TimeseriesSplit(m.matrix, m.chartWidth(), m.maxTicks)
	return m.createLegendTable()
}

func (m Model) createLegendTable() Model {
	if len(m.legendEntries) == 0 {
		return m
	}

	rows := make([]teatable.Row, 0, len(m.legendEntries))
	longestMetric := 0
	for _, entry := range m.legendEntries {
		if len(entry.Metric) > longestMetric {
			longestMetric = len(entry.Metric)
		}
		colorIndicator := charts.SeriesStyle(entry.ColorIndex).Render("█")
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"color":  colorIndicator,
			"metric": entry.Metric,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("color", "", 3),
		teatable.NewColumn("metric", "Metric", max(longestMetric, 20)),
	}

	m.legendTable = teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(LegendPageSize).
		Focused(false)

	return m
}
