package tui

import (
	"os"

	"github.com/akasprzok/chartfmt/internal/charts"
	"github.com/akasprzok/chartfmt/internal/demo"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
	"github.com/prometheus/common/model"
	"golang.org/x/term"
)

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// PreviewPoints is the number of samples synthesized per preview series.
	PreviewPoints = 400

	// MinMaxTicks and MaxMaxTicks bound the live-adjustable tick hint.
	MinMaxTicks = 2
	MaxMaxTicks = 30

	// LegendPageSize is the number of visible legend rows.
	LegendPageSize = 5
)

// Model is the Bubble Tea model for the preview: the demo series rendered as
// a terminal chart, with the date span and tick hint adjustable live.
type Model struct {
	spanIndex int
	maxTicks  int

	matrix model.Matrix

	chartContent  string
	legendEntries []charts.LegendEntry
	legendTable   teatable.Model

	width  int
	height int
}

// NewModel creates a preview model for the first demo span.
func NewModel(maxTicks int) Model {
	if maxTicks < MinMaxTicks {
		maxTicks = MinMaxTicks
	}
	if maxTicks > MaxMaxTicks {
		maxTicks = MaxMaxTicks
	}
	m := Model{maxTicks: maxTicks}
	return m.loadSpan(0)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) span() demo.Span {
	return demo.Spans[m.spanIndex]
}

func (m Model) loadSpan(index int) Model {
	m.spanIndex = index
	m.matrix = demo.Matrix(demo.Start, m.span().End, PreviewPoints)
	return m.render()
}

func (m Model) chartWidth() int {
	width := m.width - ChartWidthPadding
	if width <= 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && termWidth > 0 {
			width = termWidth - ChartWidthPadding
		} else {
			width = DefaultTerminalWidth - ChartWidthPadding
		}
	}
	return width
}
