package charts

import (
	"fmt"

	"github.com/akasprzok/chartfmt/promchart"
	"github.com/charmbracelet/lipgloss"
)

// AxisColor is the color used for chart axes.
var AxisColor = lipgloss.Color("#CCBB44") // Olive/Yellow - high visibility

// LabelColor is the color used for chart labels.
var LabelColor = lipgloss.Color("#66CCEE") // Cyan - good contrast

// SeriesColor returns the terminal color for a given series index, so the
// preview cycles through the same palette as the PNG renderer.
func SeriesColor(index int) lipgloss.Color {
	c := promchart.SeriesColor(index)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// SeriesStyle returns a lipgloss style with the foreground color for the given series index.
func SeriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeriesColor(index))
}
