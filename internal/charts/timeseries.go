package charts

import (
	"math"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/akasprzok/chartfmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/common/model"
)

var axisStyle = lipgloss.NewStyle().Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().Foreground(LabelColor)

// LegendEntry pairs a series name with its palette index.
type LegendEntry struct {
	Metric     string
	ColorIndex int
}

// TimeseriesSplit renders a matrix as a braille line chart whose X labels
// follow the date layout the PNG renderer would pick for the same span and
// max tick hint. The chart and legend entries are returned separately so the
// caller can lay them out.
func TimeseriesSplit(matrix model.Matrix, width, maxTicks int) (string, []LegendEntry) {
	minY := model.SampleValue(math.MaxFloat64)
	maxY := model.SampleValue(-math.MaxFloat64)
	minT := time.Time{}
	maxT := time.Time{}
	for _, stream := range matrix {
		for _, sample := range stream.Values {
			if sample.Value < minY {
				minY = sample.Value
			}
			if sample.Value > maxY {
				maxY = sample.Value
			}
			ts := sample.Timestamp.Time()
			if minT.IsZero() || ts.Before(minT) {
				minT = ts
			}
			if ts.After(maxT) {
				maxT = ts
			}
		}
	}

	height := width / ChartHeightRatio
	if height < MinChartHeight {
		height = MinChartHeight
	}

	layout := chartfmt.DateLayout(minT, maxT, maxTicks)

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = func(_ int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format(layout)
	}
	lc.SetYRange(float64(minY), float64(maxY))     // set expected Y values (values can be less or greater than what is displayed)
	lc.SetViewYRange(float64(minY), float64(maxY)) // setting display Y values will fail unless set expected Y values first
	lc.SetLineStyle(runes.ThinLineStyle)           // ThinLineStyle replaces default linechart arcline rune style

	legend := make([]LegendEntry, 0, len(matrix))
	for i, stream := range matrix {
		name := stream.Metric.String()
		legend = append(legend, LegendEntry{Metric: name, ColorIndex: i})
		lc.SetDataSetStyle(name, SeriesStyle(i))
		for _, sample := range stream.Values {
			lc.PushDataSet(name, timeserieslinechart.TimePoint{
				Time:  sample.Timestamp.Time(),
				Value: float64(sample.Value),
			})
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), legend
}
