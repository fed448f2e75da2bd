package chartfmt

import (
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// denseLogRatioLimit is the widest range (as max/min) that still gets extra
// minor ticks; past ~2 decades they would crowd the axis.
const denseLogRatioLimit = 100

// logMantissas are the per-decade minor tick positions, with 1.5 included so
// a narrow range still gets a tick between 1 and 2.
var logMantissas = []float64{1.5, 2, 3, 4, 5, 6, 7, 8, 9}

// DenseLogTicks returns the widened minor tick set for a log range [min, max]:
// every mantissa in logMantissas per decade, over the range padded by a factor
// of 4 on both sides, keeping only values strictly inside the padded bounds.
// Ranges wider than denseLogRatioLimit return nil.
func DenseLogTicks(min, max float64) []float64 {
	if max/min > denseLogRatioLimit {
		return nil
	}
	emin := math.Floor(math.Log10(min / 4))
	emax := math.Ceil(math.Log10(max * 4))

	var ticks []float64
	for e := emin; e < emax; e++ {
		scale := math.Pow(10, e)
		for _, mantissa := range logMantissas {
			v := mantissa * scale
			if v > min/4 && v < max*4 {
				ticks = append(ticks, v)
			}
		}
	}
	return ticks
}

// LogAxis labels a logarithmic Y axis with LogValueFormatter and, when the
// current range spans at most two decades, replaces the Y ticks with the
// dense minor set plus the decade majors. The Y range itself is preserved.
// Call it after setting the range; a chart without a Y range only gets the
// formatter installed.
func LogAxis(c *chart.Chart) {
	c.YAxis.ValueFormatter = LogValueFormatter

	r := c.YAxis.Range
	if r == nil || r.IsZero() {
		return
	}
	min, max := r.GetMin(), r.GetMax()

	dense := DenseLogTicks(min, max)
	if dense == nil {
		return
	}

	var ticks []chart.Tick
	var gridLines []chart.GridLine
	for _, v := range decadeTicks(min, max) {
		ticks = append(ticks, chart.Tick{Value: v, Label: LogValueFormatter(v)})
		gridLines = append(gridLines, chart.GridLine{Value: v})
	}
	for _, v := range dense {
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: LogValueFormatter(v)})
		gridLines = append(gridLines, chart.GridLine{IsMinor: true, Value: v})
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	sort.Slice(gridLines, func(i, j int) bool { return gridLines[i].Value < gridLines[j].Value })

	c.YAxis.Ticks = ticks
	c.YAxis.GridLines = gridLines

	r.SetMin(min)
	r.SetMax(max)
}

// decadeTicks returns the powers of ten inside [min, max].
func decadeTicks(min, max float64) []float64 {
	var ticks []float64
	for e := math.Ceil(math.Log10(min)); e <= math.Floor(math.Log10(max)); e++ {
		ticks = append(ticks, math.Pow(10, e))
	}
	return ticks
}
